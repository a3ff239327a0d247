package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	initialAvatarPrefix = "avatar-initial-"
	initialAvatarExt    = ".png"
)

// EnsureInitialAvatar returns an on-disk placeholder image showing the first
// letter of the given name, for profile components that have no photo yet.
// The image is generated once per initial and reused afterwards.
func (s *UploadService) EnsureInitialAvatar(name string) (string, error) {
	if s == nil {
		return "", errors.New("upload service is not configured")
	}

	glyph, key := resolveInitial(name)
	if glyph == "" || key == "" {
		return "", nil
	}

	filename := fmt.Sprintf("%s%s%s", initialAvatarPrefix, key, initialAvatarExt)
	filePath := filepath.Join(s.uploadDir, filename)
	url := "/uploads/" + filename

	if _, err := os.Stat(filePath); err == nil {
		return url, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	img, err := renderInitialAvatarImage(glyph)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}

	// Write through a temp file so two concurrent requests for the same
	// initial never observe a half-written image.
	tmp, err := os.CreateTemp(s.uploadDir, filename+".tmp-*")
	if err != nil {
		return "", err
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	if err := os.Rename(tmp.Name(), filePath); err != nil {
		if errors.Is(err, os.ErrExist) {
			os.Remove(tmp.Name())
			return url, nil
		}
		os.Remove(tmp.Name())
		return "", err
	}

	return url, nil
}

// IsInitialAvatar reports whether the URL points to a generated placeholder.
func (s *UploadService) IsInitialAvatar(url string) bool {
	if url == "" {
		return false
	}
	return strings.HasPrefix(filepath.Base(url), initialAvatarPrefix)
}

func resolveInitial(name string) (string, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ""
	}

	r, _ := utf8.DecodeRuneInString(trimmed)
	if r == utf8.RuneError {
		return "", ""
	}

	glyph := strings.ToUpper(string(r))
	key := strings.ToLower(glyph)

	if len(key) != 1 || !isASCIIAlphaNumeric(key[0]) {
		key = fmt.Sprintf("u%x", r)
	}

	return glyph, key
}

func isASCIIAlphaNumeric(value byte) bool {
	return (value >= 'a' && value <= 'z') || (value >= '0' && value <= '9')
}

func renderInitialAvatarImage(letter string) (image.Image, error) {
	const size = 256

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	background := color.RGBA{R: 37, G: 99, B: 235, A: 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	face, err := loadMonoFace(float64(size) * 0.5)
	if err != nil {
		return nil, err
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	bounds, _ := font.BoundString(face, letter)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x := (size - textWidth) / 2
	verticalAdjust := int(math.Round(float64(size) * 0.05))
	y := (size+textHeight)/2 - verticalAdjust

	d.Dot = fixed.P(x, y)
	d.DrawString(letter)

	return img, nil
}

func loadMonoFace(size float64) (font.Face, error) {
	fontData, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
