package service

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractResumeText pulls plain text out of an uploaded resume. The format
// is chosen by file extension: pdf, docx and txt are supported. Legacy
// binary .doc is not a zip container and cannot be parsed here.
func ExtractResumeText(filename string, r io.ReaderAt, size int64) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDFText(r, size)
	case ".docx":
		return extractDocxText(r, size)
	case ".txt":
		return extractPlainText(r, size)
	case ".doc":
		return "", fmt.Errorf("%w: legacy .doc files are not supported, save as .docx or .pdf", ErrUnsupportedFormat)
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractPDFText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not void the rest.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := normalizeResumeText(sb.String())
	if text == "" {
		return "", ErrEmptyResume
	}
	return text, nil
}

// extractDocxText reads word/document.xml out of the docx zip container and
// collects the text runs, inserting newlines at paragraph boundaries.
func extractDocxText(r io.ReaderAt, size int64) (string, error) {
	archive, err := zip.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}

	var document *zip.File
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document = file
			break
		}
	}
	if document == nil {
		return "", errors.New("docx has no document body")
	}

	body, err := document.Open()
	if err != nil {
		return "", err
	}
	defer body.Close()

	decoder := xml.NewDecoder(body)
	var sb strings.Builder
	var inText bool
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse docx: %w", err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			if element.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch element.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(element)
			}
		}
	}

	text := normalizeResumeText(sb.String())
	if text == "" {
		return "", ErrEmptyResume
	}
	return text, nil
}

func extractPlainText(r io.ReaderAt, size int64) (string, error) {
	data, err := io.ReadAll(io.NewSectionReader(r, 0, size))
	if err != nil {
		return "", err
	}

	text := normalizeResumeText(string(data))
	if text == "" {
		return "", ErrEmptyResume
	}
	return text, nil
}

// normalizeResumeText collapses the whitespace noise extraction leaves
// behind while keeping line structure, which the fallback parser relies on.
func normalizeResumeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
