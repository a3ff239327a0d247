package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// Component is one block of a website document. Type selects which payload
// shape is valid inside Data; the component registry owns that mapping.
// ID is assigned at creation, never changes, and is the identity used for
// reordering and targeted updates.
type Component struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Data   JSONMap        `json:"data"`
	Styles StyleOverrides `json:"styles,omitempty"`
}

// NewComponent creates a component with a fresh id.
func NewComponent(componentType string, data JSONMap) Component {
	if data == nil {
		data = JSONMap{}
	}
	return Component{
		ID:   uuid.New().String(),
		Type: componentType,
		Data: data,
	}
}

// Clone returns a deep copy sharing no state with the receiver. The id is
// preserved; use CloneWithNewID when duplicating inside the same document.
func (c Component) Clone() Component {
	return Component{
		ID:     c.ID,
		Type:   c.Type,
		Data:   deepCopyMap(c.Data),
		Styles: c.Styles.Clone(),
	}
}

// CloneWithNewID deep-copies the component under a freshly generated id.
func (c Component) CloneWithNewID() Component {
	cloned := c.Clone()
	cloned.ID = uuid.New().String()
	return cloned
}

// StyleOverrides holds the per-component visual overrides. The property set
// is closed so the three-tier resolution (override > palette > fallback)
// stays statically checkable; nil means "inherit".
type StyleOverrides struct {
	Color           *string `json:"color,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	TitleColor      *string `json:"titleColor,omitempty"`
	BorderRadius    *string `json:"borderRadius,omitempty"`
	Padding         *string `json:"padding,omitempty"`
	Margin          *string `json:"margin,omitempty"`
	BoxShadow       *string `json:"boxShadow,omitempty"`
	FontSize        *string `json:"fontSize,omitempty"`
	TextAlign       *string `json:"textAlign,omitempty"`
	MaxWidth        *string `json:"maxWidth,omitempty"`
}

func (s StyleOverrides) Clone() StyleOverrides {
	return StyleOverrides{
		Color:           cloneStringPtr(s.Color),
		BackgroundColor: cloneStringPtr(s.BackgroundColor),
		TitleColor:      cloneStringPtr(s.TitleColor),
		BorderRadius:    cloneStringPtr(s.BorderRadius),
		Padding:         cloneStringPtr(s.Padding),
		Margin:          cloneStringPtr(s.Margin),
		BoxShadow:       cloneStringPtr(s.BoxShadow),
		FontSize:        cloneStringPtr(s.FontSize),
		TextAlign:       cloneStringPtr(s.TextAlign),
		MaxWidth:        cloneStringPtr(s.MaxWidth),
	}
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// DesignPalette carries the global theme tokens every component inherits
// unless it overrides a property itself.
type DesignPalette struct {
	PrimaryColor     string `json:"primaryColor" validate:"hexcolor_opt"`
	BackgroundColor  string `json:"backgroundColor" validate:"hexcolor_opt"`
	TitleColor       string `json:"titleColor" validate:"hexcolor_opt"`
	DescriptionColor string `json:"descriptionColor" validate:"hexcolor_opt"`
	FontFamily       string `json:"fontFamily"`
	BorderRadius     string `json:"borderRadius"`
}

// DefaultPalette returns the palette new websites start with.
func DefaultPalette() DesignPalette {
	return DesignPalette{
		PrimaryColor:     "#2563eb",
		BackgroundColor:  "#ffffff",
		TitleColor:       "#111827",
		DescriptionColor: "#4b5563",
		FontFamily:       "Inter",
		BorderRadius:     "8px",
	}
}

// Normalized fills empty tokens from the default palette so legacy documents
// saved before a token existed still resolve every property.
func (p DesignPalette) Normalized() DesignPalette {
	def := DefaultPalette()
	if p.PrimaryColor == "" {
		p.PrimaryColor = def.PrimaryColor
	}
	if p.BackgroundColor == "" {
		p.BackgroundColor = def.BackgroundColor
	}
	if p.TitleColor == "" {
		p.TitleColor = def.TitleColor
	}
	if p.DescriptionColor == "" {
		p.DescriptionColor = def.DescriptionColor
	}
	if p.FontFamily == "" {
		p.FontFamily = def.FontFamily
	}
	if p.BorderRadius == "" {
		p.BorderRadius = def.BorderRadius
	}
	return p
}

func (p DesignPalette) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *DesignPalette) Scan(value interface{}) error {
	if value == nil {
		*p = DefaultPalette()
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DesignPalette")
	}

	return json.Unmarshal(bytes, p)
}

// SEOSettings is rendered into head tags at publish/preview time only.
type SEOSettings struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	OGImage      string `json:"ogImage"`
	CanonicalURL string `json:"canonicalUrl"`
}

func (s SEOSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SEOSettings) Scan(value interface{}) error {
	if value == nil {
		*s = SEOSettings{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SEOSettings")
	}

	return json.Unmarshal(bytes, s)
}

// ComponentList is the ordered component sequence of one website. Ordering
// is user-controlled and significant; every operation below returns a new
// slice and leaves the receiver untouched, which keeps persistence diffing
// and undo behavior predictable.
type ComponentList []Component

func (cl ComponentList) Value() (driver.Value, error) {
	if len(cl) == 0 {
		return nil, nil
	}
	return json.Marshal(cl)
}

func (cl *ComponentList) Scan(value interface{}) error {
	if value == nil {
		*cl = ComponentList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ComponentList")
	}

	return json.Unmarshal(bytes, cl)
}

// FindIndex returns the position of the component with the given id, or -1.
func (cl ComponentList) FindIndex(id string) int {
	for i := range cl {
		if cl[i].ID == id {
			return i
		}
	}
	return -1
}

func (cl ComponentList) ContainsID(id string) bool {
	return cl.FindIndex(id) >= 0
}

// Insert places comp at the given index; any out-of-range index appends.
func (cl ComponentList) Insert(comp Component, at int) ComponentList {
	if at < 0 || at > len(cl) {
		at = len(cl)
	}

	result := make(ComponentList, 0, len(cl)+1)
	result = append(result, cl[:at]...)
	result = append(result, comp)
	result = append(result, cl[at:]...)
	return result
}

// Reorder moves one component from one position to another. It is a stable
// array move: every other relative ordering is preserved. Out-of-range
// indices leave the list unchanged.
func (cl ComponentList) Reorder(from, to int) ComponentList {
	if from < 0 || from >= len(cl) || to < 0 || to >= len(cl) {
		return cl
	}

	result := make(ComponentList, len(cl))
	copy(result, cl)

	moved := result[from]
	result = append(result[:from], result[from+1:]...)

	tail := make(ComponentList, 0, len(cl))
	tail = append(tail, result[:to]...)
	tail = append(tail, moved)
	tail = append(tail, result[to:]...)
	return tail
}

// Duplicate clones the component at index under a fresh id and inserts the
// copy immediately after the original.
func (cl ComponentList) Duplicate(index int) ComponentList {
	if index < 0 || index >= len(cl) {
		return cl
	}
	return cl.Insert(cl[index].CloneWithNewID(), index+1)
}

// Remove deletes the component at index. Ids of the remaining components
// are unaffected.
func (cl ComponentList) Remove(index int) ComponentList {
	if index < 0 || index >= len(cl) {
		return cl
	}

	result := make(ComponentList, 0, len(cl)-1)
	result = append(result, cl[:index]...)
	result = append(result, cl[index+1:]...)
	return result
}

// Update shallow-merges patch into the Data of the component matching id.
// A missing id is a deliberate no-op: the editor issues updates from async
// callbacks and a stale id after a concurrent remove must not fail the
// whole document write.
func (cl ComponentList) Update(id string, patch JSONMap) ComponentList {
	index := cl.FindIndex(id)
	if index < 0 || len(patch) == 0 {
		return cl
	}

	result := make(ComponentList, len(cl))
	copy(result, cl)

	updated := result[index].Clone()
	for key, value := range patch {
		updated.Data[key] = value
	}
	result[index] = updated
	return result
}

// UpdateStyles replaces the style overrides of the component matching id,
// with the same missing-id policy as Update.
func (cl ComponentList) UpdateStyles(id string, styles StyleOverrides) ComponentList {
	index := cl.FindIndex(id)
	if index < 0 {
		return cl
	}

	result := make(ComponentList, len(cl))
	copy(result, cl)

	updated := result[index].Clone()
	updated.Styles = styles.Clone()
	result[index] = updated
	return result
}

// Clone deep-copies the whole list.
func (cl ComponentList) Clone() ComponentList {
	result := make(ComponentList, len(cl))
	for i := range cl {
		result[i] = cl[i].Clone()
	}
	return result
}

func deepCopyMap(src JSONMap) JSONMap {
	if src == nil {
		return JSONMap{}
	}

	dst := make(JSONMap, len(src))
	for key, value := range src {
		dst[key] = deepCopyValue(value)
	}
	return dst
}

func deepCopyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		copied := make(map[string]interface{}, len(v))
		for key, inner := range v {
			copied[key] = deepCopyValue(inner)
		}
		return copied
	case JSONMap:
		copied := make(map[string]interface{}, len(v))
		for key, inner := range v {
			copied[key] = deepCopyValue(inner)
		}
		return copied
	case []interface{}:
		copied := make([]interface{}, len(v))
		for i, inner := range v {
			copied[i] = deepCopyValue(inner)
		}
		return copied
	default:
		return v
	}
}
