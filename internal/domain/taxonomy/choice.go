package taxonomy

import (
	"encoding/json"
	"strings"
)

// AddNewLabel is the option label the wizard shows for entering a custom
// subject, chapter, or board. Older clients send it as the selected value.
const AddNewLabel = "Add New"

type choiceKind uint8

const (
	choiceNone choiceKind = iota
	choiceSelected
	choiceAddNew
)

// Choice is a wizard field that is either a value picked from a list or a
// custom value the user is typing in. The zero Choice means nothing has been
// chosen yet.
type Choice struct {
	kind  choiceKind
	value string
}

// Selected returns a Choice for a value picked from the offered options.
func Selected(value string) Choice {
	return Choice{kind: choiceSelected, value: value}
}

// AddNew returns a Choice for a custom value that is still being entered.
func AddNew(pending string) Choice {
	return Choice{kind: choiceAddNew, value: pending}
}

// IsZero reports whether nothing has been chosen.
func (c Choice) IsZero() bool { return c.kind == choiceNone }

// IsAddNew reports whether the choice is a custom value.
func (c Choice) IsAddNew() bool { return c.kind == choiceAddNew }

// Value returns the chosen value, or the trimmed pending text for a custom
// value. It is empty for the zero Choice.
func (c Choice) Value() string {
	switch c.kind {
	case choiceSelected:
		return c.value
	case choiceAddNew:
		return strings.TrimSpace(c.value)
	}
	return ""
}

// IsConcrete reports whether the choice names an actual value: a non-empty
// selection, or a custom value whose text has been filled in.
func (c Choice) IsConcrete() bool {
	return c.kind != choiceNone && c.Value() != ""
}

func (c Choice) String() string { return c.Value() }

type choiceWire struct {
	Value  string `json:"value"`
	AddNew bool   `json:"addNew,omitempty"`
}

// MarshalJSON encodes a Choice as {"value": "...", "addNew": bool}, or null
// when nothing has been chosen.
func (c Choice) MarshalJSON() ([]byte, error) {
	if c.kind == choiceNone {
		return []byte("null"), nil
	}
	return json.Marshal(choiceWire{Value: c.value, AddNew: c.kind == choiceAddNew})
}

// UnmarshalJSON accepts the object form, a bare string, or null. A bare
// string equal to AddNewLabel decodes as an empty custom value.
func (c *Choice) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = Choice{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = ParseLegacy(s)
		return nil
	}
	var w choiceWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.AddNew {
		*c = AddNew(w.Value)
	} else if w.Value == "" {
		*c = Choice{}
	} else {
		*c = Selected(w.Value)
	}
	return nil
}

// ParseLegacy maps the sentinel-string form used by older clients onto a
// Choice: "" is nothing chosen, AddNewLabel is an empty custom value, and
// anything else is a selection.
func ParseLegacy(s string) Choice {
	switch strings.TrimSpace(s) {
	case "":
		return Choice{}
	case AddNewLabel:
		return AddNew("")
	}
	return Selected(strings.TrimSpace(s))
}
