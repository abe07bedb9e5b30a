package pdfform

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

// Field groups of the exported form JSON.
var (
	textGroups  = []string{"textfield", "datefield"}
	radioGroups = []string{"radiobuttongroup"}
)

// fieldSet indexes the fields of an exported form document.
// Values are written into doc in place so it can be fed back for filling.
type fieldSet struct {
	doc    map[string]any
	texts  map[string][]map[string]any
	radios map[string][]map[string]any
}

func parseFields(exported []byte) (*fieldSet, error) {
	var doc map[string]any
	if err := json.Unmarshal(exported, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode form export: %v", domain.ErrArchiveCorrupt, err)
	}

	set := &fieldSet{
		doc:    doc,
		texts:  make(map[string][]map[string]any),
		radios: make(map[string][]map[string]any),
	}

	forms, _ := doc["forms"].([]any)
	for _, raw := range forms {
		form, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		set.index(form, textGroups, set.texts)
		set.index(form, radioGroups, set.radios)
	}
	return set, nil
}

func (s *fieldSet) index(form map[string]any, groups []string, into map[string][]map[string]any) {
	for _, group := range groups {
		entries, _ := form[group].([]any)
		for _, raw := range entries {
			field, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			for _, key := range fieldNames(field) {
				into[key] = append(into[key], field)
			}
		}
	}
}

// fieldNames returns the lookup keys of a field: its full name and the
// last segment of a dotted hierarchical name.
func fieldNames(field map[string]any) []string {
	name, _ := field["name"].(string)
	if name == "" {
		name, _ = field["id"].(string)
	}
	if name == "" {
		return nil
	}
	names := []string{name}
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		names = append(names, name[i+1:])
	}
	return names
}

func (s *fieldSet) setText(name, value string) error {
	fields, ok := s.texts[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrFieldNotFound, name)
	}
	for _, f := range fields {
		f["value"] = value
	}
	return nil
}

func (s *fieldSet) selectOption(name, value string) error {
	fields, ok := s.radios[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrFieldNotFound, name)
	}
	if value == "" {
		return nil
	}
	for _, f := range fields {
		option, ok := matchOption(f, value)
		if !ok {
			return fmt.Errorf("%w: %q is not an option of %s", domain.ErrInvalidInput, value, name)
		}
		f["value"] = option
	}
	return nil
}

// matchOption finds value among the options of a radio group, ignoring case.
// A group that lists no options accepts any value.
func matchOption(field map[string]any, value string) (string, bool) {
	options, _ := field["options"].([]any)
	if len(options) == 0 {
		return value, true
	}
	for _, raw := range options {
		if option, ok := raw.(string); ok && strings.EqualFold(option, value) {
			return option, true
		}
	}
	return "", false
}

func (s *fieldSet) count() int {
	return len(s.texts) + len(s.radios)
}
