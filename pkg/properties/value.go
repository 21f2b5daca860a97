package properties

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value is a single entry in a property store: either a plain string
// or a whole section of nested key/value pairs. The two shapes are
// never mixed inside one Value.
type Value struct {
	scalar  string
	section *orderedmap.OrderedMap[string, string]
}

// Scalar creates a plain string value
func Scalar(s string) Value {
	return Value{scalar: s}
}

// SectionValue creates a value holding a section's key/value pairs
func SectionValue(m *orderedmap.OrderedMap[string, string]) Value {
	if m == nil {
		m = orderedmap.New[string, string]()
	}
	return Value{section: m}
}

// IsSection reports whether the value is a section rather than a string
func (v Value) IsSection() bool {
	return v.section != nil
}

// String returns the scalar value, or "" for sections
func (v Value) String() string {
	return v.scalar
}

// Section returns the nested mapping, or nil for scalar values
func (v Value) Section() *orderedmap.OrderedMap[string, string] {
	return v.section
}

// SectionKeys returns the section's keys in insertion order, or nil
// for scalar values
func (v Value) SectionKeys() []string {
	if v.section == nil {
		return nil
	}
	keys := make([]string, 0, v.section.Len())
	for pair := v.section.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// copy returns a deep copy of the value
func (v Value) copy() Value {
	if v.section == nil {
		return v
	}
	dup := orderedmap.New[string, string]()
	for pair := v.section.Oldest(); pair != nil; pair = pair.Next() {
		dup.Set(pair.Key, pair.Value)
	}
	return Value{section: dup}
}
