// Package properties implements an INI-backed key/value property store.
// A store is either flat (plain string entries) or sectioned (entries
// grouped under [section] headers); the shape is fixed by the last Load.
// Insertion order is preserved throughout, including serialization.
package properties

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/arthur-debert/propstore/pkg/errors"
	"github.com/arthur-debert/propstore/pkg/logging"
	"github.com/arthur-debert/propstore/pkg/paths"
)

// Properties is an ordered key/value property store
type Properties struct {
	sectioned bool
	items     *orderedmap.OrderedMap[string, Value]
	resolver  *paths.Resolver
}

// Entry is one top-level item of a store, exposed for iteration
type Entry struct {
	Key   string
	Value Value
}

// New creates a property store. When defaults is non-nil the new store
// starts with a deep copy of its mapping (section sub-maps included);
// the sectioned flag always starts false and is only set by Load.
func New(defaults *Properties) *Properties {
	p := &Properties{
		items:    orderedmap.New[string, Value](),
		resolver: paths.New(),
	}
	if defaults != nil {
		for pair := defaults.items.Oldest(); pair != nil; pair = pair.Next() {
			p.items.Set(pair.Key, pair.Value.copy())
		}
	}
	return p
}

// WithResolver replaces the include-path resolver used by Load.
// Returns the store for chaining.
func (p *Properties) WithResolver(r *paths.Resolver) *Properties {
	if r != nil {
		p.resolver = r
	}
	return p
}

// Sectioned reports whether the store holds sectioned entries
func (p *Properties) Sectioned() bool {
	return p.sectioned
}

// Len returns the number of top-level entries
func (p *Properties) Len() int {
	return p.items.Len()
}

// GetProperty returns the value for key. In a sectioned store a section
// argument is required and the lookup is section-then-key. A missing
// key or section is not an error: ok is false and the value empty.
func (p *Properties) GetProperty(key string, section ...string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New(errors.ErrNullKey, "property key is required")
	}

	if p.sectioned {
		sec, err := requiredSection(section)
		if err != nil {
			return "", false, err
		}
		v, ok := p.items.Get(sec)
		if !ok || !v.IsSection() {
			return "", false, nil
		}
		val, ok := v.Section().Get(key)
		return val, ok, nil
	}

	v, ok := p.items.Get(key)
	if !ok || v.IsSection() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// SetProperty inserts or overwrites the value for key. In a sectioned
// store the section must already exist: writes to an unknown section
// are dropped with a warning, the section is not auto-created.
func (p *Properties) SetProperty(key, value string, section ...string) error {
	if key == "" {
		return errors.New(errors.ErrNullKey, "property key is required")
	}

	if p.sectioned {
		sec, err := requiredSection(section)
		if err != nil {
			return err
		}
		v, ok := p.items.Get(sec)
		if !ok || !v.IsSection() {
			logger := logging.GetLogger("properties")
			logger.Warn().
				Str("section", sec).
				Str("key", key).
				Msg("Set on unknown section dropped")
			return nil
		}
		v.Section().Set(key, value)
		return nil
	}

	p.items.Set(key, Scalar(value))
	return nil
}

// GetKeys returns all keys of the store. Flat stores yield top-level
// keys in order; sectioned stores yield the concatenation of every
// section's keys in section-then-key order, without deduplication.
// Top-level scalars of a sectioned store are not included.
func (p *Properties) GetKeys() []string {
	keys := make([]string, 0, p.items.Len())

	for pair := p.items.Oldest(); pair != nil; pair = pair.Next() {
		if p.sectioned {
			if pair.Value.IsSection() {
				keys = append(keys, pair.Value.SectionKeys()...)
			}
			continue
		}
		keys = append(keys, pair.Key)
	}

	return keys
}

// Entries returns the top-level entries in insertion order
func (p *Properties) Entries() []Entry {
	out := make([]Entry, 0, p.items.Len())
	for pair := p.items.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// Render returns the store as INI text: key=value lines in insertion
// order, with [name] headers introducing each section's entries.
func (p *Properties) Render() string {
	var b strings.Builder

	for pair := p.items.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.IsSection() {
			fmt.Fprintf(&b, "[%s]\n", pair.Key)
			for sub := pair.Value.Section().Oldest(); sub != nil; sub = sub.Next() {
				fmt.Fprintf(&b, "%s=%s\n", sub.Key, sub.Value)
			}
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", pair.Key, pair.Value.String())
	}

	return b.String()
}

func requiredSection(section []string) (string, error) {
	if len(section) == 0 || section[0] == "" {
		return "", errors.New(errors.ErrNullSection, "section is required for a sectioned store")
	}
	return section[0], nil
}
