package properties

import (
	"bytes"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	ini "gopkg.in/ini.v1"

	"github.com/arthur-debert/propstore/pkg/errors"
	"github.com/arthur-debert/propstore/pkg/logging"
)

// Load reads and parses the property file at path, replacing the
// store's entire mapping. The path is resolved against the include
// path, first readable match wins. With sections enabled, [name]
// headers group the following keys into section entries and keys
// before the first header stay top-level; without sections every key
// lands at the top level, section headers included. Returns the store
// for chaining.
//
// Fails with FILE_NOT_FOUND when the path cannot be resolved or read,
// FILE_EMPTY when the file holds nothing but whitespace, and PARSE
// when the content is not valid INI.
func (p *Properties) Load(path string, sections bool) (*Properties, error) {
	logger := logging.GetLogger("properties")

	resolved, err := p.resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, "cannot read %s", resolved)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Newf(errors.ErrFileEmpty, "property file is empty: %s", resolved)
	}

	f, err := ini.Load(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse, "cannot parse %s", resolved)
	}

	items := orderedmap.New[string, Value]()
	for _, sec := range f.Sections() {
		switch {
		case sec.Name() == ini.DefaultSection:
			// Keys before the first [section] header
			for _, key := range sec.Keys() {
				items.Set(key.Name(), Scalar(key.Value()))
			}
		case sections:
			sub := orderedmap.New[string, string]()
			for _, key := range sec.Keys() {
				sub.Set(key.Name(), key.Value())
			}
			items.Set(sec.Name(), SectionValue(sub))
		default:
			for _, key := range sec.Keys() {
				items.Set(key.Name(), Scalar(key.Value()))
			}
		}
	}

	p.items = items
	p.sectioned = sections

	logger.Debug().
		Str("path", resolved).
		Bool("sections", sections).
		Int("entries", items.Len()).
		Msg("Property file loaded")

	return p, nil
}
