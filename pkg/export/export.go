// Package export renders a property store to alternate text formats.
package export

import (
	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	"github.com/arthur-debert/propstore/pkg/errors"
	"github.com/arthur-debert/propstore/pkg/properties"
)

// Format identifies an output format
type Format string

const (
	FormatINI  Format = "ini"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatINI, FormatYAML, FormatTOML:
		return Format(name), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown export format: %s", name)
	}
}

// Render serializes the store in the given format. INI output preserves
// insertion order; yaml and toml follow their marshaller's ordering.
// Sectioned entries become nested mappings.
func Render(p *properties.Properties, format Format) (string, error) {
	switch format {
	case FormatINI:
		return p.Render(), nil
	case FormatYAML:
		out, err := yaml.Marshal(toMap(p))
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "yaml marshal failed")
		}
		return string(out), nil
	case FormatTOML:
		out, err := toml.Marshal(toMap(p))
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "toml marshal failed")
		}
		return string(out), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown export format: %s", format)
	}
}

func toMap(p *properties.Properties) map[string]interface{} {
	out := make(map[string]interface{}, p.Len())
	for _, entry := range p.Entries() {
		if entry.Value.IsSection() {
			sub := make(map[string]string, entry.Value.Section().Len())
			for pair := entry.Value.Section().Oldest(); pair != nil; pair = pair.Next() {
				sub[pair.Key] = pair.Value
			}
			out[entry.Key] = sub
			continue
		}
		out[entry.Key] = entry.Value.String()
	}
	return out
}
