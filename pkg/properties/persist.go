package properties

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/propstore/pkg/errors"
	"github.com/arthur-debert/propstore/pkg/logging"
)

// Store writes the mapping back to path as INI text, creating or
// truncating the file. The path is used literally, the include path is
// not consulted. Values are backslash-escaped for format-unsafe
// characters. Sectioned entries are written as full [name] blocks.
//
// Fails with STORE when the file cannot be opened, written, or closed;
// the handle is released on every exit path.
func (p *Properties) Store(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrStore, "cannot open %s for writing", path)
	}

	if err := p.write(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, errors.ErrStore, "cannot write %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrStore, "cannot close %s", path)
	}

	logger := logging.GetLogger("properties")
	logger.Debug().
		Str("path", path).
		Int("entries", p.items.Len()).
		Msg("Property file stored")

	return nil
}

func (p *Properties) write(f *os.File) error {
	for pair := p.items.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.IsSection() {
			if _, err := fmt.Fprintf(f, "[%s]\n", pair.Key); err != nil {
				return err
			}
			for sub := pair.Value.Section().Oldest(); sub != nil; sub = sub.Next() {
				if _, err := fmt.Fprintf(f, "%s = %s\n", sub.Key, addSlashes(sub.Value)); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := fmt.Fprintf(f, "%s = %s\n", pair.Key, addSlashes(pair.Value.String())); err != nil {
			return err
		}
	}
	return nil
}

// addSlashes backslash-escapes characters that are unsafe in the
// stored text: quotes, backslashes and NUL bytes.
func addSlashes(s string) string {
	if !strings.ContainsAny(s, "\\\"'\x00") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		switch r {
		case '\\', '"', '\'':
			b.WriteByte('\\')
			b.WriteRune(r)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
