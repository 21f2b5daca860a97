package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/propstore/pkg/properties"
)

func flatStore(t *testing.T) *properties.Properties {
	t.Helper()
	props := properties.New(nil)
	require.NoError(t, props.SetProperty("server.host", "localhost"))
	require.NoError(t, props.SetProperty("server.port", "8080"))
	return props
}

func sectionedStore(t *testing.T) *properties.Properties {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.ini")
	content := "[server]\nhost = localhost\nport = 8080\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	props, err := properties.New(nil).Load(path, true)
	require.NoError(t, err)
	return props
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"ini", "ini", FormatINI, false},
		{"yaml", "yaml", FormatYAML, false},
		{"toml", "toml", FormatTOML, false},
		{"unknown", "json", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderINI(t *testing.T) {
	props := flatStore(t)

	out, err := Render(props, FormatINI)
	require.NoError(t, err)
	assert.Equal(t, props.Render(), out)
}

func TestRenderYAML(t *testing.T) {
	out, err := Render(flatStore(t), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "server.host: localhost")
	assert.Contains(t, out, `server.port: "8080"`)
}

func TestRenderYAMLSectioned(t *testing.T) {
	out, err := Render(sectionedStore(t), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "server:")
	assert.Contains(t, out, "host: localhost")
}

func TestRenderTOML(t *testing.T) {
	out, err := Render(flatStore(t), FormatTOML)
	require.NoError(t, err)
	assert.Contains(t, out, `'server.host' = 'localhost'`)
}

func TestRenderTOMLSectioned(t *testing.T) {
	out, err := Render(sectionedStore(t), FormatTOML)
	require.NoError(t, err)
	assert.Contains(t, out, "[server]")
	assert.Contains(t, out, "host = 'localhost'")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(flatStore(t), Format("json"))
	require.Error(t, err)
}
