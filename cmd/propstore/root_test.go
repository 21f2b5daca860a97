package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flatFixture = `property.key.01 = Foo test
property.key.02 = Bar test
`

const sectionedFixture = `[foo]
property.key.01 = Foo test

[bar]
property.key.03 = Test foo
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.properties")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGetCmd(t *testing.T) {
	path := writeFixture(t, flatFixture)

	out, err := execute(t, "-f", path, "get", "property.key.01")
	require.NoError(t, err)
	assert.Equal(t, "Foo test\n", out)
}

func TestGetCmdSectioned(t *testing.T) {
	path := writeFixture(t, sectionedFixture)

	out, err := execute(t, "-f", path, "--sections", "get", "property.key.03", "bar")
	require.NoError(t, err)
	assert.Equal(t, "Test foo\n", out)
}

func TestGetCmdMissingKey(t *testing.T) {
	path := writeFixture(t, flatFixture)

	_, err := execute(t, "-f", path, "get", "property.key.99")
	require.Error(t, err)
}

func TestSetCmdRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.properties")

	_, err := execute(t, "-f", path, "set", "property.key.01", "Foo test")
	require.NoError(t, err)

	out, err := execute(t, "-f", path, "get", "property.key.01")
	require.NoError(t, err)
	assert.Equal(t, "Foo test\n", out)
}

func TestSetCmdExistingSection(t *testing.T) {
	path := writeFixture(t, sectionedFixture)

	_, err := execute(t, "-f", path, "--sections", "set", "property.key.02", "Bar test", "foo")
	require.NoError(t, err)

	out, err := execute(t, "-f", path, "--sections", "get", "property.key.02", "foo")
	require.NoError(t, err)
	assert.Equal(t, "Bar test\n", out)
}

func TestSetCmdSectionedMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.ini")

	// A fresh store cannot hold sections, so the command must refuse
	// instead of dropping the key at the top level
	_, err := execute(t, "-f", path, "--sections", "set", "property.key.01", "Foo test", "foo")
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestKeysCmd(t *testing.T) {
	path := writeFixture(t, flatFixture)

	out, err := execute(t, "-f", path, "keys")
	require.NoError(t, err)
	assert.Equal(t, "property.key.01\nproperty.key.02\n", out)
}

func TestRenderCmd(t *testing.T) {
	path := writeFixture(t, flatFixture)

	out, err := execute(t, "-f", path, "render")
	require.NoError(t, err)
	assert.Equal(t, "property.key.01=Foo test\nproperty.key.02=Bar test\n", out)
}

func TestExportCmdYAML(t *testing.T) {
	path := writeFixture(t, flatFixture)

	out, err := execute(t, "-f", path, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "property.key.01: Foo test")
}

func TestExportCmdDefaultFormatFromConfig(t *testing.T) {
	dir := t.TempDir()
	content := `[export]
format = "yaml"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "propstore.toml"), []byte(content), 0644))

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })

	path := writeFixture(t, flatFixture)

	out, err := execute(t, "-f", path, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "property.key.01: Foo test")
}

func TestExportCmdUnknownFormat(t *testing.T) {
	path := writeFixture(t, flatFixture)

	_, err := execute(t, "-f", path, "export", "--format", "json")
	require.Error(t, err)
}

func TestMissingFileFlag(t *testing.T) {
	_, err := execute(t, "keys")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "-f", "ignored", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version")
}
