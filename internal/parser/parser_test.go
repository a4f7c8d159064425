package parser_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imishinist/tplgen/internal/parser"
)

var wantScalars = map[string]string{
	"name":  "World",
	"port":  "8080",
	"debug": "true",
	"ratio": "1.5",
	"empty": "",
}

func TestParseJSONParams(t *testing.T) {
	input := `{"parameters": {"name": "World", "port": 8080, "debug": true, "ratio": 1.5, "empty": null}}`

	got, err := parser.ParseJSONParams(strings.NewReader(input))
	require.NoError(t, err)
	if diff := cmp.Diff(wantScalars, got); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAMLParams(t *testing.T) {
	input := `
parameters:
  name: World
  port: 8080
  debug: true
  ratio: 1.5
  empty:
`

	got, err := parser.ParseYAMLParams(strings.NewReader(input))
	require.NoError(t, err)
	if diff := cmp.Diff(wantScalars, got); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAMLParamsEmptyDocument(t *testing.T) {
	got, err := parser.ParseYAMLParams(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseTOMLParams(t *testing.T) {
	input := `
[parameters]
name = "World"
port = 8080
debug = true
ratio = 1.5
empty = ""
`

	got, err := parser.ParseTOMLParams(strings.NewReader(input))
	require.NoError(t, err)
	if diff := cmp.Diff(wantScalars, got); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsNestedValues(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (map[string]string, error)
		input string
	}{
		{"json", func(s string) (map[string]string, error) { return parser.ParseJSONParams(strings.NewReader(s)) }, `{"parameters": {"db": {"host": "x"}}}`},
		{"yaml", func(s string) (map[string]string, error) { return parser.ParseYAMLParams(strings.NewReader(s)) }, "parameters:\n  hosts: [a, b]\n"},
		{"toml", func(s string) (map[string]string, error) { return parser.ParseTOMLParams(strings.NewReader(s)) }, "[parameters.db]\nhost = \"x\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "must be a scalar")
		})
	}
}

func TestParseInvalidSyntax(t *testing.T) {
	_, err := parser.ParseJSONParams(strings.NewReader(`{"parameters": `))
	assert.ErrorContains(t, err, "failed to parse JSON parameters")

	_, err = parser.ParseYAMLParams(strings.NewReader("parameters: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse YAML parameters")

	_, err = parser.ParseTOMLParams(strings.NewReader("parameters = = 1"))
	assert.ErrorContains(t, err, "failed to parse TOML parameters")
}

func TestParseParamsFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"params.json": `{"parameters": {"name": "json"}}`,
		"params.yaml": "parameters:\n  name: yaml\n",
		"params.YML":  "parameters:\n  name: yml\n",
		"params.toml": "[parameters]\nname = \"toml\"\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	for name, want := range map[string]string{
		"params.json": "json",
		"params.yaml": "yaml",
		"params.YML":  "yml",
		"params.toml": "toml",
	} {
		t.Run(name, func(t *testing.T) {
			got, err := parser.ParseParamsFile(filepath.Join(dir, name))
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"name": want}, got)
		})
	}
}

func TestParseParamsFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "params.txt")
		require.NoError(t, os.WriteFile(path, []byte("name=x"), 0o644))

		_, err := parser.ParseParamsFile(path)

		var fileErr *parser.FileError
		require.ErrorAs(t, err, &fileErr)
		assert.Equal(t, path, fileErr.Path)
		assert.Contains(t, err.Error(), "unsupported file format: .txt")
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(dir, "missing.yaml")

		_, err := parser.ParseParamsFile(path)

		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "cannot load parameters from "+path)
	})
}

func TestIsSupported(t *testing.T) {
	assert.True(t, parser.IsSupported("a.json"))
	assert.True(t, parser.IsSupported("dir/a.YAML"))
	assert.True(t, parser.IsSupported("a.yml"))
	assert.True(t, parser.IsSupported("a.toml"))
	assert.False(t, parser.IsSupported("a.txt"))
	assert.False(t, parser.IsSupported("yaml"))
}
