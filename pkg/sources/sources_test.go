package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/arthur-debert/modorder/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonManifest = `{
  "mods": [
    {
      "uuid": "D5B7AB2D-5AD5-4E4B-9CF3-4C5AD23E8C1B",
      "name": "Tooltips",
      "folder": "Tooltips",
      "md5": "abc",
      "version64": 36028797018963968,
      "publish_handle": 42,
      "dependencies": [{"uuid": "7e737d2f-31d2-4751-963f-be6ccc59cd0c", "name": "Lib"}],
      "extension": {"required": true, "version": 18}
    }
  ]
}`

const yamlManifest = `mods:
  - uuid: 7e737d2f-31d2-4751-963f-be6ccc59cd0c
    name: Lib
    folder: Lib
    version: "1.2.0.0"
    mod_type: Add-on
    tags: [library, core]
    last_modified: 2024-05-01T10:00:00Z
`

const tomlManifest = `[[mods]]
uuid = "28ac9ce2-2aba-8cda-b3b5-6e922f71b6b8"
name = "Campaign"
folder = "Campaign"
mod_type = "Adventure"
version64 = 36028797018963968

[[mods.dependencies]]
uuid = "7e737d2f-31d2-4751-963f-be6ccc59cd0c"
name = "Lib"
`

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		check  func(t *testing.T, r *mod.Record)
	}{
		{
			name:   "json",
			data:   jsonManifest,
			format: FormatJSON,
			check: func(t *testing.T, r *mod.Record) {
				assert.Equal(t, mod.UUID("d5b7ab2d-5ad5-4e4b-9cf3-4c5ad23e8c1b"), r.UUID)
				assert.Equal(t, version.Encode(1, 0, 0, 0), r.Version)
				assert.Equal(t, uint64(42), r.PublishHandle)
				assert.Equal(t, mod.Extension{Required: true, Version: 18}, r.Extension)
				require.Len(t, r.Dependencies, 1)
				assert.Equal(t, "Lib", r.Dependencies[0].Name)
			},
		},
		{
			name:   "yaml with dotted version",
			data:   yamlManifest,
			format: FormatYAML,
			check: func(t *testing.T, r *mod.Record) {
				assert.Equal(t, version.Encode(1, 2, 0, 0), r.Version)
				assert.Equal(t, []string{"library", "core"}, r.Tags)
				require.NotNil(t, r.LastModified)
				assert.Equal(t, 2024, r.LastModified.Year())
			},
		},
		{
			name:   "toml",
			data:   tomlManifest,
			format: FormatTOML,
			check: func(t *testing.T, r *mod.Record) {
				assert.True(t, r.IsAdventure())
				require.Len(t, r.Dependencies, 1)
				assert.Equal(t, mod.UUID("7e737d2f-31d2-4751-963f-be6ccc59cd0c"), r.Dependencies[0].UUID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Decode([]byte(tt.data), tt.format, KindInstalled)
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.False(t, records[0].IsBuiltin)
			assert.False(t, records[0].IsProject)
			tt.check(t, records[0])
		})
	}
}

func TestDecodeKindFlags(t *testing.T) {
	builtin, err := Decode([]byte(yamlManifest), FormatYAML, KindBuiltin)
	require.NoError(t, err)
	assert.True(t, builtin[0].IsBuiltin)

	project, err := Decode([]byte(yamlManifest), FormatYAML, KindProject)
	require.NoError(t, err)
	assert.True(t, project[0].IsProject)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		code   errors.ErrorCode
	}{
		{"malformed json", `{"mods": [`, FormatJSON, errors.ErrSourceParse},
		{"malformed toml", `mods = [[`, FormatTOML, errors.ErrSourceParse},
		{"unknown format", `{}`, Format("ini"), errors.ErrSourceParse},
		{"bad version string", "mods:\n  - uuid: a\n    version: 1.x\n", FormatYAML, errors.ErrSourceParse},
		{"missing uuid", "mods:\n  - name: Nameless\n", FormatYAML, errors.ErrMissingIdentity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format, KindInstalled)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlManifest), 0644))

	records, err := Load(path, KindProject)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].IsProject)

	_, err = Load(filepath.Join(dir, "absent.json"), KindInstalled)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceLoad))

	_, err = Load(filepath.Join(dir, "mods.ini"), KindInstalled)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceParse))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	builtin := filepath.Join(dir, "builtin.yml")
	installed := filepath.Join(dir, "installed.json")
	require.NoError(t, os.WriteFile(builtin, []byte(yamlManifest), 0644))
	require.NoError(t, os.WriteFile(installed, []byte(jsonManifest), 0644))

	loaded, err := LoadAll([]Source{{builtin, KindBuiltin}, {installed, KindInstalled}})
	require.NoError(t, err)
	assert.Len(t, loaded[KindBuiltin], 1)
	assert.Len(t, loaded[KindInstalled], 1)
	assert.Empty(t, loaded[KindProject])
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Project ")
	require.NoError(t, err)
	assert.Equal(t, KindProject, k)

	_, err = ParseKind("remote")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
