package modsettings

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/arthur-debert/modorder/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	gustavUUID = "28ac9ce2-2aba-8cda-b3b5-6e922f71b6b8"
	modUUID    = "d5b7ab2d-5ad5-4e4b-9cf3-4c5ad23e8c1b"
)

func records() []*mod.Record {
	return []*mod.Record{
		{
			UUID:    gustavUUID,
			Name:    "GustavDev",
			Folder:  "GustavDev",
			Version: version.Encode(4, 0, 0, 0),
		},
		{
			UUID:          modUUID,
			Name:          "Better Tooltips & More",
			Folder:        "BetterTooltips",
			MD5:           "5d41402abc4b2a76b9719d911017c592",
			PublishHandle: 4521789,
			Version:       version.Encode(1, 2, 3, 4),
		},
	}
}

func TestWriteDocumentShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records(), Options{GameVersion: version.Encode(4, 7, 1, 3)}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<version major="4" minor="7" revision="1" build="3"/>`)
	assert.Contains(t, out, "\n  <region id=\"ModuleSettings\">")
	assert.Equal(t, 2, strings.Count(out, `<node id="ModuleShortDesc">`))
	assert.Contains(t, out, `<attribute id="Name" type="LSString" value="Better Tooltips &amp; More"/>`)
	assert.Contains(t, out, `<attribute id="PublishHandle" type="uint64" value="4521789"/>`)
	assert.Contains(t, out, `<attribute id="UUID" type="guid" value="`+modUUID+`"/>`)
}

func TestRenderAttributesInFixedOrder(t *testing.T) {
	doc := Render(records(), Options{})

	nodes := doc.FindElements("//node[@id='ModuleShortDesc']")
	require.Len(t, nodes, 2)

	for _, n := range nodes {
		var ids, types []string
		for _, a := range n.SelectElements("attribute") {
			ids = append(ids, a.SelectAttrValue("id", ""))
			types = append(types, a.SelectAttrValue("type", ""))
		}
		assert.Equal(t, []string{"Folder", "MD5", "Name", "PublishHandle", "UUID", "Version64"}, ids)
		assert.Equal(t, []string{"LSString", "LSString", "LSString", "uint64", "guid", "int64"}, types)
	}
}

func TestRenderDefaultsGameVersion(t *testing.T) {
	doc := Render(nil, Options{})
	ver := doc.FindElement("//save/version")
	require.NotNil(t, ver)

	want := DefaultGameVersion.Decode()
	assert.Equal(t, want.String(), strings.Join([]string{
		ver.SelectAttrValue("major", ""),
		ver.SelectAttrValue("minor", ""),
		ver.SelectAttrValue("revision", ""),
		ver.SelectAttrValue("build", ""),
	}, "."))
	assert.Empty(t, doc.FindElements("//node[@id='ModuleShortDesc']"))
}

func TestParseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records(), Options{GameVersion: version.Encode(4, 7, 1, 3)}))

	settings, err := Parse(&buf)
	require.NoError(t, err)

	assert.Equal(t, version.Encode(4, 7, 1, 3), settings.GameVersion)
	require.Len(t, settings.Mods, 2)
	assert.Equal(t, mod.UUID(gustavUUID), settings.Mods[0].UUID)
	assert.Equal(t, mod.Dependency{
		UUID:    modUUID,
		Name:    "Better Tooltips & More",
		Folder:  "BetterTooltips",
		MD5:     "5d41402abc4b2a76b9719d911017c592",
		Version: version.Encode(1, 2, 3, 4),
	}, settings.Mods[1])
}

func TestParseSkipsEntriesWithoutUUID(t *testing.T) {
	input := `<?xml version="1.0" encoding="UTF-8"?>
<save>
  <region id="ModuleSettings">
    <node id="root"><children><node id="Mods"><children>
      <node id="ModuleShortDesc">
        <attribute id="Name" type="LSString" value="Nameless"/>
      </node>
      <node id="ModuleShortDesc">
        <attribute id="UUID" type="guid" value="` + strings.ToUpper(modUUID) + `"/>
        <attribute id="Version64" type="int64" value="not-a-number"/>
      </node>
    </children></node></children></node>
  </region>
</save>`

	settings, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, settings.Mods, 1)
	assert.Equal(t, mod.UUID(modUUID), settings.Mods[0].UUID)
	assert.True(t, settings.Mods[0].Version.IsZero())
	assert.True(t, settings.GameVersion.IsZero())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not xml", "<save><region></save>"},
		{"wrong root", "<config/>"},
		{"missing region", `<save><region id="Other"/></save>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsParse))
		})
	}
}
