// Package modsettings reads and writes the game's module settings file.
//
// The document layout is fixed by the game:
//
//	<save>
//	  <version major="4" minor="7" revision="1" build="3"/>
//	  <region id="ModuleSettings">
//	    <node id="root">
//	      <children>
//	        <node id="Mods">
//	          <children>
//	            <node id="ModuleShortDesc">
//	              <attribute id="Folder" type="LSString" value="..."/>
//	              ...
package modsettings

import (
	"io"
	"strconv"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/arthur-debert/modorder/pkg/version"
	"github.com/beevik/etree"
)

const (
	regionID   = "ModuleSettings"
	modsNodeID = "Mods"
	modNodeID  = "ModuleShortDesc"

	attrFolder        = "Folder"
	attrMD5           = "MD5"
	attrName          = "Name"
	attrPublishHandle = "PublishHandle"
	attrUUID          = "UUID"
	attrVersion64     = "Version64"
)

// DefaultGameVersion is written in the envelope when Options leaves it zero.
var DefaultGameVersion = version.Encode(4, 7, 1, 3)

// Options controls Render.
type Options struct {
	GameVersion version.Code
}

// Render builds the settings document for the given output sequence.
func Render(records []*mod.Record, opts Options) *etree.Document {
	gameVersion := opts.GameVersion
	if gameVersion.IsZero() {
		gameVersion = DefaultGameVersion
	}
	v := gameVersion.Decode()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	save := doc.CreateElement("save")
	ver := save.CreateElement("version")
	ver.CreateAttr("major", strconv.FormatUint(uint64(v.Major), 10))
	ver.CreateAttr("minor", strconv.FormatUint(uint64(v.Minor), 10))
	ver.CreateAttr("revision", strconv.FormatUint(uint64(v.Revision), 10))
	ver.CreateAttr("build", strconv.FormatUint(uint64(v.Build), 10))

	region := save.CreateElement("region")
	region.CreateAttr("id", regionID)
	root := node(region, "root")
	mods := node(root.CreateElement("children"), modsNodeID)
	children := mods.CreateElement("children")

	for _, r := range records {
		if r == nil {
			continue
		}
		n := node(children, modNodeID)
		attribute(n, attrFolder, "LSString", r.Folder)
		attribute(n, attrMD5, "LSString", r.MD5)
		attribute(n, attrName, "LSString", r.Name)
		attribute(n, attrPublishHandle, "uint64", strconv.FormatUint(r.PublishHandle, 10))
		attribute(n, attrUUID, "guid", string(r.UUID))
		attribute(n, attrVersion64, "int64", strconv.FormatInt(r.Version.Int64(), 10))
	}

	return doc
}

// Write renders records and writes the document to w, indented with two
// spaces.
func Write(w io.Writer, records []*mod.Record, opts Options) error {
	logger := logging.GetLogger("modsettings")

	doc := Render(records, opts)
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write settings").
			WithDetail("mods", len(records))
	}

	logger.Debug().Int("mods", len(records)).Msg("Wrote settings document")
	return nil
}

// Settings is the content of a parsed settings file.
type Settings struct {
	GameVersion version.Code
	Mods        []mod.Dependency
}

// Parse reads a settings document. Mod nodes without a UUID are skipped;
// malformed numbers decode as zero.
func Parse(r io.Reader) (*Settings, error) {
	logger := logging.GetLogger("modsettings")

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsParse, "failed to parse settings xml")
	}

	save := doc.SelectElement("save")
	if save == nil {
		return nil, errors.New(errors.ErrSettingsParse, "missing <save> root element")
	}
	region := save.FindElement("region[@id='" + regionID + "']")
	if region == nil {
		return nil, errors.Newf(errors.ErrSettingsParse, "missing %s region", regionID)
	}

	settings := &Settings{}
	if ver := save.SelectElement("version"); ver != nil {
		settings.GameVersion = version.Encode(
			attrUint32(ver, "major"),
			attrUint32(ver, "minor"),
			attrUint32(ver, "revision"),
			attrUint32(ver, "build"),
		)
	}

	for _, n := range region.FindElements(".//node[@id='" + modNodeID + "']") {
		values := attributes(n)
		id := mod.ParseUUID(values[attrUUID])
		if id.IsZero() {
			logger.Warn().Str("name", values[attrName]).Msg("Skipping settings entry without UUID")
			continue
		}
		v64, _ := strconv.ParseInt(values[attrVersion64], 10, 64)
		settings.Mods = append(settings.Mods, mod.Dependency{
			UUID:    id,
			Name:    values[attrName],
			Folder:  values[attrFolder],
			MD5:     values[attrMD5],
			Version: version.FromInt64(v64),
		})
	}

	logger.Debug().Int("mods", len(settings.Mods)).Msg("Parsed settings document")
	return settings, nil
}

func node(parent *etree.Element, id string) *etree.Element {
	n := parent.CreateElement("node")
	n.CreateAttr("id", id)
	return n
}

func attribute(n *etree.Element, id, typ, value string) {
	a := n.CreateElement("attribute")
	a.CreateAttr("id", id)
	a.CreateAttr("type", typ)
	a.CreateAttr("value", value)
}

func attributes(n *etree.Element) map[string]string {
	out := make(map[string]string)
	for _, a := range n.SelectElements("attribute") {
		out[a.SelectAttrValue("id", "")] = a.SelectAttrValue("value", "")
	}
	return out
}

func attrUint32(el *etree.Element, key string) uint32 {
	n, err := strconv.ParseUint(el.SelectAttrValue(key, "0"), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}
