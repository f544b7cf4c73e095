// Package display holds the view models the renderers print. Views are
// plain data with JSON tags, built from engine values by the New*
// constructors.
package display

import (
	"github.com/arthur-debert/modorder/pkg/style"
	"github.com/arthur-debert/modorder/pkg/validate"
)

// ModView is one catalog record.
type ModView struct {
	UUID                string   `json:"uuid"`
	Name                string   `json:"name"`
	Folder              string   `json:"folder,omitempty"`
	Version             string   `json:"version"`
	ModType             string   `json:"modType,omitempty"`
	Dependencies        []string `json:"dependencies,omitempty"`
	MissingDependencies []string `json:"missingDependencies,omitempty"`
	Project             bool     `json:"project,omitempty"`
	Builtin             bool     `json:"builtin,omitempty"`
}

// CatalogView is the user-facing catalog.
type CatalogView struct {
	Mods []ModView `json:"mods"`
}

// OrderEntryView is one load order entry with its validation state.
type OrderEntryView struct {
	Position int          `json:"position"`
	UUID     string       `json:"uuid"`
	Name     string       `json:"name"`
	Version  string       `json:"version,omitempty"`
	Status   style.Status `json:"status"`
	Note     string       `json:"note,omitempty"`
	Project  bool         `json:"project,omitempty"`
}

// OrderView is a load order annotated against the catalog.
type OrderView struct {
	Name    string           `json:"name"`
	Status  style.Status     `json:"status"`
	Entries []OrderEntryView `json:"entries"`
}

// ReportView is a validation report for a named order.
type ReportView struct {
	Order  string           `json:"order"`
	Report *validate.Report `json:"report"`
}

// ExportView describes a written settings file.
type ExportView struct {
	Order     string    `json:"order"`
	Path      string    `json:"path,omitempty"`
	Mods      []ModView `json:"mods"`
	AutoAdded []string  `json:"autoAdded,omitempty"`
	Skipped   []string  `json:"skipped,omitempty"`
}

// OrderListView lists saved orders.
type OrderListView struct {
	Active string   `json:"active,omitempty"`
	Orders []string `json:"orders"`
}
