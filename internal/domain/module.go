package domain

import "regexp"

// ModuleExt is the file extension of every module document.
const ModuleExt = ".json"

// Names of the modules the presence check reports on.
const (
	Module1 = "module1"
	Module2 = "module2"
)

// WellKnownModules lists the modules shown as tabs on the landing page, in order.
var WellKnownModules = []string{Module1, Module2}

// identifierPattern restricts identifiers to a single safe path segment.
// Dots and separators are excluded so an identifier can never escape the
// modules directory.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,127}$`)

// ValidIdentifier reports whether id may name a module file.
func ValidIdentifier(id string) bool {
	return identifierPattern.MatchString(id)
}

// ModuleFilename returns the file name of the module relative to the modules directory.
func ModuleFilename(id string) string {
	return id + ModuleExt
}

// Presence reports which of the well-known modules exist on disk.
type Presence struct {
	Module1 bool `json:"module1"`
	Module2 bool `json:"module2"`
}

// Has returns the presence flag for a well-known module name.
func (p Presence) Has(id string) bool {
	switch id {
	case Module1:
		return p.Module1
	case Module2:
		return p.Module2
	}
	return false
}
