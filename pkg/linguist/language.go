package linguist

import (
	"slices"
	"strings"
)

// Language is the metadata Linguist records for a single language.
type Language struct {
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Color              string   `json:"color,omitempty"`
	Aliases            []string `json:"aliases"`
	Extensions         []string `json:"extensions"`
	Interpreters       []string `json:"interpreters"`
	Group              string   `json:"group,omitempty"`
	TMScope            string   `json:"tm_scope,omitempty"`
	AceMode            string   `json:"ace_mode,omitempty"`
	CodemirrorMode     string   `json:"codemirror_mode,omitempty"`
	CodemirrorMimeType string   `json:"codemirror_mime_type,omitempty"`
	LanguageID         int      `json:"language_id"`
}

// Category values used by Linguist. Type is an open string; these are the
// ones present in the upstream dataset.
const (
	TypeData        = "data"
	TypeProgramming = "programming"
	TypeMarkup      = "markup"
	TypeProse       = "prose"
)

func (l *Language) HasColor() bool              { return l.Color != "" }
func (l *Language) HasGroup() bool              { return l.Group != "" }
func (l *Language) HasTMScope() bool            { return l.TMScope != "" }
func (l *Language) HasAceMode() bool            { return l.AceMode != "" }
func (l *Language) HasCodemirrorMode() bool     { return l.CodemirrorMode != "" }
func (l *Language) HasCodemirrorMimeType() bool { return l.CodemirrorMimeType != "" }

// HasAliases reports whether the source document carried an aliases key,
// even an empty one.
func (l *Language) HasAliases() bool      { return l.Aliases != nil }
func (l *Language) HasExtensions() bool   { return l.Extensions != nil }
func (l *Language) HasInterpreters() bool { return l.Interpreters != nil }

// NormalizedExtensions returns the extensions in lookup form: leading dot
// removed and lowercased. Returns nil when the record has no extensions key.
func (l *Language) NormalizedExtensions() []string {
	if l.Extensions == nil {
		return nil
	}
	out := make([]string, len(l.Extensions))
	for i, ext := range l.Extensions {
		out[i] = NormalizeExtension(ext)
	}
	return out
}

// Clone returns a deep copy. nil slices stay nil and empty slices stay empty.
func (l *Language) Clone() *Language {
	c := *l
	c.Aliases = slices.Clone(l.Aliases)
	c.Extensions = slices.Clone(l.Extensions)
	c.Interpreters = slices.Clone(l.Interpreters)
	return &c
}

// NormalizeExtension converts an extension to its index key: one leading
// dot is removed and the rest is lowercased. ".Py" and "py" both become "py".
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// isAliasMatch reports whether the lowercased name or one of the
// lowercased aliases equals key. key must already be lowercase; simple
// lowercasing is used rather than Unicode folding so the comparison agrees
// with how index keys are built.
func (l *Language) isAliasMatch(key string) bool {
	if strings.ToLower(l.Name) == key {
		return true
	}
	return slices.ContainsFunc(l.Aliases, func(a string) bool {
		return strings.ToLower(a) == key
	})
}
