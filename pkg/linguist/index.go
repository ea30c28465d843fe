package linguist

import (
	"maps"
	"slices"
	"sort"
	"strings"

	errs "github.com/matzehuels/linguist/pkg/errors"
)

// Index holds the three lookup tables built from a [Dataset]. It has no
// mutable state once [Build] returns.
type Index struct {
	languages []*Language
	byName    map[string]*Language
	byExt     map[string]*Language
	byMode    map[string]*Language
}

// candidate is a stored index entry together with whether it won its key
// on a name match.
type candidate struct {
	lang      *Language
	preferred bool
}

// Build validates ds and constructs an index over a deep copy of its
// records. Later changes to ds do not affect the index.
func Build(ds Dataset) (*Index, error) {
	if err := validate(ds); err != nil {
		return nil, err
	}

	names := sortedNames(ds)
	idx := &Index{
		languages: make([]*Language, 0, len(names)),
		byName:    make(map[string]*Language),
	}

	exts := make(map[string]candidate)
	modes := make(map[string]candidate)

	for _, name := range names {
		lang := ds[name].Clone()
		idx.languages = append(idx.languages, lang)

		idx.insertName(lang.Name, lang)
		for _, alias := range lang.Aliases {
			idx.insertName(alias, lang)
		}

		for _, ext := range lang.Extensions {
			key := NormalizeExtension(ext)
			insertPreferred(exts, key, candidate{lang: lang, preferred: lang.isAliasMatch(key)})
		}

		if lang.CodemirrorMode != "" {
			key := strings.ToLower(lang.CodemirrorMode)
			insertPreferred(modes, key, candidate{lang: lang, preferred: strings.ToLower(lang.Name) == key})
		}
	}

	idx.byExt = flatten(exts)
	idx.byMode = flatten(modes)
	return idx, nil
}

// MustBuild is like [Build] but panics on error.
func MustBuild(ds Dataset) *Index {
	idx, err := Build(ds)
	if err != nil {
		panic(err)
	}
	return idx
}

func (idx *Index) insertName(key string, lang *Language) {
	key = strings.ToLower(key)
	if _, ok := idx.byName[key]; !ok {
		idx.byName[key] = lang
	}
}

// insertPreferred stores c under key unless an entry exists. An existing
// entry is replaced only when c is preferred and the stored one is not.
func insertPreferred(m map[string]candidate, key string, c candidate) {
	cur, ok := m[key]
	if !ok || (c.preferred && !cur.preferred) {
		m[key] = c
	}
}

func flatten(m map[string]candidate) map[string]*Language {
	out := make(map[string]*Language, len(m))
	for k, c := range m {
		out[k] = c.lang
	}
	return out
}

func validate(ds Dataset) error {
	ids := make(map[int]string, len(ds))
	for _, name := range sortedNames(ds) {
		lang := ds[name]
		switch {
		case lang == nil:
			return errs.New(errs.ErrCodeInvalidDataset, "language %q: nil record", name)
		case lang.Name != name:
			return errs.New(errs.ErrCodeInvalidDataset, "language %q: record is named %q", name, lang.Name)
		case lang.Type == "":
			return errs.New(errs.ErrCodeInvalidDataset, "language %q: missing type", name)
		}
		if other, dup := ids[lang.LanguageID]; dup {
			return errs.New(errs.ErrCodeInvalidDataset,
				"language_id %d shared by %q and %q", lang.LanguageID, other, name)
		}
		ids[lang.LanguageID] = name
	}
	return nil
}

func sortedNames(ds Dataset) []string {
	names := make([]string, 0, len(ds))
	for name := range ds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// Lookups
// =============================================================================

// ByName finds a language by canonical name or alias, ignoring case.
// Surrounding whitespace is not trimmed.
func (idx *Index) ByName(name string) (*Language, bool) {
	lang, ok := idx.byName[strings.ToLower(name)]
	return lang, ok
}

// ByExtension finds a language by bare file extension, ignoring case.
// The input must not carry a leading dot: "rs" matches Rust, ".rs" does not.
func (idx *Index) ByExtension(ext string) (*Language, bool) {
	lang, ok := idx.byExt[strings.ToLower(ext)]
	return lang, ok
}

// ByCodemirrorMode finds a language by CodeMirror mode, ignoring case.
func (idx *Index) ByCodemirrorMode(mode string) (*Language, bool) {
	lang, ok := idx.byMode[strings.ToLower(mode)]
	return lang, ok
}

// =============================================================================
// Enumeration
// =============================================================================

// All returns every language in processing order. The slice is a copy; the
// records are shared and must not be modified.
func (idx *Index) All() []*Language {
	return slices.Clone(idx.languages)
}

// Len returns the number of languages in the index.
func (idx *Index) Len() int {
	return len(idx.languages)
}

// Names returns the sorted keys of the name index (names and aliases,
// lowercased).
func (idx *Index) Names() []string { return slices.Sorted(maps.Keys(idx.byName)) }

// Extensions returns the sorted keys of the extension index.
func (idx *Index) Extensions() []string { return slices.Sorted(maps.Keys(idx.byExt)) }

// Modes returns the sorted keys of the editor-mode index.
func (idx *Index) Modes() []string { return slices.Sorted(maps.Keys(idx.byMode)) }

// Types returns the distinct categories present, sorted.
func (idx *Index) Types() []string {
	seen := make(map[string]struct{})
	for _, lang := range idx.languages {
		seen[lang.Type] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// ByType returns the languages of the given category in processing order.
// Matching is case-insensitive.
func (idx *Index) ByType(category string) []*Language {
	var out []*Language
	for _, lang := range idx.languages {
		if strings.EqualFold(lang.Type, category) {
			out = append(out, lang)
		}
	}
	return out
}
