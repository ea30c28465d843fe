package linguist

import _ "embed"

//go:embed languages.yml
var embedded []byte

// defaultIndex is built at package initialization. A malformed embedded
// document is a build defect, so it panics.
var defaultIndex = mustLoad(embedded)

func mustLoad(data []byte) *Index {
	idx, err := Load(data)
	if err != nil {
		panic("linguist: embedded languages.yml: " + err.Error())
	}
	return idx
}

// Default returns the index built from the embedded dataset.
func Default() *Index { return defaultIndex }

// Embedded returns a copy of the embedded languages.yml document.
func Embedded() []byte {
	out := make([]byte, len(embedded))
	copy(out, embedded)
	return out
}

// ByName looks up a language in the embedded dataset. See [Index.ByName].
func ByName(name string) (*Language, bool) { return defaultIndex.ByName(name) }

// ByExtension looks up a language in the embedded dataset. See [Index.ByExtension].
func ByExtension(ext string) (*Language, bool) { return defaultIndex.ByExtension(ext) }

// ByCodemirrorMode looks up a language in the embedded dataset. See [Index.ByCodemirrorMode].
func ByCodemirrorMode(mode string) (*Language, bool) { return defaultIndex.ByCodemirrorMode(mode) }
