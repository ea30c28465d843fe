package linguist

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/linguist/pkg/errors"
)

// Dataset maps canonical language names to their records, as found in
// languages.yml. Map keys make names unique by construction.
type Dataset map[string]*Language

// rawLanguage mirrors a languages.yml record. Required scalars are pointers
// so a missing key can be told apart from a zero value.
type rawLanguage struct {
	Type               *string  `yaml:"type"`
	Color              string   `yaml:"color"`
	Aliases            []string `yaml:"aliases"`
	Extensions         []string `yaml:"extensions"`
	Interpreters       []string `yaml:"interpreters"`
	Group              string   `yaml:"group"`
	TMScope            string   `yaml:"tm_scope"`
	AceMode            string   `yaml:"ace_mode"`
	CodemirrorMode     string   `yaml:"codemirror_mode"`
	CodemirrorMimeType string   `yaml:"codemirror_mime_type"`
	LanguageID         *int     `yaml:"language_id"`
}

// Parse decodes a document in the Linguist languages.yml format.
// Unknown keys are ignored. A record without a type or language_id, an
// empty type, a duplicate name or a document that is not a mapping of
// mappings yields an INVALID_DATASET error.
func Parse(data []byte) (Dataset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidDataset, "empty document")
	}

	var raw map[string]*rawLanguage
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidDataset, err, "decode languages")
	}
	if raw == nil {
		return nil, errs.New(errs.ErrCodeInvalidDataset, "document is not a mapping")
	}

	ds := make(Dataset, len(raw))
	for name, r := range raw {
		if r == nil {
			return nil, errs.New(errs.ErrCodeInvalidDataset, "language %q: empty record", name)
		}
		if r.Type == nil {
			return nil, errs.New(errs.ErrCodeInvalidDataset, "language %q: missing type", name)
		}
		if *r.Type == "" {
			return nil, errs.New(errs.ErrCodeInvalidDataset, "language %q: empty type", name)
		}
		if r.LanguageID == nil {
			return nil, errs.New(errs.ErrCodeInvalidDataset, "language %q: missing language_id", name)
		}
		ds[name] = &Language{
			Name:               name,
			Type:               *r.Type,
			Color:              r.Color,
			Aliases:            r.Aliases,
			Extensions:         r.Extensions,
			Interpreters:       r.Interpreters,
			Group:              r.Group,
			TMScope:            r.TMScope,
			AceMode:            r.AceMode,
			CodemirrorMode:     r.CodemirrorMode,
			CodemirrorMimeType: r.CodemirrorMimeType,
			LanguageID:         *r.LanguageID,
		}
	}
	return ds, nil
}

// Load parses data and builds an index from it.
func Load(data []byte) (*Index, error) {
	ds, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(ds)
}

// LoadFile reads and loads a languages.yml file from disk.
func LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "dataset %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "read dataset %s", path)
	}
	return Load(data)
}
