// Package export writes a built index to external stores.
//
// A [Sink] receives the whole index at once and replaces whatever it held
// before, so repeated exports converge on the same contents. Besides the
// language records, sinks store the resolved lookup keys: for every name,
// alias, extension and editor mode, the one language the index returns.
// Consumers can then answer lookups with a single equality query and get
// the same disambiguation as [linguist.Index].
//
// Backends:
//
//   - [SQLiteSink]: a single-file database (github.com/mattn/go-sqlite3)
//   - [MongoSink]: a MongoDB collection (go.mongodb.org/mongo-driver)
//
// [linguist.Index]: github.com/matzehuels/linguist/pkg/linguist.Index
package export

import (
	"context"

	"github.com/matzehuels/linguist/pkg/linguist"
)

// Sink stores an index.
type Sink interface {
	Write(ctx context.Context, idx *linguist.Index) error
	Close() error
}

// Lookup key kinds.
const (
	KindName      = "name"
	KindExtension = "extension"
	KindMode      = "mode"
)

// LookupKey is one resolved index entry.
type LookupKey struct {
	Kind       string
	Key        string
	LanguageID int
}

// LookupKeys lists every key of the three indices with the language it
// resolves to, ordered by kind then key.
func LookupKeys(idx *linguist.Index) []LookupKey {
	var out []LookupKey
	add := func(kind string, keys []string, find func(string) (*linguist.Language, bool)) {
		for _, k := range keys {
			if lang, ok := find(k); ok {
				out = append(out, LookupKey{Kind: kind, Key: k, LanguageID: lang.LanguageID})
			}
		}
	}
	add(KindExtension, idx.Extensions(), idx.ByExtension)
	add(KindMode, idx.Modes(), idx.ByCodemirrorMode)
	add(KindName, idx.Names(), idx.ByName)
	return out
}
