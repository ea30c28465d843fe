package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/linguist/pkg/linguist"
)

func TestLookupKeys(t *testing.T) {
	idx := linguist.Default()
	keys := LookupKeys(idx)
	assert.Len(t, keys, len(idx.Names())+len(idx.Extensions())+len(idx.Modes()))

	find := func(kind, key string) (int, bool) {
		for _, k := range keys {
			if k.Kind == kind && k.Key == key {
				return k.LanguageID, true
			}
		}
		return 0, false
	}

	id, ok := find(KindExtension, "md")
	require.True(t, ok)
	assert.Equal(t, 222, id)

	id, ok = find(KindMode, "javascript")
	require.True(t, ok)
	assert.Equal(t, 183, id)

	id, ok = find(KindName, "cpp")
	require.True(t, ok)
	assert.Equal(t, 43, id)
}

func openSQLite(t *testing.T) *SQLiteSink {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "languages.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func count(t *testing.T, s *SQLiteSink, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, s.DB().QueryRow(query, args...).Scan(&n))
	return n
}

func TestSQLiteWrite(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)
	idx := linguist.Default()

	require.NoError(t, s.Write(ctx, idx))
	assert.Equal(t, idx.Len(), count(t, s, "SELECT COUNT(*) FROM languages"))
	assert.Equal(t, len(LookupKeys(idx)), count(t, s, "SELECT COUNT(*) FROM lookup_keys"))

	tests := []struct {
		kind, key, want string
	}{
		{KindExtension, "md", "Markdown"},
		{KindExtension, "inc", "PHP"},
		{KindExtension, "h", "C"},
		{KindMode, "ruby", "Ruby"},
		{KindName, "golang", "Go"},
	}
	for _, tt := range tests {
		name, ok, err := s.Lookup(ctx, tt.kind, tt.key)
		require.NoError(t, err)
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, name, tt.key)
	}

	_, ok, err := s.Lookup(ctx, KindExtension, "notanext")
	require.NoError(t, err)
	assert.False(t, ok)

	var exts []string
	rows, err := s.DB().Query("SELECT extension FROM extensions WHERE language_id = 327 ORDER BY position")
	require.NoError(t, err)
	for rows.Next() {
		var e string
		require.NoError(t, rows.Scan(&e))
		exts = append(exts, e)
	}
	require.NoError(t, rows.Err())
	rows.Close()
	assert.Equal(t, []string{".rs", ".rs.in"}, exts)
}

func TestSQLiteWriteIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)
	idx := linguist.Default()

	require.NoError(t, s.Write(ctx, idx))
	require.NoError(t, s.Write(ctx, idx))
	assert.Equal(t, idx.Len(), count(t, s, "SELECT COUNT(*) FROM languages"))

	small, err := linguist.Load([]byte("Only:\n  type: data\n  language_id: 1\n"))
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, small))
	assert.Equal(t, 1, count(t, s, "SELECT COUNT(*) FROM languages"))
	assert.Zero(t, count(t, s, "SELECT COUNT(*) FROM extensions"))
}

func TestSQLitePresenceFlags(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)
	idx, err := linguist.Load([]byte(`
Empty:
  type: data
  aliases: []
  language_id: 1
Absent:
  type: data
  language_id: 2
`))
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, idx))

	assert.Equal(t, 1, count(t, s, "SELECT has_aliases FROM languages WHERE name = ?", "Empty"))
	assert.Equal(t, 0, count(t, s, "SELECT has_aliases FROM languages WHERE name = ?", "Absent"))
	assert.Equal(t, 1, count(t, s, "SELECT COUNT(*) FROM languages WHERE color IS NULL AND name = ?", "Absent"))
}

func TestNewSQLiteBadPath(t *testing.T) {
	_, err := NewSQLite(filepath.Join(t.TempDir(), "missing", "dir", "x.db"))
	assert.Error(t, err)
}

func TestMongoDocuments(t *testing.T) {
	docs := documents(linguist.Default())
	require.Len(t, docs, linguist.Default().Len())

	var markdown, gcc *languageDoc
	for i := range docs {
		switch docs[i].Name {
		case "Markdown":
			markdown = &docs[i]
		case "GCC Machine Description":
			gcc = &docs[i]
		}
	}
	require.NotNil(t, markdown)
	require.NotNil(t, gcc)

	assert.Equal(t, 222, markdown.ID)
	assert.Contains(t, markdown.Keys.Extension, "md")
	assert.Contains(t, markdown.Keys.Name, "pandoc")
	assert.Equal(t, []string{"gfm"}, markdown.Keys.Mode)
	assert.NotContains(t, gcc.Keys.Extension, "md")

	raw, err := bson.Marshal(gcc)
	require.NoError(t, err)
	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, int32(125), m["_id"])
	assert.Nil(t, m["aliases"], "absent aliases stored as null")
	assert.NotContains(t, m, "group")
}

// TestMongoRoundTrip runs against a live server when
// LINGUIST_TEST_MONGO_URI is set.
func TestMongoRoundTrip(t *testing.T) {
	uri := os.Getenv("LINGUIST_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("LINGUIST_TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	s, err := NewMongo(ctx, uri, "linguist_test")
	require.NoError(t, err)
	defer s.Close()
	defer s.coll.Drop(ctx)

	require.NoError(t, s.Write(ctx, linguist.Default()))
	require.NoError(t, s.Write(ctx, linguist.Default()))

	name, ok, err := s.FindByKey(ctx, KindExtension, "inc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PHP", name)

	n, err := s.coll.CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	assert.Equal(t, int64(linguist.Default().Len()), n)
}
