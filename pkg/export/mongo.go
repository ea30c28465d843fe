package export

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/linguist/pkg/linguist"
)

// DefaultMongoCollection holds one document per language.
const DefaultMongoCollection = "languages"

// MongoSink upserts one document per language into a MongoDB collection.
type MongoSink struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// languageDoc is the stored document. _id is the Linguist language_id.
// Sequence fields are null when the source record had no such key.
type languageDoc struct {
	ID                 int      `bson:"_id"`
	Name               string   `bson:"name"`
	Type               string   `bson:"type"`
	Color              string   `bson:"color,omitempty"`
	Aliases            []string `bson:"aliases"`
	Extensions         []string `bson:"extensions"`
	Interpreters       []string `bson:"interpreters"`
	Group              string   `bson:"group,omitempty"`
	TMScope            string   `bson:"tm_scope,omitempty"`
	AceMode            string   `bson:"ace_mode,omitempty"`
	CodemirrorMode     string   `bson:"codemirror_mode,omitempty"`
	CodemirrorMimeType string   `bson:"codemirror_mime_type,omitempty"`
	Keys               docKeys  `bson:"keys"`
}

// docKeys are the lookup keys that resolve to this language.
type docKeys struct {
	Name      []string `bson:"name"`
	Extension []string `bson:"extension"`
	Mode      []string `bson:"mode"`
}

// NewMongo connects to uri and prepares the collection in database,
// creating a unique index on name.
func NewMongo(ctx context.Context, uri, database string) (*MongoSink, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	coll := client.Database(database).Collection(DefaultMongoCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create index: %w", err)
	}
	for _, field := range []string{"keys.extension", "keys.mode", "keys.name"} {
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}}); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("create index on %s: %w", field, err)
		}
	}
	return &MongoSink{client: client, coll: coll}, nil
}

// Write upserts every language and removes documents for languages no
// longer present.
func (s *MongoSink) Write(ctx context.Context, idx *linguist.Index) error {
	docs := documents(idx)
	if len(docs) == 0 {
		_, err := s.coll.DeleteMany(ctx, bson.D{})
		return err
	}

	models := make([]mongo.WriteModel, 0, len(docs))
	ids := make(bson.A, 0, len(docs))
	for _, d := range docs {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: "_id", Value: d.ID}}).
			SetReplacement(d).
			SetUpsert(true))
		ids = append(ids, d.ID)
	}

	// Drop stale documents first so a renamed language cannot trip the
	// unique name index.
	if _, err := s.coll.DeleteMany(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$nin", Value: ids}}}}); err != nil {
		return fmt.Errorf("remove stale languages: %w", err)
	}
	if _, err := s.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("upsert languages: %w", err)
	}
	return nil
}

// FindByKey returns the name of the language kind/key resolves to.
func (s *MongoSink) FindByKey(ctx context.Context, kind, key string) (string, bool, error) {
	var doc struct {
		Name string `bson:"name"`
	}
	err := s.coll.FindOne(ctx, bson.D{{Key: "keys." + kind, Value: key}}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Name, true, nil
}

func (s *MongoSink) Close() error {
	return s.client.Disconnect(context.Background())
}

// documents builds the stored form of idx in processing order.
func documents(idx *linguist.Index) []languageDoc {
	keys := make(map[int]*docKeys)
	for _, k := range LookupKeys(idx) {
		dk := keys[k.LanguageID]
		if dk == nil {
			dk = &docKeys{}
			keys[k.LanguageID] = dk
		}
		switch k.Kind {
		case KindName:
			dk.Name = append(dk.Name, k.Key)
		case KindExtension:
			dk.Extension = append(dk.Extension, k.Key)
		case KindMode:
			dk.Mode = append(dk.Mode, k.Key)
		}
	}

	all := idx.All()
	docs := make([]languageDoc, 0, len(all))
	for _, l := range all {
		d := languageDoc{
			ID:                 l.LanguageID,
			Name:               l.Name,
			Type:               l.Type,
			Color:              l.Color,
			Aliases:            l.Aliases,
			Extensions:         l.Extensions,
			Interpreters:       l.Interpreters,
			Group:              l.Group,
			TMScope:            l.TMScope,
			AceMode:            l.AceMode,
			CodemirrorMode:     l.CodemirrorMode,
			CodemirrorMimeType: l.CodemirrorMimeType,
		}
		if dk := keys[l.LanguageID]; dk != nil {
			d.Keys = *dk
		}
		docs = append(docs, d)
	}
	return docs
}

var _ Sink = (*MongoSink)(nil)
