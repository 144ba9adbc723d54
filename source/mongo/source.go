package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection is the subset of mongo.Collection the translation source needs.
// Declared as an interface so tests can substitute a fake without a live
// server.
type Collection interface {
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
}

// translationDoc is the shape of one document in the translations collection.
type translationDoc struct {
	Language string `bson:"language"`
	Key      string `bson:"key"`
	Message  string `bson:"message"`
}

// Source loads the translation catalog from a MongoDB collection. Each
// document carries one message:
//
//	{ "language": "en", "key": "hello", "message": "Hello" }
type Source struct {
	coll Collection
}

// NewSource creates a translation source reading from the given collection.
// Returns nil if coll is nil.
func NewSource(coll Collection) *Source {
	if coll == nil {
		return nil
	}
	return &Source{coll: coll}
}

// Load reads every document in the collection and assembles the catalog.
// Documents without a language are skipped. It is called once at translator
// construction; the catalog does not refresh afterwards.
func (s *Source) Load(ctx context.Context) (map[string]map[string]string, error) {
	sort := options.Find().SetSort(bson.D{{Key: "language", Value: 1}, {Key: "key", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.D{}, sort)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTranslations, err)
	}
	defer cursor.Close(ctx)

	translations := make(map[string]map[string]string)
	for cursor.Next(ctx) {
		var doc translationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Join(ErrFailedToLoadTranslations, err)
		}

		if doc.Language == "" {
			continue
		}
		if translations[doc.Language] == nil {
			translations[doc.Language] = make(map[string]string)
		}
		translations[doc.Language][doc.Key] = doc.Message
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Join(ErrFailedToLoadTranslations, err)
	}

	return translations, nil
}
