package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultCollectionName = "preset"

type presetDoc struct {
	Name string `bson:"_id"`
	Data string `bson:"data"`
}

type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		coll: db.Collection(defaultCollectionName),
	}
}

func (m *Mongo) Lookup(ctx context.Context, name string) (string, error) {
	if m == nil || m.coll == nil {
		return "", ErrUnavailable.WithData("reason", "mongodb preset collection is nil")
	}
	var doc presetDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err == nil {
		return doc.Data, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", notFound(name)
	}
	return "", ErrUnavailable.WithData("preset", name).WithCause(err)
}

func (m *Mongo) Names(ctx context.Context) ([]string, error) {
	if m == nil || m.coll == nil {
		return nil, ErrUnavailable.WithData("reason", "mongodb preset collection is nil")
	}
	cur, err := m.coll.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 1}).SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, ErrUnavailable.WithCause(err)
	}
	var docs []presetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, ErrUnavailable.WithCause(err)
	}
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Name)
	}
	return out, nil
}
