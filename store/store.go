package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoRecord is returned by FindBy when nothing matches the filter.
var ErrNoRecord = errors.New("record not found")

// Records is the equality-keyed record store behind every resource: one
// collection of flat documents queried and mutated by single-field equality.
// UpdateFirst and DeleteFirst touch at most one document; when duplicate
// keys exist, the first match in store order wins.
type Records interface {
	All(ctx context.Context) ([]bson.M, error)
	Insert(ctx context.Context, doc interface{}) (interface{}, error)
	FindBy(ctx context.Context, field string, value interface{}, out interface{}) error
	CountBy(ctx context.Context, field string, value interface{}) (int64, error)
	UpdateFirst(ctx context.Context, field string, value interface{}, fields bson.M) (int64, error)
	DeleteFirst(ctx context.Context, field string, value interface{}) (int64, error)
	EnsureUniqueIndex(ctx context.Context, field string) error
}

// MongoRecords backs Records with one MongoDB collection.
type MongoRecords struct {
	coll *mongo.Collection
}

func NewMongoRecords(coll *mongo.Collection) *MongoRecords {
	return &MongoRecords{coll: coll}
}

func (m *MongoRecords) All(ctx context.Context) ([]bson.M, error) {
	cursor, err := m.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *MongoRecords) Insert(ctx context.Context, doc interface{}) (interface{}, error) {
	res, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (m *MongoRecords) FindBy(ctx context.Context, field string, value interface{}, out interface{}) error {
	err := m.coll.FindOne(ctx, bson.M{field: value}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoRecord
	}
	return err
}

func (m *MongoRecords) CountBy(ctx context.Context, field string, value interface{}) (int64, error) {
	return m.coll.CountDocuments(ctx, bson.M{field: value})
}

func (m *MongoRecords) UpdateFirst(ctx context.Context, field string, value interface{}, fields bson.M) (int64, error) {
	res, err := m.coll.UpdateOne(ctx, bson.M{field: value}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *MongoRecords) DeleteFirst(ctx context.Context, field string, value interface{}) (int64, error) {
	res, err := m.coll.DeleteOne(ctx, bson.M{field: value})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *MongoRecords) EnsureUniqueIndex(ctx context.Context, field string) error {
	_, err := m.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
