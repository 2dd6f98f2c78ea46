package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection wraps a mongo collection whose documents decode into D.
type collection[D any] struct {
	coll     *mongo.Collection
	notFound error
}

// parseID converts a hex id; ids that are not ObjectIDs cannot exist.
func (c collection[D]) parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q is not a valid id", c.notFound, id)
	}
	return oid, nil
}

func (c collection[D]) findAll(ctx context.Context) ([]D, error) {
	cursor, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, MapError(err, c.notFound)
	}
	defer cursor.Close(ctx)

	docs := make([]D, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, MapError(err, c.notFound)
	}
	return docs, nil
}

func (c collection[D]) insert(ctx context.Context, doc D) (string, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", MapError(err, c.notFound)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// update applies $set and returns the document after the update. An empty
// set is a plain lookup, since $set with no fields is rejected by the server.
func (c collection[D]) update(ctx context.Context, id string, set bson.M) (D, error) {
	var doc D

	oid, err := c.parseID(id)
	if err != nil {
		return doc, err
	}

	filter := bson.M{"_id": oid}
	var res *mongo.SingleResult
	if len(set) == 0 {
		res = c.coll.FindOne(ctx, filter)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		res = c.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts)
	}

	if err := res.Decode(&doc); err != nil {
		return doc, MapError(err, c.notFound)
	}
	return doc, nil
}

func (c collection[D]) delete(ctx context.Context, id string) error {
	oid, err := c.parseID(id)
	if err != nil {
		return err
	}

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return MapError(err, c.notFound)
	}
	if res.DeletedCount == 0 {
		return c.notFound
	}
	return nil
}
