package mongodb

import (
	"context"
	"errors"

	"github.com/niksmo/emporium/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	byInsertion   = bson.D{{Key: "_id", Value: 1}}
	returnUpdated = options.FindOneAndUpdate().SetReturnDocument(options.After)
)

func findAll[D any](
	ctx context.Context, coll *mongo.Collection, filter any,
	opts ...*options.FindOptions,
) ([]D, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	docs := []D{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// findByIDs loads the documents whose _id is among ids. Malformed ids
// match nothing.
func findByIDs[D any](
	ctx context.Context, coll *mongo.Collection, ids []string,
	p domain.Projection,
) ([]D, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return []D{}, nil
	}
	opts := options.Find()
	if fields := projection(p); fields != nil {
		opts.SetProjection(fields)
	}
	return findAll[D](ctx, coll, bson.M{"_id": bson.M{"$in": oids}}, opts)
}

// findOne maps a miss and a malformed id to [domain.NotFoundError].
func findOne[D any](
	ctx context.Context, coll *mongo.Collection, entity domain.Entity, id string,
) (D, error) {
	var doc D
	oid, ok := parseID(id)
	if !ok {
		return doc, domain.NotFoundError{Entity: entity, ID: id}
	}
	err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	return doc, notFound(err, entity, id)
}

func updateOne[D any](
	ctx context.Context, coll *mongo.Collection, entity domain.Entity,
	id string, set bson.D,
) (D, error) {
	return updateOneWhere[D](ctx, coll, entity, id, nil, set)
}

// updateOneWhere updates the document only while it also matches cond.
// A document that exists but fails cond is reported as not found.
func updateOneWhere[D any](
	ctx context.Context, coll *mongo.Collection, entity domain.Entity,
	id string, cond bson.D, set bson.D,
) (D, error) {
	var doc D
	oid, ok := parseID(id)
	if !ok {
		return doc, domain.NotFoundError{Entity: entity, ID: id}
	}
	filter := append(bson.D{{Key: "_id", Value: oid}}, cond...)
	set = append(set, bson.E{Key: "updatedAt", Value: now()})
	err := coll.FindOneAndUpdate(
		ctx, filter, bson.D{{Key: "$set", Value: set}}, returnUpdated,
	).Decode(&doc)
	return doc, notFound(err, entity, id)
}

// deleteOne returns the removed document.
func deleteOne[D any](
	ctx context.Context, coll *mongo.Collection, entity domain.Entity, id string,
) (D, error) {
	var doc D
	oid, ok := parseID(id)
	if !ok {
		return doc, domain.NotFoundError{Entity: entity, ID: id}
	}
	err := coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	return doc, notFound(err, entity, id)
}

func insertOne(
	ctx context.Context, coll *mongo.Collection, doc any,
) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func notFound(err error, entity domain.Entity, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.NotFoundError{Entity: entity, ID: id}
	}
	return err
}

// duplicate maps a unique index violation to a validation error on field.
func duplicate(err error, field string) error {
	if mongo.IsDuplicateKeyError(err) {
		return domain.ValidationError{Field: field, Reason: "already exists"}
	}
	return err
}
