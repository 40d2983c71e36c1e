package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findOne decodifica el primer documento o devuelve (nil, nil) si no hay.
func findOne[D any](ctx context.Context, coll *mongo.Collection, filter any) (*D, error) {
	var doc D
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// findMany decodifica todos los documentos del cursor y los convierte con conv.
func findMany[D any, E any](ctx context.Context, coll *mongo.Collection, filter any, conv func(*D) *E, opts ...*options.FindOptions) ([]*E, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*E
	for cur.Next(ctx) {
		var doc D
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, conv(&doc))
	}
	return out, cur.Err()
}

// pageOptions paginación por skip/limit en orden de inserción.
func pageOptions(page, pageSize int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page) * int64(pageSize)).
		SetLimit(int64(pageSize))
}
