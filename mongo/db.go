// Package mongo implements the storage interfaces on a MongoDB database.
package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	registrationsCollection = "registrations"
	adminsCollection        = "admins"
	countersCollection      = "counters"
)

type DB struct {
	database *mongo.Database
}

func NewDB(database *mongo.Database) *DB {
	return &DB{
		database: database,
	}
}

func (d *DB) registrations() *mongo.Collection {
	return d.database.Collection(registrationsCollection)
}

func (d *DB) admins() *mongo.Collection {
	return d.database.Collection(adminsCollection)
}

func (d *DB) counters() *mongo.Collection {
	return d.database.Collection(countersCollection)
}

// EnsureIndexes creates the indexes the queries rely on. Safe to call on
// every startup, index creation is idempotent.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.registrations().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "registrationId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = d.admins().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (d *DB) Ping(ctx context.Context) error {
	return d.database.Client().Ping(ctx, readpref.Primary())
}
