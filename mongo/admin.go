package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/spirit-symposium/event-registration/admin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ admin.Repository = &DB{}

type adminDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *DB) CreateAdmin(ctx context.Context, a *admin.Admin) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	doc := adminDoc{
		Username:  a.Username,
		Email:     a.Email,
		Password:  a.Password,
		CreatedAt: a.CreatedAt,
	}

	result, err := d.admins().InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return admin.NewUsernameAlreadyExistsError(a.Username, err)
		}
		return admin.NewFailedToWriteError("inserting admin", err)
	}

	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		a.ID = objectID.Hex()
	}

	return nil
}

func (d *DB) GetAdminByCredentials(ctx context.Context, username, password string) (admin.Admin, error) {
	var doc adminDoc
	err := d.admins().FindOne(ctx, bson.M{"username": username, "password": password}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return admin.Admin{}, admin.NewAdminNotFoundError(username)
		}
		return admin.Admin{}, admin.NewFailedToFetchError("fetching admin", err)
	}

	return admin.Admin{
		ID:        doc.ID.Hex(),
		Username:  doc.Username,
		Email:     doc.Email,
		Password:  doc.Password,
		CreatedAt: doc.CreatedAt,
	}, nil
}
