package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spirit-symposium/event-registration/registration"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ registration.Repository = &DB{}

type registrationDoc struct {
	ID                primitive.ObjectID           `bson:"_id,omitempty"`
	RegistrationID    string                       `bson:"registrationId"`
	RegType           registration.RegType         `bson:"regType"`
	TeamName          string                       `bson:"teamName,omitempty"`
	TeamMembers       string                       `bson:"teamMembers,omitempty"`
	MemberNames       []string                     `bson:"memberNames,omitempty"`
	Name              string                       `bson:"name"`
	College           string                       `bson:"college"`
	Department        string                       `bson:"department"`
	Year              string                       `bson:"year"`
	Gender            registration.Gender          `bson:"gender"`
	Phone             string                       `bson:"phone"`
	Email             string                       `bson:"email"`
	Events            []string                     `bson:"events"`
	PaymentStatus     registration.PaymentStatus   `bson:"paymentStatus"`
	PaymentScreenshot string                       `bson:"paymentScreenshot,omitempty"`
	CreatedAt         time.Time                    `bson:"createdAt"`
}

func registrationToDoc(reg registration.Registration) (registrationDoc, error) {
	doc := registrationDoc{
		RegistrationID:    reg.RegistrationID,
		RegType:           reg.RegType,
		TeamName:          reg.TeamName,
		TeamMembers:       reg.TeamMembers,
		MemberNames:       reg.MemberNames,
		Name:              reg.Name,
		College:           reg.College,
		Department:        reg.Department,
		Year:              reg.Year,
		Gender:            reg.Gender,
		Phone:             reg.Phone,
		Email:             reg.Email,
		Events:            reg.Events,
		PaymentStatus:     reg.PaymentStatus,
		PaymentScreenshot: reg.PaymentScreenshot,
		CreatedAt:         reg.CreatedAt,
	}

	if reg.ID != "" {
		objectID, err := primitive.ObjectIDFromHex(reg.ID)
		if err != nil {
			return registrationDoc{}, err
		}
		doc.ID = objectID
	}

	return doc, nil
}

func docToRegistration(doc registrationDoc) registration.Registration {
	return registration.Registration{
		ID:                doc.ID.Hex(),
		RegistrationID:    doc.RegistrationID,
		RegType:           doc.RegType,
		TeamName:          doc.TeamName,
		TeamMembers:       doc.TeamMembers,
		MemberNames:       doc.MemberNames,
		Name:              doc.Name,
		College:           doc.College,
		Department:        doc.Department,
		Year:              doc.Year,
		Gender:            doc.Gender,
		Phone:             doc.Phone,
		Email:             doc.Email,
		Events:            doc.Events,
		PaymentStatus:     doc.PaymentStatus,
		PaymentScreenshot: doc.PaymentScreenshot,
		CreatedAt:         doc.CreatedAt,
	}
}

func (d *DB) CreateRegistration(ctx context.Context, reg *registration.Registration) error {
	doc, err := registrationToDoc(*reg)
	if err != nil {
		return registration.NewFailedToTranslateDocError("translating registration", err)
	}

	result, err := d.registrations().InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return registration.NewCodeAlreadyExistsError(reg.RegistrationID, err)
		}
		return registration.NewFailedToWriteError("inserting registration", err)
	}

	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		reg.ID = objectID.Hex()
	}

	return nil
}

func (d *DB) GetRegistrationsByEmail(ctx context.Context, email string) ([]registration.Registration, error) {
	cursor, err := d.registrations().Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, registration.NewFailedToFetchError("fetching registrations by email", err)
	}

	return decodeRegistrations(ctx, cursor)
}

func (d *DB) GetRegistrationByCode(ctx context.Context, code string) (registration.Registration, error) {
	var doc registrationDoc
	err := d.registrations().FindOne(ctx, bson.M{"registrationId": code}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return registration.Registration{}, registration.NewRegistrationNotFoundError(fmt.Sprintf("No registration with code %q", code))
		}
		return registration.Registration{}, registration.NewFailedToFetchError("fetching registration by code", err)
	}

	return docToRegistration(doc), nil
}

// ListRegistrations returns registrations newest first. A non-empty
// eventFilter restricts the result to registrations holding that event.
func (d *DB) ListRegistrations(ctx context.Context, eventFilter string) ([]registration.Registration, error) {
	filter := bson.M{}
	if eventFilter != "" {
		filter["events"] = eventFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := d.registrations().Find(ctx, filter, opts)
	if err != nil {
		return nil, registration.NewFailedToFetchError("listing registrations", err)
	}

	return decodeRegistrations(ctx, cursor)
}

// DeleteRegistration removes a registration. With a full-access filter the
// whole document goes. With an event filter only that event is pulled from
// the document, and the document goes once its last event is pulled.
func (d *DB) DeleteRegistration(ctx context.Context, id string, eventFilter string) (registration.DeleteOutcome, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, registration.NewInvalidRegistrationIDError(id, err)
	}

	if eventFilter == "" {
		_, err := d.registrations().DeleteOne(ctx, bson.M{"_id": objectID})
		if err != nil {
			return 0, registration.NewFailedToWriteError("deleting registration", err)
		}
		return registration.DELETED_DOCUMENT, nil
	}

	after := options.After
	var doc registrationDoc
	err = d.registrations().FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$pull": bson.M{"events": eventFilter}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// The document is already gone, deleting is idempotent.
			return registration.REMOVED_EVENT, nil
		}
		return 0, registration.NewFailedToWriteError("removing event from registration", err)
	}

	if len(doc.Events) == 0 {
		_, err := d.registrations().DeleteOne(ctx, bson.M{"_id": objectID})
		if err != nil {
			return 0, registration.NewFailedToWriteError("deleting emptied registration", err)
		}
		return registration.DELETED_DOCUMENT, nil
	}

	return registration.REMOVED_EVENT, nil
}

func decodeRegistrations(ctx context.Context, cursor *mongo.Cursor) ([]registration.Registration, error) {
	defer cursor.Close(ctx)

	regs := []registration.Registration{}
	for cursor.Next(ctx) {
		var doc registrationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, registration.NewFailedToTranslateDocError("decoding registration", err)
		}
		regs = append(regs, docToRegistration(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, registration.NewFailedToFetchError("iterating registration cursor", err)
	}

	return regs, nil
}
