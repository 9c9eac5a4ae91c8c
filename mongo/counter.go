package mongo

import (
	"context"

	"github.com/spirit-symposium/event-registration/registration"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ registration.SequenceAllocator = &DB{}

const registrationCounterID = "registrationId"

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// NextSequence atomically increments the registration counter and returns
// the new value. The upsert creates the counter at 1 on first use. Two
// concurrent calls can never observe the same value.
func (d *DB) NextSequence(ctx context.Context) (int64, error) {
	after := options.After
	var doc counterDoc
	err := d.counters().FindOneAndUpdate(ctx,
		bson.M{"_id": registrationCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after),
	).Decode(&doc)
	if err != nil {
		return 0, registration.NewFailedToAllocateSequenceError(err)
	}

	return doc.Seq, nil
}
