package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID marks an external identifier that is not a well-formed
// ObjectID hex string. Lookup call sites treat it the same as "not found"
// rather than surfacing it to clients.
var ErrInvalidID = errors.New("store: invalid identifier")

// EncodeID converts a native ObjectID into its external string form.
func EncodeID(id primitive.ObjectID) string {
	return id.Hex()
}

// DecodeID converts an external identifier back into a native ObjectID.
func DecodeID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
