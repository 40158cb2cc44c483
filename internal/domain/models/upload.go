// internal/domain/models/upload.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Upload is a ledger row tying a user to a resource they submitted. Resources
// live in many collections; the ledger is how "My uploads" finds them.
type Upload struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID         string             `bson:"uid" json:"uid"`
	Collection  string             `bson:"collection" json:"collection"`
	ResourceID  string             `bson:"resource_id" json:"resource_id"`
	Title       string             `bson:"title" json:"title"`
	ContentType string             `bson:"content_type" json:"content_type"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
