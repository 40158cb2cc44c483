// internal/domain/models/profile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the site-side record for a Firebase-authenticated user.
//
// Identity (password, email verification, sign-in providers) lives in
// Firebase Auth; UID is the Firebase user id and is unique.
type Profile struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID           string             `bson:"uid" json:"uid"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	EmailVerified bool               `bson:"email_verified" json:"email_verified"`
	DisplayName   string             `bson:"display_name" json:"display_name"`
	DisplayNameCI string             `bson:"display_name_ci" json:"display_name_ci"` // lowercase, diacritics-stripped
	PhotoURL      string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	City          string             `bson:"city,omitempty" json:"city,omitempty"`
	Institution   string             `bson:"institution,omitempty" json:"institution,omitempty"`
	Bio           string             `bson:"bio,omitempty" json:"bio,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
