package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

const (
	RoleNormal = "normal"
	RoleAdmin  = "admin"
)

type User struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id"`
	Name      string               `json:"name" bson:"name" validate:"required"`
	Email     string               `json:"email" bson:"email" validate:"required,email"`
	Username  string               `json:"username" bson:"username" validate:"required"`
	Password  string               `json:"-" bson:"password" validate:"required,min=6"`
	Avatar    string               `json:"avatar" bson:"avatar"`
	Bio       string               `json:"bio" bson:"bio"`
	Role      string               `json:"role" bson:"role"`
	Saved     []primitive.ObjectID `json:"saved" bson:"saved"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}

// IsAdmin reports whether the user can act on content they do not own.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasSaved reports whether postID is already in the user's saved list.
func (u User) HasSaved(postID primitive.ObjectID) bool {
	for _, id := range u.Saved {
		if id == postID {
			return true
		}
	}
	return false
}
