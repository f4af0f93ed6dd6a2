package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Comment struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id"`
	PostID    primitive.ObjectID   `json:"postId" bson:"postId"`
	UserID    primitive.ObjectID   `json:"userId" bson:"userId"`
	User      Author               `json:"user" bson:"user"`
	Content   string               `json:"content" bson:"content" validate:"required"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}

// LikedBy reports whether userID is in the comment's like set.
func (c Comment) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
