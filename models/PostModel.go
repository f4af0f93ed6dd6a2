package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Author is a denormalized snapshot of the writing user's public profile,
// copied in at creation time and not kept in sync with later profile edits.
type Author struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Name     string             `json:"name" bson:"name"`
	Avatar   string             `json:"avatar" bson:"avatar"`
	Username string             `json:"username" bson:"username"`
	Bio      string             `json:"bio" bson:"bio"`
}

type Statistics struct {
	ViewCount    int64 `json:"viewCount" bson:"viewCount"`
	LikeCount    int64 `json:"likeCount" bson:"likeCount"`
	CommentCount int64 `json:"commentCount" bson:"commentCount"`
}

type Post struct {
	ID          primitive.ObjectID   `json:"_id" bson:"_id"`
	Slug        string               `json:"slug" bson:"slug" validate:"required"`
	Title       string               `json:"title" bson:"title" validate:"required"`
	Content     string               `json:"content" bson:"content" validate:"required"`
	Description string               `json:"description" bson:"description"`
	Thumbnail   string               `json:"thumbnail" bson:"thumbnail"`
	Hashtags    []string             `json:"hashtags" bson:"hashtags"`
	AuthorID    primitive.ObjectID   `json:"authorId" bson:"authorId"`
	Author      Author               `json:"author" bson:"author"`
	Likes       []primitive.ObjectID `json:"likes" bson:"likes"`
	Statistics  Statistics           `json:"statistics" bson:"statistics"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// LikedBy reports whether userID is in the post's like set.
func (p Post) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
