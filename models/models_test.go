package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPostLikedBy(t *testing.T) {
	liker := primitive.NewObjectID()
	other := primitive.NewObjectID()

	post := Post{Likes: []primitive.ObjectID{liker}}
	if !post.LikedBy(liker) {
		t.Fatalf("expected liker to be in the like set")
	}
	if post.LikedBy(other) {
		t.Fatalf("did not expect other to be in the like set")
	}
	if (Post{}).LikedBy(liker) {
		t.Fatalf("empty like set should contain nobody")
	}
}

func TestUserHasSaved(t *testing.T) {
	postID := primitive.NewObjectID()

	user := User{Saved: []primitive.ObjectID{postID}}
	if !user.HasSaved(postID) {
		t.Fatalf("expected post to be in saved list")
	}
	if user.HasSaved(primitive.NewObjectID()) {
		t.Fatalf("did not expect unknown post in saved list")
	}
}

func TestUserIsAdmin(t *testing.T) {
	if (User{Role: RoleNormal}).IsAdmin() {
		t.Fatalf("normal user is not an admin")
	}
	if !(User{Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("admin user should be an admin")
	}
}
