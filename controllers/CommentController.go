package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ngocsang1201/blog-server/helper"
	"github.com/ngocsang1201/blog-server/metrics"
	"github.com/ngocsang1201/blog-server/models"
	"github.com/ngocsang1201/blog-server/realtime"
)

// GetCommentsByPostID lists a post's comments newest first.
func GetCommentsByPostID(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Query("postId"))
	if err != nil {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := commentCollection().Find(ctx, bson.M{"postId": postID}, findOptions)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	c.JSON(http.StatusOK, comments)
}

type commentForm struct {
	PostID  string `json:"postId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreateComment stores a comment carrying a snapshot of the caller's profile,
// resyncs the parent post's comment counter from a live count and notifies
// the post's subscribers.
func CreateComment(c *gin.Context) {
	var form commentForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postID, err := primitive.ObjectIDFromHex(form.PostID)
	if err != nil {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}
	user := helper.CurrentUser(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := postCollection().CountDocuments(ctx, bson.M{"_id": postID})
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	if count == 0 {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}

	comment := models.Comment{
		ID:     primitive.NewObjectID(),
		PostID: postID,
		UserID: user.ID,
		User: models.Author{
			ID:       user.ID,
			Name:     user.Name,
			Avatar:   user.Avatar,
			Username: user.Username,
			Bio:      user.Bio,
		},
		Content:   form.Content,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now(),
	}

	if _, err := commentCollection().InsertOne(ctx, comment); err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	if err := resyncCommentCount(ctx, postID); err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	metrics.IncCommentEvent("create")

	realtime.DefaultHub.Broadcast(postID.Hex(), realtime.EventCreateComment,
		gin.H{"comment": comment})

	c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment, owner or admin only, resyncs the parent
// post's comment counter and notifies the post's subscribers.
func DeleteComment(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("commentId"))
	if err != nil {
		helper.RespondError(c, http.StatusNotFound, "commentNotFound")
		return
	}
	user := helper.CurrentUser(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var comment models.Comment
	err = commentCollection().FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment)
	if err == mongo.ErrNoDocuments {
		helper.RespondError(c, http.StatusNotFound, "commentNotFound")
		return
	}
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	if !helper.CanModify(user, comment.UserID) {
		helper.RespondError(c, http.StatusForbidden, "notAllowedDeleteComment")
		return
	}

	if _, err := commentCollection().DeleteOne(ctx, bson.M{"_id": commentID}); err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	if err := resyncCommentCount(ctx, comment.PostID); err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	metrics.IncCommentEvent("remove")

	realtime.DefaultHub.Broadcast(comment.PostID.Hex(), realtime.EventRemoveComment,
		gin.H{"id": comment.ID})

	c.Status(http.StatusOK)
}

// LikeComment toggles the caller's membership in the comment's like set and
// returns the updated comment.
func LikeComment(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("commentId"))
	if err != nil {
		helper.RespondError(c, http.StatusNotFound, "commentNotFound")
		return
	}
	user := helper.CurrentUser(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var comment models.Comment
	err = commentCollection().FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment)
	if err == mongo.ErrNoDocuments {
		helper.RespondError(c, http.StatusNotFound, "commentNotFound")
		return
	}
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	var update bson.M
	if comment.LikedBy(user.ID) {
		update = bson.M{"$pull": bson.M{"likes": user.ID}}
	} else {
		update = bson.M{"$addToSet": bson.M{"likes": user.ID}}
	}

	after := options.After
	var updated models.Comment
	err = commentCollection().FindOneAndUpdate(ctx,
		bson.M{"_id": commentID},
		update,
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&updated)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	metrics.IncLikeToggle("comment")

	c.JSON(http.StatusOK, updated)
}

// resyncCommentCount recomputes the post's stored comment counter from a live
// count, correcting any drift rather than incrementing blindly.
func resyncCommentCount(ctx context.Context, postID primitive.ObjectID) error {
	count, err := commentCollection().CountDocuments(ctx, bson.M{"postId": postID})
	if err != nil {
		return err
	}
	_, err = postCollection().UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$set": bson.M{"statistics.commentCount": count}})
	return err
}
