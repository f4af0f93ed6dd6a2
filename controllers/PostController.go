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

	"github.com/ngocsang1201/blog-server/database"
	"github.com/ngocsang1201/blog-server/helper"
	"github.com/ngocsang1201/blog-server/metrics"
	"github.com/ngocsang1201/blog-server/models"
)

func postCollection() *mongo.Collection {
	return database.OpenCollection(database.Client, "posts")
}

func userCollection() *mongo.Collection {
	return database.OpenCollection(database.Client, "users")
}

func commentCollection() *mongo.Collection {
	return database.OpenCollection(database.Client, "comments")
}

// GetAllPosts lists the feed, filterable by slug search, author username or
// hashtag, newest first.
func GetAllPosts(c *gin.Context) {
	filter := helper.GeneratePostFilter(c.Query("search"), c.Query("username"), c.Query("hashtag"))
	page, limit := helper.ParseListParams(c)

	response, err := helper.GetPostResponse(filter, page, limit)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetPostBySlug returns one post with a live comment count and bumps its view
// counter as a side effect. The response carries the pre-increment count.
func GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err := postCollection().FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	commentCount, err := commentCollection().CountDocuments(ctx, bson.M{"postId": post.ID})
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	post.Statistics.CommentCount = commentCount

	_, err = postCollection().UpdateOne(ctx, bson.M{"_id": post.ID},
		bson.M{"$inc": bson.M{"statistics.viewCount": 1}})
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	metrics.IncPostView()

	c.JSON(http.StatusOK, post)
}

// GetPostForEdit returns the raw post document for its author or an admin.
func GetPostForEdit(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("slug"))
	if err != nil {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}
	user := helper.CurrentUser(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err = postCollection().FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	if !helper.CanModify(user, post.AuthorID) {
		helper.RespondError(c, http.StatusForbidden, "notAllowedEditPost")
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetMyPosts lists the caller's own posts.
func GetMyPosts(c *gin.Context) {
	user := helper.CurrentUser(c)
	page, limit := helper.ParseListParams(c)

	response, err := helper.GetPostResponse(bson.M{"authorId": user.ID}, page, limit)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetSavedPosts lists the posts in the caller's saved list.
func GetSavedPosts(c *gin.Context) {
	user := helper.CurrentUser(c)
	page, limit := helper.ParseListParams(c)

	saved := user.Saved
	if saved == nil {
		saved = []primitive.ObjectID{}
	}
	response, err := helper.GetPostResponse(bson.M{"_id": bson.M{"$in": saved}}, page, limit)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	c.JSON(http.StatusOK, response)
}

type postForm struct {
	Slug        string   `json:"slug" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Hashtags    []string `json:"hashtags"`
}

// CreatePost stores a new post carrying a snapshot of the caller's profile.
func CreatePost(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := helper.CurrentUser(c)

	hashtags := form.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}

	post := models.Post{
		ID:          primitive.NewObjectID(),
		Slug:        form.Slug,
		Title:       form.Title,
		Content:     form.Content,
		Description: form.Description,
		Thumbnail:   form.Thumbnail,
		Hashtags:    hashtags,
		AuthorID:    user.ID,
		Author: models.Author{
			ID:       user.ID,
			Name:     user.Name,
			Avatar:   user.Avatar,
			Username: user.Username,
			Bio:      user.Bio,
		},
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := postCollection().InsertOne(ctx, post)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	c.JSON(http.StatusCreated, post)
}

type postUpdateForm struct {
	Slug        *string   `json:"slug"`
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Description *string   `json:"description"`
	Thumbnail   *string   `json:"thumbnail"`
	Hashtags    *[]string `json:"hashtags"`
}

func (f postUpdateForm) changes() bson.M {
	set := bson.M{"updatedAt": time.Now()}
	if f.Slug != nil {
		set["slug"] = *f.Slug
	}
	if f.Title != nil {
		set["title"] = *f.Title
	}
	if f.Content != nil {
		set["content"] = *f.Content
	}
	if f.Description != nil {
		set["description"] = *f.Description
	}
	if f.Thumbnail != nil {
		set["thumbnail"] = *f.Thumbnail
	}
	if f.Hashtags != nil {
		set["hashtags"] = *f.Hashtags
	}
	return set
}

// UpdatePost merges the provided fields into the post, author or admin only.
func UpdatePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}

	var form postUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := helper.CurrentUser(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err = postCollection().FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	if !helper.CanModify(user, post.AuthorID) {
		helper.RespondError(c, http.StatusForbidden, "notAllowedEditPost")
		return
	}

	after := options.After
	var updated models.Post
	err = postCollection().FindOneAndUpdate(ctx,
		bson.M{"_id": postID},
		bson.M{"$set": form.changes()},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&updated)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePost removes a post and cascades: its comments are deleted and its id
// is pulled from every user's saved list. The sequence is fixed and there is
// no rollback when a later step fails.
func DeletePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}
	user := helper.CurrentUser(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err = postCollection().FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	if !helper.CanModify(user, post.AuthorID) {
		helper.RespondError(c, http.StatusForbidden, "notAllowedDeletePost")
		return
	}

	if _, err := postCollection().DeleteOne(ctx, bson.M{"_id": postID}); err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	if _, err := commentCollection().DeleteMany(ctx, bson.M{"postId": postID}); err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	_, err = userCollection().UpdateMany(ctx,
		bson.M{"saved": bson.M{"$in": []primitive.ObjectID{postID}}},
		bson.M{"$pull": bson.M{"saved": postID}})
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	c.Status(http.StatusOK)
}

// LikePost toggles the caller's membership in the post's like set and keeps
// the denormalized like counter in step, returning the updated post.
func LikePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}
	user := helper.CurrentUser(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err = postCollection().FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		helper.RespondError(c, http.StatusNotFound, "postNotFound")
		return
	}
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	var update bson.M
	if post.LikedBy(user.ID) {
		update = bson.M{
			"$pull": bson.M{"likes": user.ID},
			"$inc":  bson.M{"statistics.likeCount": -1},
		}
	} else {
		update = bson.M{
			"$addToSet": bson.M{"likes": user.ID},
			"$inc":      bson.M{"statistics.likeCount": 1},
		}
	}

	after := options.After
	var updated models.Post
	err = postCollection().FindOneAndUpdate(ctx,
		bson.M{"_id": postID},
		update,
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&updated)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	metrics.IncLikeToggle("post")

	c.JSON(http.StatusOK, updated)
}

// SavePost adds the post to the caller's saved list, rejecting duplicates.
func SavePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
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

	if user.HasSaved(postID) {
		helper.RespondError(c, http.StatusBadRequest, "postSaved")
		return
	}

	_, err = userCollection().UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$addToSet": bson.M{"saved": postID}})
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	c.Status(http.StatusOK)
}

// UnsavePost removes the post from the caller's saved list, rejecting the
// call when it was never saved.
func UnsavePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
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

	if !user.HasSaved(postID) {
		helper.RespondError(c, http.StatusBadRequest, "postNotSaved")
		return
	}

	_, err = userCollection().UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$pull": bson.M{"saved": postID}})
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	c.Status(http.StatusOK)
}

// SearchPosts returns an unpaginated newest-first list matching a single
// facet: q searches slugs, searchFor switches to hashtag or username.
func SearchPosts(c *gin.Context) {
	searchTerm := c.Query("q")
	searchFor := c.DefaultQuery("searchFor", "slug")

	var filter bson.M
	switch searchFor {
	case "hashtag":
		filter = helper.GeneratePostFilter("", "", searchTerm)
	case "username":
		filter = helper.GeneratePostFilter("", searchTerm, "")
	default:
		filter = helper.GeneratePostFilter(searchTerm, "", "")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := postCollection().Find(ctx, filter, findOptions)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	c.JSON(http.StatusOK, posts)
}
