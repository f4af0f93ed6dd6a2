package helper

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ngocsang1201/blog-server/database"
	"github.com/ngocsang1201/blog-server/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type Pagination struct {
	Page      int64 `json:"page"`
	Limit     int64 `json:"limit"`
	TotalRows int64 `json:"totalRows"`
}

// PostResponse is the paginated list shape shared by every post listing.
type PostResponse struct {
	DataList   []models.Post `json:"dataList"`
	Pagination Pagination    `json:"pagination"`
}

// ParseListParams reads page/limit query params, falling back to defaults.
func ParseListParams(c *gin.Context) (page, limit int64) {
	page = defaultPage
	limit = defaultLimit
	if v, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

// GeneratePostFilter maps list query params onto a Mongo filter. Search wins
// over username, username over hashtag, mirroring the feed's single-facet UI.
func GeneratePostFilter(search, username, hashtag string) bson.M {
	if search != "" {
		// literal substring match: metacharacters in the term must not
		// change what the pattern matches
		pattern := regexp.QuoteMeta(search)
		return bson.M{"slug": bson.M{"$regex": primitive.Regex{Pattern: pattern, Options: "i"}}}
	}
	if username != "" {
		return bson.M{"author.username": username}
	}
	if hashtag != "" {
		return bson.M{"hashtags": hashtag}
	}
	return bson.M{}
}

// GetPostResponse runs a newest-first paginated query over the posts
// collection and wraps the page with its row count.
func GetPostResponse(filter bson.M, page, limit int64) (PostResponse, error) {
	response := PostResponse{
		DataList:   []models.Post{},
		Pagination: Pagination{Page: page, Limit: limit},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	postCollection := database.OpenCollection(database.Client, "posts")

	totalRows, err := postCollection.CountDocuments(ctx, filter)
	if err != nil {
		return response, err
	}
	response.Pagination.TotalRows = totalRows

	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := postCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return response, err
	}
	if err := cursor.All(ctx, &response.DataList); err != nil {
		return response, err
	}
	return response, nil
}
