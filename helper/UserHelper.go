package helper

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ngocsang1201/blog-server/database"
	"github.com/ngocsang1201/blog-server/models"
)

// GetUserByEmail looks a user up by email. The driver error is returned as-is
// so callers can tell mongo.ErrNoDocuments from a real failure.
func GetUserByEmail(email string) (models.User, error) {
	var user models.User

	filter := bson.M{"email": email}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	userCollection := database.OpenCollection(database.Client, "users")
	err := userCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func GetUserById(id primitive.ObjectID) (models.User, error) {
	var user models.User
	filter := bson.M{"_id": id}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	userCollection := database.OpenCollection(database.Client, "users")
	err := userCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CurrentUser returns the user the auth middleware attached to the context.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet("user").(models.User)
}

// CanModify reports whether user may edit or delete content owned by ownerID.
func CanModify(user models.User, ownerID primitive.ObjectID) bool {
	return user.IsAdmin() || user.ID == ownerID
}
