package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ngocsang1201/blog-server/helper"
	"github.com/ngocsang1201/blog-server/metrics"
	"github.com/ngocsang1201/blog-server/models"
)

var validate = validator.New()

type registerForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

// Register creates a user account with a bcrypt-hashed password. Every new
// account gets the normal role; admins are promoted out of band.
func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := userCollection().CountDocuments(ctx, bson.M{"email": form.Email})
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	if count > 0 {
		helper.RespondError(c, http.StatusBadRequest, "emailExisted")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      form.Name,
		Email:     form.Email,
		Username:  form.Username,
		Password:  string(hashedPassword),
		Avatar:    form.Avatar,
		Bio:       form.Bio,
		Role:      models.RoleNormal,
		Saved:     []primitive.ObjectID{},
		CreatedAt: time.Now(),
	}

	if _, err := userCollection().InsertOne(ctx, user); err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	c.JSON(http.StatusCreated, user)
}

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks credentials and issues a bearer token for the auth gate.
func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := helper.GetUserByEmail(form.Email)
	if err == mongo.ErrNoDocuments {
		metrics.IncLogin("failure")
		helper.RespondError(c, http.StatusBadRequest, "invalidCredentials")
		return
	}
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		metrics.IncLogin("failure")
		helper.RespondError(c, http.StatusBadRequest, "invalidCredentials")
		return
	}

	token, err := helper.GenerateToken(user.ID)
	if err != nil {
		helper.RespondError(c, http.StatusInternalServerError, "internalServerError")
		return
	}
	metrics.IncLogin("success")

	c.JSON(http.StatusOK, gin.H{"user": user, "accessToken": token})
}

// GetMe returns the authenticated caller's own user document.
func GetMe(c *gin.Context) {
	user := helper.CurrentUser(c)
	c.JSON(http.StatusOK, user)
}
