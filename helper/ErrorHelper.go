package helper

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body shape shared by every failed request.
type ErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

var errorMessages = map[string]string{
	"accessDenied":            "Access denied",
	"invalidAuthen":           "Invalid authentication",
	"userNotFound":            "User not found",
	"postNotFound":            "Post not found",
	"commentNotFound":         "Comment not found",
	"notAllowedEditPost":      "You are not allowed to edit this post",
	"notAllowedDeletePost":    "You are not allowed to delete this post",
	"notAllowedDeleteComment": "You are not allowed to delete this comment",
	"postSaved":               "Post is already in your saved list",
	"postNotSaved":            "Post is not in your saved list",
	"emailExisted":            "This email is already in use",
	"invalidCredentials":      "Email or password is incorrect",
	"internalServerError":     "Something went wrong",
}

// MessageFor returns the human-readable text registered for an error name.
func MessageFor(name string) string {
	if msg, ok := errorMessages[name]; ok {
		return msg
	}
	return errorMessages["internalServerError"]
}

// RespondError writes the structured {name, message} error body.
func RespondError(c *gin.Context, status int, name string) {
	c.JSON(status, ErrorResponse{Name: name, Message: MessageFor(name)})
}

// AbortError is RespondError for middleware, stopping the handler chain.
func AbortError(c *gin.Context, status int, name string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Name: name, Message: MessageFor(name)})
}
