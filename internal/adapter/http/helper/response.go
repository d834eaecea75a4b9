package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/validation"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/response"
)

// SendSuccess writes the success envelope. The transport code is 200 even for
// logical failures elsewhere, so callers of the API switch on the status field.
func SendSuccess(c *gin.Context, message string, data ...any) {
	envelope := response.Envelope{
		Status:  response.StatusSuccess,
		Message: message,
	}

	if len(data) > 0 {
		envelope.Data = data[0]
	}

	c.JSON(http.StatusOK, envelope)
}

// SendSuccessWithToken is the login variant carrying the session token at the
// top level of the envelope.
func SendSuccessWithToken(c *gin.Context, message string, token string, data any) {
	c.JSON(http.StatusOK, response.Envelope{
		Status:  response.StatusSuccess,
		Message: message,
		Data:    data,
		Token:   token,
	})
}

// SendError writes the error envelope with a fixed message. Store and internal
// errors are never serialized to clients.
func SendError(c *gin.Context, message string, data ...any) {
	envelope := response.Envelope{
		Status:  response.StatusError,
		Message: message,
	}

	if len(data) > 0 {
		envelope.Data = data[0]
	}

	c.JSON(http.StatusOK, envelope)
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := validation.FormatValidationErrors(err)

	c.JSON(http.StatusBadRequest, response.Envelope{
		Status:  response.StatusError,
		Message: "Validation failed",
		Data:    validationErrors,
	})
}

// SendLoginFailure answers with the distinct login-failure body instead of the
// envelope.
func SendLoginFailure(c *gin.Context, message string) {
	c.JSON(http.StatusOK, response.LoginFailure{
		LoginSuccess: false,
		Message:      message,
	})
}

// SendUnauthorized is the guard rejection body, distinct from the envelope.
func SendUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"errors": []string{message},
	})
}

func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, response.Envelope{
		Status:  response.StatusError,
		Message: message,
	})
}
