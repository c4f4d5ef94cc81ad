package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JSON writes the uniform response envelope.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	var errMessage interface{}
	if err != nil {
		errMessage = err.Error()
	}
	c.JSON(status, gin.H{
		"message": message,
		"data":    data,
		"errors":  errMessage,
		"status":  http.StatusText(status),
	})
}

// ValidationError writes a 400 with a per-field breakdown of what failed, so
// the caller can point at the offending inputs.
func ValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	details := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = formatValidationError(fieldErr)
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "validation failed for one or more fields",
		"data":    nil,
		"errors":  details,
		"status":  http.StatusText(http.StatusBadRequest),
	})
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "value is too short or small (minimum: " + err.Param() + ")"
	case "max":
		return "value is too long or large (maximum: " + err.Param() + ")"
	case "oneof":
		return "must be one of: " + err.Param()
	default:
		return "validation failed for tag: " + err.Tag()
	}
}
