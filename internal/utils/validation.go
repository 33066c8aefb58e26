package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FormatValidationError formats validation errors into a readable string.
// Only field names are echoed back; values stay out of responses.
func FormatValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, e.Field())
		}
		return "invalid or missing fields: " + strings.Join(fields, ", ")
	}
	return "invalid request payload"
}

// BindAndValidate binds the request body to a struct, enforcing its binding
// tags. If binding fails, it sends a BadRequest response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, FormatValidationError(err))
		return false
	}
	return true
}
