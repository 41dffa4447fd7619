package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingErrors turns a gin binding failure into a per-field error body.
// Non-validator failures (malformed JSON and the like) get a single message.
func bindingErrors(err error) gin.H {
	var verrs validator.ValidationErrors

	if !errors.As(err, &verrs) {
		return gin.H{"error": "Invalid request"}
	}

	fields := make(map[string]string, len(verrs))

	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = validationMessage(fe)
	}

	return gin.H{"errors": fields}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}
