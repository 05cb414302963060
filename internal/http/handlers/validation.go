package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// validationError writes the uniform field-validation failure body
func validationError(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": details})
}

// bindingErrorDetails flattens a gin binding error into a per-field map
func bindingErrorDetails(err error) map[string]string {
	details := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[fieldName(fe)] = validationMessage(fe)
		}
		return details
	}

	// Malformed JSON, wrong types and the like have no field to blame
	details["body"] = err.Error()
	return details
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "IsUrgent":
		return "is_urgent"
	default:
		return strings.ToLower(fe.Field())
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
