package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct's validation tags and flattens any
// failures into a single human-readable error, suitable for returning to
// the dashboard as-is.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var msgs []string
	for _, err := range err.(validator.ValidationErrors) {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "min":
			msgs = append(msgs, field+" must be at least "+err.Param())
		case "max":
			msgs = append(msgs, field+" must be at most "+err.Param())
		case "gt":
			msgs = append(msgs, field+" must be greater than "+err.Param())
		case "oneof":
			msgs = append(msgs, field+" must be one of: "+err.Param())
		case "len":
			msgs = append(msgs, field+" must be exactly "+err.Param()+" characters")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}

	return fmt.Errorf("%s", strings.Join(msgs, ", "))
}
