// Package validate checks domain models and user input before they reach
// the store or the undo/redo engine.
package validate

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/danreyes/reckon/internal/errors"
)

// MaxSIDLength is the maximum length for a simplified ID.
const MaxSIDLength = 32

// sidRegex validates simplified IDs (alphanumeric, dashes, underscores, periods).
var sidRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// validate is the shared validator instance, configured with custom tags.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("sid", validateSID)
}

// validateSID implements the "sid" struct tag.
func validateSID(fl validator.FieldLevel) bool {
	return sidRegex.MatchString(fl.Field().String())
}

// Struct validates a model against its struct tags, mapping the first
// failure to a user error.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.NewSystemError("validation failed", err)
	}

	fe := verrs[0]
	value := fmt.Sprintf("%v", fe.Value())
	switch fe.Tag() {
	case "required":
		return errors.NewUserErrorWithField(fe.Field(), "", fe.Field()+" is required",
			"Provide a value for "+fe.Field())
	case "max":
		return errors.NewUserErrorWithField(fe.Field(), value,
			fe.Field()+" too long",
			fe.Field()+" must be "+fe.Param()+" characters or fewer")
	case "oneof":
		return errors.NewUserErrorWithField(fe.Field(), value,
			"invalid "+fe.Field(),
			fe.Field()+" must be one of: "+fe.Param())
	case "sid":
		return errors.NewUserErrorWithField(fe.Field(), value,
			"invalid identifier format",
			"Identifiers must start with a letter or number and contain only letters, numbers, dashes, underscores, or periods")
	default:
		return errors.NewUserError("invalid "+fe.Field(), "Check the value for "+fe.Field())
	}
}

// SID validates a standalone simplified ID.
func SID(sid string) error {
	if sid == "" {
		return errors.NewUserError("identifier cannot be empty", "Provide a valid identifier")
	}
	if len(sid) > MaxSIDLength {
		return errors.NewUserErrorWithField("sid", sid,
			"identifier too long",
			"Identifiers must be 32 characters or fewer")
	}
	if !sidRegex.MatchString(sid) {
		return errors.NewUserErrorWithField("sid", sid,
			"invalid identifier format",
			"Identifiers must start with a letter or number and contain only letters, numbers, dashes, underscores, or periods")
	}
	return nil
}
