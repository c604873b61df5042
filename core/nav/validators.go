package nav

import (
	"github.com/go-playground/validator/v10"

	"github.com/skilllogic/schoolcrm/core"
)

var (
	roleTag  = "role"
	roleText = "invalid role"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(roleTag, roleText)
}

// roleValidation checks that the provided value is a known role.
func roleValidation(fl validator.FieldLevel) bool {
	return Role(fl.Field().String()).Valid()
}
