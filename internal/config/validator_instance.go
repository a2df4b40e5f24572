package config

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("item_id", func(fl validator.FieldLevel) bool {
			id := fl.Field().String()
			if id == "" {
				return true // generated on conversion when absent
			}
			_, err := uuid.Parse(id)
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
