package utils

import (
	"regexp"

	"aushealthsim/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("au_state", validateAUState)
	validate.RegisterValidation("au_postcode", validateAUPostcode)
	validate.RegisterValidation("medicare_number", validateMedicareNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAUState(fl validator.FieldLevel) bool {
	_, ok := constvars.States[fl.Field().String()]
	return ok
}

func validateAUPostcode(fl validator.FieldLevel) bool {
	return regexp.MustCompile(`^\d{4}$`).MatchString(fl.Field().String())
}

func validateMedicareNumber(fl validator.FieldLevel) bool {
	return regexp.MustCompile(`^\d{10}$`).MatchString(fl.Field().String())
}
