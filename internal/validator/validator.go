package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// vinRegex matches a 17-character VIN. I, O and Q are never used.
var vinRegex = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// pincodeRegex matches a 4 to 10 digit postal code.
var pincodeRegex = regexp.MustCompile(`^[0-9]{4,10}$`)

func validateVIN(fl validator.FieldLevel) bool {
	return vinRegex.MatchString(fl.Field().String())
}

func validatePincode(fl validator.FieldLevel) bool {
	return pincodeRegex.MatchString(fl.Field().String())
}

// validateObjectID checks for a 24-character hex document id.
func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("vin", validateVIN)
		_ = v.RegisterValidation("pincode", validatePincode)
		_ = v.RegisterValidation("objectid", validateObjectID)
	}
}
