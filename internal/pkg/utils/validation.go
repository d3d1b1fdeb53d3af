package utils

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	validate         *validator.Validate
	phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
)

var (
	allowedGenders     = []string{"male", "female", "other"}
	allowedBloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("relationship", validateRelationship)
	validate.RegisterValidation("report_type", validateReportType)
	validate.RegisterValidation("severity", validateSeverity)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("blood_group", validateBloodGroup)
	validate.RegisterValidation("object_id", validateObjectID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

func validateRelationship(fl validator.FieldLevel) bool {
	return models.Relationship(fl.Field().String()).IsValid()
}

func validateReportType(fl validator.FieldLevel) bool {
	return models.ReportType(fl.Field().String()).IsValid()
}

func validateSeverity(fl validator.FieldLevel) bool {
	return models.Severity(fl.Field().String()).IsValid()
}

func validateGender(fl validator.FieldLevel) bool {
	return contains(allowedGenders, fl.Field().String())
}

func validateBloodGroup(fl validator.FieldLevel) bool {
	return contains(allowedBloodGroups, fl.Field().String())
}

func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
