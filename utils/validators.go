package authUtils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/bmkabile/fixmyward/models"
)

// RegisterValidators installs the enum validators used by binding tags on
// request structs: category, province, ward, issuestatus, userrole.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.IssueCategory(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("province", func(fl validator.FieldLevel) bool {
		return models.IsValidProvince(fl.Field().String())
	})
	v.RegisterValidation("ward", func(fl validator.FieldLevel) bool {
		return models.IsValidWard(fl.Field().String())
	})
	v.RegisterValidation("issuestatus", func(fl validator.FieldLevel) bool {
		return models.IssueStatus(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).IsValid()
	})
}
