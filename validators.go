package main

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finerp/models"
)

// registerValidators adds the domain enum checks to gin's binding engine so
// request structs can declare them as binding tags.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("categoria", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("statusconta", func(fl validator.FieldLevel) bool {
		return models.RecordStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("statusmeta", func(fl validator.FieldLevel) bool {
		return models.GoalStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("tipoinvestimento", func(fl validator.FieldLevel) bool {
		return models.InvestmentType(fl.Field().String()).Valid()
	})
}
