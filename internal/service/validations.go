package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Employee IDs are handed out as K followed by exactly six digits
		validate.RegisterValidation("employee_id", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) != 7 || value[0] != 'K' {
				return false
			}
			for _, char := range value[1:] {
				if !unicode.IsDigit(char) {
					return false
				}
			}
			return true
		})
	})
}
