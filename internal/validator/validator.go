// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("account_type", oneOf("main", "stash"))
	_ = v.RegisterValidation("ledger_operation", oneOf("add", "subtract"))
	_ = v.RegisterValidation("entry_type", oneOf("credit", "debit"))
	_ = v.RegisterValidation("transaction_status", oneOf("completed", "pending", "failed"))
	_ = v.RegisterValidation("bill_frequency", oneOf("weekly", "monthly", "yearly"))
	_ = v.RegisterValidation("plan_frequency", oneOf("daily", "weekly", "monthly"))
	_ = v.RegisterValidation("plan_status", oneOf("active", "paused"))
	_ = v.RegisterValidation("savings_type", oneOf("deposit", "withdrawal"))
	_ = v.RegisterValidation("circle_filter", oneOf("all", "mine", "public"))
}

func oneOf(allowed ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}
