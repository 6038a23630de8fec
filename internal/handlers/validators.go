package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/SscSPs/money_planner/internal/utils/dates"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the DTOs:
//
//	txscope   - single, future or all
//	yearmonth - YYYY-MM
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected validator engine %T", binding.Validator.Engine()))
		}
		if err := v.RegisterValidation("txscope", validateScope); err != nil {
			panic(err)
		}
		if err := v.RegisterValidation("yearmonth", validateYearMonth); err != nil {
			panic(err)
		}
	})
}

func validateScope(fl validator.FieldLevel) bool {
	return recurrence.Scope(fl.Field().String()).Valid()
}

func validateYearMonth(fl validator.FieldLevel) bool {
	_, _, err := dates.ParseMonthKey(fl.Field().String())
	return err == nil
}
