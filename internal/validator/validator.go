// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	coinIDRegex       = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,99}$`)
	referralCodeRegex = regexp.MustCompile(`^[A-Za-z0-9]{6,16}$`)
)

// chartDays are the history windows the market-data service accepts.
var chartDays = map[int64]bool{
	1: true, 7: true, 14: true, 30: true, 90: true, 180: true, 365: true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn installs the custom type func and validators on v.
func RegisterOn(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("coin_id", validateCoinID)
	_ = v.RegisterValidation("referral_code", validateReferralCode)
	_ = v.RegisterValidation("chart_days", validateChartDays)
}

// decimalValue exposes decimals to numeric tags like gt=0. A zero decimal
// maps to 0 so "required" rejects it.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateCoinID(fl validator.FieldLevel) bool {
	return coinIDRegex.MatchString(fl.Field().String())
}

func validateReferralCode(fl validator.FieldLevel) bool {
	return referralCodeRegex.MatchString(fl.Field().String())
}

func validateChartDays(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return chartDays[fl.Field().Int()]
	}
	return false
}
