package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"crisisAlert/pkg/e"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// coordinates and radii arrive as fixed-precision decimals
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	validate.RegisterTagNameFunc(jsonFieldName)
	RegisterCustomValidations(validate)
}

// Check validates s and reports the first failing field as *e.ValidationError.
func Check(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return e.NewValidationError(fe.Field(), "failed "+fe.Tag()+" check")
	}
	return e.Wrap("validate", e.ErrInvalidInput)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
