package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shelfd-io/shelfd/pkg/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	validateErr := errs.NewValidateError(errs.ErrValidation)
	t := reflect.ValueOf(v).Type()
	for _, e := range fieldErrs {
		fields := strings.Split(e.StructNamespace(), ".")
		node := validateErr.Fields
		parentT := t
		for i := 1; i < len(fields); i++ {
			f, ok := getField(parentT, fields[i])
			if !ok {
				continue
			}

			fieldName := fieldName(f)
			if i < len(fields)-1 {
				if node[fieldName] == nil {
					node[fieldName] = make(map[string]interface{})
				}
				node = node[fieldName].(map[string]interface{})
			} else {
				node[fieldName] = formatError(e)
			}
			parentT = f.Type
		}
	}
	return validateErr
}

func formatError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field missing"
	case "oneof":
		return fmt.Sprintf("invalid value: %v (choose from %s)", fe.Value(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "gt":
		return fmt.Sprintf("value must be > %s", fe.Param())
	case "gte":
		return fmt.Sprintf("value must be >= %s", fe.Param())
	case "lt":
		return fmt.Sprintf("value must be < %s", fe.Param())
	case "lte":
		return fmt.Sprintf("value must be <= %s", fe.Param())
	case "min":
		return fmt.Sprintf("length must be at least %s", fe.Param())
	}
	return fe.Error()
}

func fieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" {
		name = field.Name
	}
	return name
}

func getField(t reflect.Type, field string) (reflect.StructField, bool) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.FieldByName(field)
}
