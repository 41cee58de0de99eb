package config

import (
	"fmt"
	"reflect"

	caterr "github.com/StricklySoft/errcatalog/pkg/errors"
)

// Validator is implemented by configuration structs with checks beyond
// `required` tags. Validate runs after the required checks pass. A
// returned catalogue error is passed through unchanged; any other error
// is wrapped with CodeIllegalParameter.
type Validator interface {
	Validate() error
}

func validate(cfg any, rv reflect.Value) error {
	if err := validateRequired(rv, ""); err != nil {
		return err
	}

	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		if _, isCatalogue := caterr.AsError(err); isCatalogue {
			return err
		}
		return caterr.Wrap(err, caterr.CodeIllegalParameter)
	}
	return nil
}

// validateRequired checks `required:"true"` fields, reporting the dotted
// path of the first empty one (e.g. "Log.Level").
func validateRequired(rv reflect.Value, path string) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field, sf := rv.Field(i), rt.Field(i)
		if !field.CanSet() {
			continue
		}

		fieldPath := sf.Name
		if path != "" {
			fieldPath = path + "." + sf.Name
		}

		if field.Kind() == reflect.Struct && sf.Type != durationType {
			if err := validateRequired(field, fieldPath); err != nil {
				return err
			}
			continue
		}
		if sf.Tag.Get("required") == "true" && field.IsZero() {
			return caterr.Wrap(fmt.Errorf("config: required field %q is empty", fieldPath),
				caterr.CodeIllegalParameter).WithDetail("field", fieldPath)
		}
	}
	return nil
}
