package config

import (
	"fmt"
	"reflect"

	"github.com/jesseduffield/keepitsafe/pkg/errs"
)

// Validate validates the user config. The SDES parameters themselves are
// checked by the cipher when they are parsed.
func (config *UserConfig) Validate() error {
	return validateRequiredRecurse("", *config)
}

// validateRequiredRecurse walks the config structs and reports the first
// field left at its zero value
func validateRequiredRecurse(path string, node interface{}) error {
	value := reflect.ValueOf(node)
	switch value.Kind() {
	case reflect.Struct:
		for _, field := range reflect.VisibleFields(reflect.TypeOf(node)) {
			var newPath string
			if len(path) == 0 {
				newPath = field.Name
			} else {
				newPath = fmt.Sprintf("%s.%s", path, field.Name)
			}
			if err := validateRequiredRecurse(newPath,
				value.FieldByName(field.Name).Interface()); err != nil {
				return err
			}
		}
	case reflect.String, reflect.Int, reflect.Uint64:
		if value.IsZero() {
			return errs.New(errs.ConfigError, "missing value for '%s' in config.yml", path)
		}
	default:
		return errs.New(errs.ConfigError, "unexpected type for property '%s': %s", path, value.Kind())
	}
	return nil
}
