package config

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/atlanticdynamic/crlauncher/internal/config/errz"
)

// layer is one source of env-keyed values.
type layer struct {
	source Source
	values map[string]string
}

// applyLayer copies every value defined in l onto the `env`-tagged fields
// of cfg. A key that is defined wins even when its value is empty.
func applyLayer(cfg *Config, l layer) error {
	if cfg.sources == nil {
		cfg.sources = make(map[string]Source)
	}
	return applyToStruct(reflect.ValueOf(cfg).Elem(), l, cfg.sources)
}

func applyToStruct(v reflect.Value, l layer, sources map[string]Source) error {
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := range v.NumField() {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.Struct:
			if err := applyToStruct(field, l, sources); err != nil {
				return err
			}
			continue
		case reflect.Interface:
			// The VCS variant holds a pointer to its backend struct.
			if field.IsNil() {
				continue
			}
			inner := field.Elem()
			if inner.Kind() == reflect.Ptr && inner.Elem().Kind() == reflect.Struct {
				if err := applyToStruct(inner.Elem(), l, sources); err != nil {
					return err
				}
			}
			continue
		}

		key := fieldType.Tag.Get("env")
		if key == "" {
			continue
		}
		val, ok := l.values[key]
		if !ok {
			continue
		}
		if err := setFieldFromString(field, val); err != nil {
			return fmt.Errorf("%s (from %s): %w", key, l.source, err)
		}
		sources[key] = l.source
	}
	return nil
}

func setFieldFromString(field reflect.Value, val string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(val)
	case reflect.Bool:
		if val == "" {
			field.SetBool(false)
			return nil
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%w: %q is not a boolean", errz.ErrInvalidValue, val)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("%w: unsupported field kind %s", errz.ErrInvalidValue, field.Kind())
	}
	return nil
}
