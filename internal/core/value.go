package core

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// ParseValue converts command-line text into a T. Strings, booleans, every
// integer and float width, time.Duration and types whose pointer implements
// encoding.TextUnmarshaler or Set(string) error are supported.
func ParseValue[T any](text string) (T, error) {
	var out T

	err := setValueFromString(reflect.ValueOf(&out).Elem(), text)

	return out, err
}

// unexported variables.
var (
	//nolint:gochecknoglobals // reflect type for time.Duration
	durationType             = reflect.TypeFor[time.Duration]()
	errStringSetterFailed    = errors.New("type assertion to Set(string) error failed")
	errTextUnmarshalerFailed = errors.New("type assertion to TextUnmarshaler failed")
	errUnsupportedValueType  = errors.New("unsupported value type")
	//nolint:gochecknoglobals,inamedparam // reflect type for flag.Value interface
	stringSetterType = reflect.TypeFor[interface{ Set(string) error }]()
	//nolint:gochecknoglobals // reflect type for text unmarshaling
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

func customSetter(val reflect.Value) (func(string) error, bool) {
	if !val.CanAddr() {
		return nil, false
	}

	ptr := val.Addr()
	if ptr.Type().Implements(textUnmarshalerType) {
		return func(value string) error {
			u, ok := ptr.Interface().(encoding.TextUnmarshaler)
			if !ok {
				return errTextUnmarshalerFailed
			}

			return u.UnmarshalText([]byte(value))
		}, true
	}

	if ptr.Type().Implements(stringSetterType) {
		return func(value string) error {
			s, ok := ptr.Interface().(interface{ Set(s string) error })
			if !ok {
				return errStringSetterFailed
			}

			return s.Set(value)
		}, true
	}

	return nil, false
}

// setValueByKind handles the type-specific conversion.
//
//nolint:cyclop // one case per supported kind
func setValueByKind(val reflect.Value, value string) error {
	switch val.Kind() { //nolint:exhaustive // default handles unsupported types
	case reflect.String:
		val.SetString(value)
	case reflect.Bool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}

		val.SetBool(parsed)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err := strconv.ParseInt(value, 10, val.Type().Bits())
		if err != nil {
			return err
		}

		val.SetInt(parsed)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		parsed, err := strconv.ParseUint(value, 10, val.Type().Bits())
		if err != nil {
			return err
		}

		val.SetUint(parsed)
	case reflect.Float32, reflect.Float64:
		parsed, err := strconv.ParseFloat(value, val.Type().Bits())
		if err != nil {
			return err
		}

		val.SetFloat(parsed)
	default:
		return fmt.Errorf("%w: %s", errUnsupportedValueType, val.Type())
	}

	return nil
}

func setValueFromString(val reflect.Value, value string) error {
	if setter, ok := customSetter(val); ok {
		return setter(value)
	}

	if val.Type() == durationType {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}

		val.SetInt(int64(parsed))

		return nil
	}

	return setValueByKind(val, value)
}
