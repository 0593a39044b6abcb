/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"context"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/rs/zerolog"
)

var (
	// ErrDstMustBeNonNilPointer indicates that the destination must be a non-nil pointer.
	ErrDstMustBeNonNilPointer = errors.New("dst must be a non-nil pointer")
	// ErrDstMustBePointerToStruct indicates that the destination must be a pointer to a struct.
	ErrDstMustBePointerToStruct = errors.New("dst must be a pointer to a struct")
)

//nolint:gochecknoglobals // reflect types compared on every field
var (
	durationType        = reflect.TypeOf(time.Duration(0))
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// EnvConfigLoader loads configuration from environment variables.
// Nested struct fields join their JSON names with underscores, so
// CHARGERADAR_LOGGING_LEVEL maps to cfg.Logging.Level.
type EnvConfigLoader struct {
	logger logger.Logger
	prefix string
}

// NewEnvConfigLoader creates a new environment variable config loader.
func NewEnvConfigLoader(log logger.Logger, prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{
		logger: log,
		prefix: prefix,
	}
}

// Load implements ConfigLoader. A complete document in <prefix>CONFIG_JSON
// wins over individual variables.
func (e *EnvConfigLoader) Load(_ context.Context, _ string, dst interface{}) error {
	e.debug().Str("prefix", e.prefix).Msg("Loading configuration from environment variables")

	if jsonConfig := os.Getenv(e.prefix + "CONFIG_JSON"); jsonConfig != "" {
		if err := json.Unmarshal([]byte(jsonConfig), dst); err != nil {
			return fmt.Errorf("failed to unmarshal %sCONFIG_JSON: %w", e.prefix, err)
		}

		e.debug().Msg("Loaded configuration from CONFIG_JSON environment variable")

		return nil
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrDstMustBeNonNilPointer
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrDstMustBePointerToStruct
	}

	n := e.loadStruct(v, e.prefix)

	e.debug().Int("fields", n).Msg("Loaded configuration from environment variables")

	return nil
}

// debug returns a nil event, which zerolog treats as a no-op, when no logger is set.
func (e *EnvConfigLoader) debug() *zerolog.Event {
	if e.logger == nil {
		return nil
	}

	return e.logger.Debug()
}

// loadStruct fills v from the environment and reports how many fields were set.
// Fields that fail to parse are logged and skipped.
func (e *EnvConfigLoader) loadStruct(v reflect.Value, prefix string) int {
	t := v.Type()
	set := 0

	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		name, _, _ := strings.Cut(fieldType.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		envName := buildEnvName(prefix, name)

		n, err := e.setField(field, envName)
		if err != nil {
			if e.logger != nil {
				e.logger.Warn().
					Str("field", name).
					Str("env", envName).
					Err(err).
					Msg("Ignoring invalid environment variable")
			}

			continue
		}

		set += n
	}

	return set
}

func buildEnvName(prefix, fieldName string) string {
	envName := strings.ReplaceAll(strings.ToUpper(fieldName), ".", "_")

	return prefix + envName
}

// setField sets one field. Nested structs recurse; a nil struct pointer is
// only allocated when at least one of its fields is present.
func (e *EnvConfigLoader) setField(field reflect.Value, envName string) (int, error) {
	if isNestedStruct(field.Type()) {
		if field.Kind() == reflect.Struct {
			return e.loadStruct(field, envName+"_"), nil
		}

		target := field
		if field.IsNil() {
			target = reflect.New(field.Type().Elem())
		}

		n := e.loadStruct(target.Elem(), envName+"_")
		if n > 0 && field.IsNil() {
			field.Set(target)
		}

		return n, nil
	}

	envValue, ok := os.LookupEnv(envName)
	if !ok || envValue == "" {
		return 0, nil
	}

	if err := setFromString(field, envName, envValue); err != nil {
		return 0, err
	}

	return 1, nil
}

// isNestedStruct is true for structs and struct pointers that do not decode
// themselves from a single value.
func isNestedStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return false
	}

	return !decodesItself(t)
}

func decodesItself(t reflect.Type) bool {
	pt := reflect.PointerTo(t)

	return pt.Implements(jsonUnmarshalerType) || pt.Implements(textUnmarshalerType)
}

func setFromString(field reflect.Value, envName, envValue string) error {
	if field.Kind() == reflect.Ptr {
		elem := reflect.New(field.Type().Elem())
		if err := setFromString(elem.Elem(), envName, envValue); err != nil {
			return err
		}

		field.Set(elem)

		return nil
	}

	if decodesItself(field.Type()) {
		return setUnmarshaled(field, envName, envValue)
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(envValue)
	case reflect.Bool:
		b, err := strconv.ParseBool(envValue)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %w", envName, err)
		}

		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setIntField(field, envName, envValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(envValue, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer value for %s: %w", envName, err)
		}

		field.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return fmt.Errorf("invalid float value for %s: %w", envName, err)
		}

		field.SetFloat(f)
	case reflect.Slice:
		return setSliceField(field, envName, envValue)
	default:
		if err := json.Unmarshal([]byte(envValue), field.Addr().Interface()); err != nil {
			return fmt.Errorf("unsupported type %s for %s: %w", field.Kind(), envName, err)
		}
	}

	return nil
}

// setUnmarshaled hands the raw value to the type's own decoder. JSON
// unmarshalers get the value quoted unless it already parses as JSON.
func setUnmarshaled(field reflect.Value, envName, envValue string) error {
	target := field.Addr().Interface()

	if u, ok := target.(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(envValue)); err != nil {
			return fmt.Errorf("invalid value for %s: %w", envName, err)
		}

		return nil
	}

	raw := []byte(envValue)
	if !json.Valid(raw) {
		quoted, err := json.Marshal(envValue)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", envName, err)
		}

		raw = quoted
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("invalid value for %s: %w", envName, err)
	}

	return nil
}

func setIntField(field reflect.Value, envName, envValue string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(envValue)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %w", envName, err)
		}

		field.SetInt(int64(d))

		return nil
	}

	i, err := strconv.ParseInt(envValue, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value for %s: %w", envName, err)
	}

	field.SetInt(i)

	return nil
}

// setSliceField splits string slices on commas; other element types are JSON.
func setSliceField(field reflect.Value, envName, envValue string) error {
	if field.Type().Elem().Kind() == reflect.String {
		values := strings.Split(envValue, ",")
		slice := reflect.MakeSlice(field.Type(), len(values), len(values))

		for i, v := range values {
			slice.Index(i).SetString(strings.TrimSpace(v))
		}

		field.Set(slice)

		return nil
	}

	if err := json.Unmarshal([]byte(envValue), field.Addr().Interface()); err != nil {
		return fmt.Errorf("invalid slice value for %s: %w", envName, err)
	}

	return nil
}
