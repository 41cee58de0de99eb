// Package config loads configuration structs from struct tag defaults,
// an optional YAML or JSON file, and environment variables, resolved in
// priority order:
//
//	envDefault struct tags  (lowest priority)
//	YAML/JSON config file  (medium priority)
//	Environment variables
//	Overrides              (highest priority)
//
// Overrides are values supplied by the caller, typically from command-line
// flags, keyed by the unprefixed variable name (e.g. "LOG_LEVEL").
//
// # Struct Tags
//
//   - `env:"VAR_NAME"` maps the field to an environment variable. On a
//     nested struct field the tag becomes a prefix for the child fields.
//   - `envDefault:"value"` sets a default when the field is zero-valued.
//   - `required:"true"` fails validation if the field is still zero.
//
// File loading uses the `yaml` and `json` tags of the target struct.
//
// # Usage
//
//	type Config struct {
//	    Output string `env:"OUTPUT" envDefault:"table" yaml:"output"`
//	    Log    struct {
//	        Level string `env:"LEVEL" envDefault:"info" yaml:"level"`
//	    } `env:"LOG" yaml:"log"`
//	}
//
//	cfg := config.MustLoad[Config](
//	    config.New().WithEnvPrefix("ERRCAT").WithFile("errcat.yaml"),
//	)
//
// Failures are catalogue errors (package errors): unreadable files carry
// CodeReadFailed, malformed values and failed validation carry
// CodeIllegalParameter.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	caterr "github.com/StricklySoft/errcatalog/pkg/errors"
)

// durationType distinguishes time.Duration from plain int64 fields.
var durationType = reflect.TypeOf(time.Duration(0))

// Loader resolves configuration in layers. Configure it with
// [Loader.WithEnvPrefix] and [Loader.WithFile], then call [Loader.Load].
//
// Loader is not safe for concurrent use.
type Loader struct {
	envPrefix string
	filePath  string
	overrides map[string]string
}

// New returns a Loader that reads environment variables only.
func New() *Loader {
	return &Loader{}
}

// WithEnvPrefix prepends prefix and an underscore to every variable name
// derived from an `env` tag. The prefix is uppercased; an empty prefix
// disables prefixing.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = strings.ToUpper(prefix)
	return l
}

// WithFile sets a YAML (.yaml, .yml) or JSON (.json) file to load. A
// missing file is not an error. Paths containing ".." are rejected.
func (l *Loader) WithFile(path string) *Loader {
	l.filePath = path
	return l
}

// WithOverrides sets values applied after environment variables, keyed
// like `env` tags without the loader prefix: "OUTPUT" or, for a field of
// a struct tagged `env:"LOG"`, "LOG_LEVEL". Empty values are skipped.
func (l *Loader) WithOverrides(values map[string]string) *Loader {
	l.overrides = values
	return l
}

// Load fills the struct pointed to by cfg: defaults first, then the file,
// then environment variables, then overrides. The result is then validated against
// `required` tags and, if cfg implements [Validator], its Validate method.
func (l *Loader) Load(cfg any) error {
	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return caterr.Wrap(fmt.Errorf("config: Load requires a non-nil pointer to a struct, got %T", cfg),
			caterr.CodeIllegalParameter)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return caterr.Wrap(fmt.Errorf("config: Load requires a pointer to a struct, got %T", cfg),
			caterr.CodeIllegalParameter)
	}

	if err := applyDefaults(rv); err != nil {
		return err
	}
	if l.filePath != "" {
		if err := l.loadFile(cfg); err != nil {
			return err
		}
	}
	if err := applyEnv(rv, l.envPrefix, os.LookupEnv); err != nil {
		return err
	}
	if len(l.overrides) > 0 {
		if err := applyEnv(rv, "", l.lookupOverride); err != nil {
			return err
		}
	}
	return validate(cfg, rv)
}

// MustLoad loads a T with loader and panics on failure. Use it in main,
// where invalid configuration should stop the process.
func MustLoad[T any](loader *Loader) T {
	var cfg T
	if err := loader.Load(&cfg); err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

func (l *Loader) lookupOverride(key string) (string, bool) {
	v, ok := l.overrides[key]
	return v, ok && v != ""
}

func (l *Loader) loadFile(cfg any) error {
	if strings.Contains(l.filePath, "..") {
		return caterr.Wrap(fmt.Errorf("config: path %q contains ..", l.filePath), caterr.CodeWrongPath).
			WithDetail("path", l.filePath)
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if os.IsPermission(err) {
			return caterr.Wrap(err, caterr.CodeFileNotAccessible).WithDetail("path", l.filePath)
		}
		return caterr.Wrap(err, caterr.CodeReadFailed).WithDetail("path", l.filePath)
	}

	return Decode(l.filePath, data, cfg)
}

// Decode unmarshals data into out, choosing YAML or JSON by the extension
// of path. An unsupported extension yields CodeUnknownType; malformed
// content yields CodeIllegalParameter.
func Decode(path string, data []byte, out any) error {
	ext := strings.ToLower(filepath.Ext(path))
	var err error
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	case ".json":
		err = json.Unmarshal(data, out)
	default:
		return caterr.Wrap(fmt.Errorf("config: unsupported file extension %q (use .yaml, .yml, or .json)", ext),
			caterr.CodeUnknownType).WithDetail("path", path)
	}
	if err != nil {
		return caterr.Wrap(fmt.Errorf("config: parse %s: %w", path, err), caterr.CodeIllegalParameter).
			WithDetail("path", path)
	}
	return nil
}

// applyDefaults sets zero-valued fields from their envDefault tag,
// recursing into nested structs.
func applyDefaults(rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field, sf := rv.Field(i), rt.Field(i)
		if !field.CanSet() {
			continue
		}
		if field.Kind() == reflect.Struct && sf.Type != durationType {
			if err := applyDefaults(field); err != nil {
				return err
			}
			continue
		}

		def := sf.Tag.Get("envDefault")
		if def == "" || !field.IsZero() {
			continue
		}
		if err := setField(field, def); err != nil {
			return caterr.Wrap(fmt.Errorf("config: default for field %q: %w", sf.Name, err),
				caterr.CodeIllegalParameter).WithDetail("field", sf.Name)
		}
	}
	return nil
}

// applyEnv sets fields from the variables found by lookup. prefix
// accumulates the loader prefix and the env tags of enclosing structs,
// joined by "_".
func applyEnv(rv reflect.Value, prefix string, lookup func(string) (string, bool)) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field, sf := rv.Field(i), rt.Field(i)
		if !field.CanSet() {
			continue
		}
		tag := sf.Tag.Get("env")

		if field.Kind() == reflect.Struct && sf.Type != durationType {
			if err := applyEnv(field, joinEnv(prefix, tag), lookup); err != nil {
				return err
			}
			continue
		}
		if tag == "" {
			continue
		}

		key := joinEnv(prefix, tag)
		val, ok := lookup(key)
		if !ok {
			continue
		}
		if err := setField(field, val); err != nil {
			return caterr.Wrap(fmt.Errorf("config: field %q from %s: %w", sf.Name, key, err),
				caterr.CodeIllegalParameter).WithDetail("env", key)
		}
	}
	return nil
}

func joinEnv(prefix, name string) string {
	switch {
	case name == "":
		return prefix
	case prefix == "":
		return name
	default:
		return prefix + "_" + name
	}
}

// setField parses value into field. Supported kinds: string (including
// named string types), bool, signed integers, time.Duration, and []string
// (comma-separated, trimmed).
func setField(field reflect.Value, value string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("cannot parse duration %q: %w", value, err)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cannot parse bool %q: %w", value, err)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("cannot parse integer %q: %w", value, err)
		}
		field.SetInt(n)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice element type %s", field.Type().Elem().Kind())
		}
		parts := strings.Split(value, ",")
		slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
		for i, p := range parts {
			slice.Index(i).SetString(strings.TrimSpace(p))
		}
		field.Set(slice)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}
	return nil
}
