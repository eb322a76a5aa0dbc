package envutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("config file doesn't have a known file suffix")

// LoadFile reads configuration variables from a file. The format follows the
// extension:
//   - .env: KEY=VALUE lines, comments and quoting as understood by godotenv
//   - .json: an object with an "env" field of string values
//   - .yml/.yaml: a mapping with an "env" field of string values
//
// Example YAML file:
//
//	env:
//	  TREESORT_SIZE: "1000"
//	  TREESORT_PRESORTED: "true"
func LoadFile(path string) (map[string]string, error) {
	name := strings.ToLower(filepath.Base(path))

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".json"):
		return loadEnvField(path, json.Unmarshal)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadEnvField(path, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}
}

// envFile is the shape shared by the JSON and YAML formats.
type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadEnvField(path string, unmarshal func([]byte, any) error) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile

	if err := unmarshal(bts, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return out.Env, nil
}

// LoadFileInto loads the config file named by key (if that key is set) and
// layers it under the process environment in the returned context.
// A key that is not set is not an error; the context is returned unchanged.
func LoadFileInto(ctx context.Context, key string) (context.Context, error) {
	path := String(ctx, key)
	if !path.HasValue() {
		return ctx, nil
	}

	vars, err := LoadFile(path.value)
	if err != nil {
		return ctx, err
	}

	return WithFileDefaults(ctx, vars), nil
}
