// Package config loads objcore settings from the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sarchlab/objcore/errs"
	"github.com/sarchlab/objcore/naming"
)

// EnvMaxNameLength is the variable that sets the maximum long name length.
const EnvMaxNameLength = "OBJCORE_MAX_NAME_LENGTH"

// Config holds the settings of an application scope.
type Config struct {
	// MaxNameLength bounds long names. Zero means unlimited.
	MaxNameLength int
}

// Load reads the dotenv files that exist, then the process environment. A
// variable set in the process environment wins over the files.
func Load(envFiles ...string) (Config, error) {
	vars, err := readEnvFiles(envFiles)
	if err != nil {
		return Config{}, err
	}

	if v, ok := os.LookupEnv(EnvMaxNameLength); ok {
		vars[EnvMaxNameLength] = v
	}

	return parse(vars)
}

func readEnvFiles(envFiles []string) (map[string]string, error) {
	vars := make(map[string]string)

	for _, f := range envFiles {
		fileVars, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, errs.New(errs.InvalidConfig,
				"cannot read env file: "+err.Error()).
				With("file", f)
		}

		for k, v := range fileVars {
			vars[k] = v
		}
	}

	return vars, nil
}

func parse(vars map[string]string) (Config, error) {
	c := Config{}

	raw := strings.TrimSpace(vars[EnvMaxNameLength])
	if raw == "" {
		return c, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return Config{}, errs.New(errs.InvalidConfig,
			"max name length must be a non-negative integer").
			With(EnvMaxNameLength, raw)
	}

	if err := naming.ValidateMaxNameLength(n); err != nil {
		return Config{}, err
	}

	c.MaxNameLength = n

	return c, nil
}

// NewAuthority builds the naming authority described by the config.
func (c Config) NewAuthority() *naming.Authority {
	return naming.MakeBuilder().
		WithMaxNameLength(c.MaxNameLength).
		Build()
}
