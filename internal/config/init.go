package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type InitOptions struct {
	// CustomPath overrides ConfigPath when set.
	CustomPath string
	Force      bool
}

type InitResult struct {
	Path    string
	Existed bool // true if the config file already existed before init
}

const configHeader = `# ksuid configuration
#
# format:       default output of 'ksuid new' (string, hex, inspect, time, timestamp, payload)
# date_locale:  how numeric --time dates are read (iso, us, eu)
# timezone:     zone for date-only --time values
# [alias]:      extra command names, e.g. gen = "new"

`

// InitConfig writes a config file holding the defaults. An existing file is
// left alone unless Force is set.
func InitConfig(opts InitOptions) (InitResult, error) {
	path := opts.CustomPath
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return InitResult{}, err
		}
	} else {
		var err error
		path, err = ExpandUser(path)
		if err != nil {
			return InitResult{}, err
		}
	}

	existed := fileExists(path)
	if existed && !opts.Force {
		return InitResult{}, fmt.Errorf(
			"config file %s already exists (use --force to overwrite)",
			path,
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return InitResult{}, err
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(Default()); err != nil {
		return InitResult{}, fmt.Errorf("failed to encode config: %w", err)
	}

	// Use atomic write: write to temp file, then rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return InitResult{}, fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up on error
		return InitResult{}, fmt.Errorf("failed to rename config file: %w", err)
	}

	return InitResult{Path: path, Existed: existed}, nil
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.Mode().IsRegular()
}
