// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jongio/browsers-core/cliout"
	"github.com/jongio/browsers-core/logutil"
	"github.com/jongio/browsers-core/profiles"
	"github.com/jongio/browsers-core/rules"
	"github.com/jongio/browsers-core/security"
)

// resolvePath returns flagValue, or the value of envVar when the flag is unset.
func resolvePath(flagValue, envVar, flagName string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("no %s file: use --%s or set %s", flagName, flagName, envVar)
}

// openConfig validates path and opens it for reading. Files writable by
// other users are read with a warning.
func openConfig(path string) (*os.File, error) {
	if err := security.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("invalid path %s: %w", path, err)
	}

	if err := security.ValidateFilePermissions(path); errors.Is(err, security.ErrInsecureFilePermissions) {
		logutil.Warn("configuration file is writable by other users", "path", path)
		cliout.Warning("%s is writable by other users", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

func loadRules(path string) ([]rules.Rule, error) {
	return load(path, rules.Decode)
}

func loadProfiles(path string) ([]profiles.Profile, error) {
	return load(path, profiles.Decode)
}

func load[T any](path string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := openConfig(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	list, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logutil.Debug("loaded configuration", "path", path, "entries", len(list))
	return list, nil
}
