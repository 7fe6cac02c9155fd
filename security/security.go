// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrInvalidPath indicates a path contains invalid characters or patterns.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path traversal attempt.
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrInsecureFilePermissions indicates a file has insecure (world-writable) permissions.
	ErrInsecureFilePermissions = errors.New("insecure file permissions")
)

// ValidatePath checks that a rules or profiles path is safe to read.
// It rejects parent directory references before and after cleaning and
// resolves symbolic links. A path that does not exist yet passes; opening it
// reports that.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}
	cleanPath := filepath.Clean(absPath)

	resolvedPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
		}
		resolvedPath = cleanPath
	}

	if strings.Contains(resolvedPath, "..") {
		return fmt.Errorf("%w: resolved path contains parent directory reference", ErrPathTraversal)
	}

	return nil
}

// ValidateFilePermissions returns ErrInsecureFilePermissions when path is
// group- or world-writable. Anyone able to edit a rules file decides where
// links open, so callers should at least warn. Windows uses ACLs and is
// skipped.
func ValidateFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if info.Mode().Perm()&0o022 != 0 {
		return ErrInsecureFilePermissions
	}

	return nil
}
