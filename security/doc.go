// Package security validates the configuration files the browsers-match
// command reads.
//
// Rules decide which browser profile opens a link, so the files holding
// them are treated as sensitive input:
//
//   - ValidatePath rejects parent directory references and resolves
//     symbolic links before a file is opened.
//   - ValidateFilePermissions reports group- or world-writable files.
//
// Example:
//
//	if err := security.ValidatePath(path); err != nil {
//	    return fmt.Errorf("invalid rules path: %w", err)
//	}
//	if err := security.ValidateFilePermissions(path); errors.Is(err, security.ErrInsecureFilePermissions) {
//	    logutil.Warn("rules file is writable by others", "path", path)
//	}
package security
