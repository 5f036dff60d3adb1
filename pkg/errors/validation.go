package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// nodeNameRegex matches names accepted for document nodes.
var nodeNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)

// ValidateNodeName validates a node name used in layout documents and results.
// Names end up in DOT output and JSON keys, so the accepted alphabet is kept
// small:
//   - No empty names
//   - No control characters or whitespace
//   - Maximum length of 128 characters
//   - Letters, digits, '.', '_', ':' and '-' only, starting with a letter or digit
func ValidateNodeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidNodeName, "node name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidNodeName, "node name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidNodeName, "node name contains invalid characters")
		}
	}

	if !nodeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidNodeName, "invalid node name: %q", name)
	}

	return nil
}

// ValidateDocumentPath validates a layout document path given on the command
// line or in a request.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Extension must be .toml, .yaml, .yml or .json
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	lower := strings.ToLower(path)
	for _, ext := range []string{".toml", ".yaml", ".yml", ".json"} {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported document extension: %q", path)
}

// ValidateLibraryPath validates a shared library path for the native engine.
// Relative names are allowed so the system loader can search for them.
func ValidateLibraryPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "library path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "library path contains invalid characters")
		}
	}

	return nil
}
