package errors

import (
	"strings"
	"unicode"
)

// ValidateSymbolName validates a layer, block, or group name for safety and
// correctness. Host applications reject control characters and a handful of
// reserved characters in symbol table names; this mirrors that contract.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or wildcard characters (<>/\":;?*|=`)
//   - Maximum length of 255 characters
func ValidateSymbolName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > 255 {
		return New(ErrCodeInvalidName, "name too long (max 255 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	// Characters the host's symbol tables reserve.
	if i := strings.IndexAny(name, `<>/\":;?*|=` + "`"); i >= 0 {
		return New(ErrCodeInvalidName, "name contains invalid character: %q", name[i])
	}

	return nil
}

// ValidateAttributeTag validates a block attribute tag.
// Tags follow the symbol name rules and additionally cannot contain spaces.
func ValidateAttributeTag(tag string) error {
	if err := ValidateSymbolName(tag); err != nil {
		return err
	}

	if strings.ContainsAny(tag, " \t") {
		return New(ErrCodeInvalidName, "attribute tag cannot contain whitespace: %q", tag)
	}

	return nil
}

// ValidateFilePath validates a file path passed to block import/export and
// document open/save operations.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || (unicode.IsControl(r) && r != '\t') {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateHostURL validates a bridge host URL.
// It ensures the URL has a safe scheme (http or https).
func ValidateHostURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidArgument, "host URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidArgument, "host URL must use http or https scheme")
	}

	return nil
}
