package application

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "noteID" -> "note ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"noteID":   "note ID",
		"branchID": "branch ID",
		"path":     "path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateNoteID checks that a note ID is present and contains no whitespace
func ValidateNoteID(fieldName, id string) error {
	if err := ValidateRequired(fieldName, id); err != nil {
		return err
	}
	if strings.IndexFunc(id, unicode.IsSpace) != -1 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not contain whitespace, got: %q", formatFieldName(fieldName), id),
		}
	}
	return nil
}
