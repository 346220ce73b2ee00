package services

import (
	"strings"

	"travelmitr/internal/domain"
)

// required trims v and rejects it when blank.
func required(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", domain.ValidationError{Field: field, Msg: field + " is required"}
	}
	return v, nil
}
