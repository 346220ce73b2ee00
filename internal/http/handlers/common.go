package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"travelmitr/internal/domain"
)

// BindJSONOrError decodes the body into dst and writes a 400 when it cannot.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondDomainError(c, domain.ValidationError{Msg: "request body is required"})
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondDomainError(c, bindingError(err))
		return false
	}
	return true
}

// bindingError turns binding failures into a ValidationError naming the first
// offending field.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return domain.ValidationError{Field: field, Msg: field + " is required", Err: err}
		case "email":
			return domain.ValidationError{Field: field, Msg: field + " must be a valid email address", Err: err}
		default:
			return domain.ValidationError{Field: field, Msg: field + " is invalid", Err: err}
		}
	}
	return domain.ValidationError{Msg: "invalid JSON payload", Err: err}
}

// paramID parses a positive path id.
func paramID(c *gin.Context, name string) (domain.ID, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, domain.ValidationError{Field: name, Msg: fmt.Sprintf("invalid %s", name)}
	}
	return domain.ID(v), nil
}

// flexID accepts an id sent either as a JSON number or a numeric string.
type flexID domain.ID

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s == "" {
			return nil
		}
		b = []byte(s)
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", b)
	}
	*f = flexID(v)
	return nil
}
