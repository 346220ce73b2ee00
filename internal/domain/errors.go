package domain

import (
	"errors"
	"fmt"
)

// Stable machine-readable error kinds returned to API clients.
const (
	KindValidation   = "validation_error"
	KindUnauthorized = "unauthorized"
	KindNotFound     = "not_found"
	KindNoRoute      = "no_route_found"
	KindConflict     = "conflict"
	KindStorage      = "storage_error"
	KindRateLimited  = "rate_limited"
	KindUpstream     = "upstream_error"
	KindInternal     = "internal_error"
)

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

// Error returns Msg when set; Field is kept for callers that need it.
func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	if e.Msg == "" {
		return "unauthorized"
	}
	return e.Msg
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// NoRouteError means the catalog has no transport options for the ordered pair.
type NoRouteError struct {
	SourceID ID
	DestID   ID
}

func (e NoRouteError) Error() string {
	return "no transport options available for this route"
}

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// StorageError wraps a failed read or write against the backing store.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("storage: %v", e.Err)
	}
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error { return e.Err }

// RateLimitError means the caller exceeded its request budget.
type RateLimitError struct{}

func (RateLimitError) Error() string { return "too many requests, slow down" }

// UpstreamError is a failed call to a third-party service.
type UpstreamError struct {
	Service string
	Status  int
	Err     error
}

func (e UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s failed: %d", e.Service, e.Status)
	}
	return fmt.Sprintf("%s failed: %v", e.Service, e.Err)
}

func (e UpstreamError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsNoRoute(err error) bool {
	var target NoRouteError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target StorageError
	return errors.As(err, &target)
}

func IsRateLimited(err error) bool {
	var target RateLimitError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}

// Kind classifies err into one of the Kind* constants. Unknown errors are internal.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return KindValidation
	case IsUnauthorized(err):
		return KindUnauthorized
	case IsNoRoute(err):
		return KindNoRoute
	case IsNotFound(err):
		return KindNotFound
	case IsConflict(err):
		return KindConflict
	case IsStorage(err):
		return KindStorage
	case IsRateLimited(err):
		return KindRateLimited
	case IsUpstream(err):
		return KindUpstream
	default:
		return KindInternal
	}
}
