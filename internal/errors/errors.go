package errors

import (
	"errors"
	"fmt"
)

// Common error types for the authorization request service
var (
	// Discovery errors
	ErrMissingIssuer   = errors.New("missing issuer")
	ErrDiscoveryFailed = errors.New("discovery failed")

	// Configuration errors
	ErrMissingAuthorizationURI = errors.New("no authorization uri or issuer configured")
	ErrMissingClientID         = errors.New("missing client id")
	ErrInvalidResponseType     = errors.New("unsupported response type")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
