package oauthmodel

import "errors"

var (
	ErrInvalidAuthorizationUri = errors.New("invalid authorization uri")
)
