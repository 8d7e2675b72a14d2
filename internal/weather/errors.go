// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned when the location query is empty after trimming.
	ErrEmptyQuery = errors.New("location query must not be empty")
	// ErrLocationNotFound is returned when the provider cannot resolve the location (HTTP 400).
	ErrLocationNotFound = errors.New("location could not be resolved")
	// ErrBadCredentials is returned when the provider rejects the API key (HTTP 401).
	ErrBadCredentials = errors.New("provider rejected the API credentials")
	// ErrRateLimited is returned when the provider rate limit is exceeded (HTTP 429).
	ErrRateLimited = errors.New("provider rate limit exceeded")
)

// StatusError is returned for any other non-2xx provider response and carries
// the HTTP status code.
type StatusError struct {
	Code int
}

// Error satisfies the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("provider request failed with status code %d", e.Code)
}

// ClassifyStatus maps a provider HTTP status code to the error taxonomy. It
// returns nil for 2xx responses.
func ClassifyStatus(code int) error {
	switch {
	case code >= 200 && code <= 299:
		return nil
	case code == 400:
		return ErrLocationNotFound
	case code == 401:
		return ErrBadCredentials
	case code == 429:
		return ErrRateLimited
	default:
		return &StatusError{Code: code}
	}
}
