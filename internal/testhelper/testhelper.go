// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package testhelper provides shared helpers for the wxpeek test suites.
package testhelper

import (
	"net/http"
)

// MockRoundTripper is a http.RoundTripper that delegates to a user-provided function,
// allowing tests to serve canned responses without a network connection.
type MockRoundTripper struct {
	Fn func(req *http.Request) (*http.Response, error)
}

// RoundTrip satisfies the http.RoundTripper interface.
func (m MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Fn(req)
}
