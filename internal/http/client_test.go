// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package http

import (
	"errors"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/mveen/wxpeek/internal/logger"
	"github.com/mveen/wxpeek/internal/testhelper"
)

type testType struct {
	String string  `json:"string"`
	Int    int     `json:"int"`
	Float  float64 `json:"float"`
	Bool   bool    `json:"bool"`
}

const testFile = "../../testdata/testtype.json"

func TestNew(t *testing.T) {
	client := New(logger.New(slog.LevelInfo))
	if client == nil {
		t.Fatal("expected client to be non-nil")
	}
}

func TestClient_Get(t *testing.T) {
	t.Run("getting and serializing JSON should work", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			data, err := os.Open(testFile)
			if err != nil {
				t.Fatalf("failed to open JSON response file: %s", err)
			}

			return &stdhttp.Response{
				StatusCode: 200,
				Body:       data,
				Header:     make(stdhttp.Header),
			}, nil
		}

		client := New(logger.New(slog.LevelInfo))
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}
		query := url.Values{}
		query.Add("key", "value")
		headers := make(map[string]string)
		headers["X-Custom-Header"] = "custom-value"

		target := new(testType)
		response, err := client.Get(t.Context(), "https://example.com", target, query, headers)
		if err != nil {
			t.Fatalf("failed to get JSON response: %s", err)
		}

		if response != 200 {
			t.Errorf("expected status code 200, got %d", response)
		}
		if target.String != "test" {
			t.Errorf("expected target string to be 'test', got %s", target.String)
		}
		if target.Int != 123 {
			t.Errorf("expected target int to be 123, got %d", target.Int)
		}
		if target.Float != 123.456 {
			t.Errorf("expected target float to be 123.456, got %f", target.Float)
		}
		if !target.Bool {
			t.Error("expected target bool to be true")
		}
	})
	t.Run("get with non-pointer target fails", func(t *testing.T) {
		client := New(logger.New(slog.LevelInfo))
		_, err := client.Get(t.Context(), "https://example.com", testType{}, nil, nil)
		if !errors.Is(err, ErrNonPointerTarget) {
			t.Errorf("expected error to be %q, got %q", ErrNonPointerTarget, err)
		}
	})
	t.Run("non-2xx response returns the status code without decoding", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return &stdhttp.Response{
				StatusCode: 429,
				Body:       io.NopCloser(strings.NewReader("Too many requests")),
				Header:     make(stdhttp.Header),
			}, nil
		}

		client := New(logger.New(slog.LevelInfo))
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}
		target := new(testType)
		response, err := client.Get(t.Context(), "https://example.com", target, nil, nil)
		if err != nil {
			t.Fatalf("expected non-2xx response to not fail, got: %s", err)
		}
		if response != 429 {
			t.Errorf("expected status code 429, got %d", response)
		}
		if target.String != "" {
			t.Errorf("expected target to be untouched, got %+v", target)
		}
	})
	t.Run("transport errors are wrapped and returned", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return nil, errors.New("connection refused")
		}

		client := New(logger.New(slog.LevelInfo))
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}
		target := new(testType)
		if _, err := client.Get(t.Context(), "https://example.com", target, nil, nil); err == nil {
			t.Error("expected transport error to be returned")
		}
	})
}
