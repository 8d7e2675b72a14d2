// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package i18n

import (
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("new localizer with explicit locale succeeds", func(t *testing.T) {
		localizer, err := New("de")
		if err != nil {
			t.Fatalf("failed to create localizer: %s", err)
		}
		if localizer == nil {
			t.Fatal("expected localizer to be non-nil")
		}
	})
	t.Run("unknown locale falls back to the source language", func(t *testing.T) {
		localizer, err := New("xx-YY")
		if err != nil {
			t.Fatalf("failed to create localizer: %s", err)
		}
		want := "something went wrong, please try again"
		if got := localizer.Get(want); got != want {
			t.Errorf("expected fallback message to be %q, got %q", want, got)
		}
	})
}
