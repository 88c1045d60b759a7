// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"reflect"
	"testing"
)

func TestNewWhitelist_Parsing(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple", "a@example.com,b@example.com", []string{"a@example.com", "b@example.com"}},
		{"whitespace and case", "  A@Example.COM , b@example.com ", []string{"a@example.com", "b@example.com"}},
		{"trailing comma", "a@example.com,", []string{"a@example.com"}},
		{"empty entries", ",,a@example.com,,", []string{"a@example.com"}},
		{"empty string", "", nil},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWhitelist(tt.raw)
			got := w.Emails()
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Emails() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAllowed(t *testing.T) {
	w := NewWhitelist("Admin@Example.com")

	tests := []struct {
		email string
		want  bool
	}{
		{"admin@example.com", true},
		{"ADMIN@EXAMPLE.COM", true},
		{"  admin@example.com  ", true},
		{"other@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := w.IsAllowed(tt.email); got != tt.want {
			t.Errorf("IsAllowed(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsAllowed_EmptyWhitelistDeniesEveryone(t *testing.T) {
	w := NewWhitelist("")
	if w.IsAllowed("anyone@example.com") {
		t.Error("empty whitelist must deny, never allow")
	}
	if w.Size() != 0 {
		t.Errorf("Size() = %d, want 0", w.Size())
	}
}
