package helpers

import (
	"testing"
	"time"
)

func TestGetStringFromEnv(t *testing.T) {
	t.Setenv("TEST_RIS_BASE_URL", "https://example.invalid/v1")
	if got := GetStringFromEnv("TEST_RIS_BASE_URL", "fallback"); got != "https://example.invalid/v1" {
		t.Errorf("got %q", got)
	}
	if got := GetStringFromEnv("TEST_UNSET_VAR", "fallback"); got != "fallback" {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestGetIntFromEnv(t *testing.T) {
	t.Setenv("TEST_LIMIT", "25")
	if got := GetIntFromEnv("TEST_LIMIT", 10); got != 25 {
		t.Errorf("got %d, want 25", got)
	}

	t.Setenv("TEST_LIMIT_BAD", "viele")
	if got := GetIntFromEnv("TEST_LIMIT_BAD", 10); got != 10 {
		t.Errorf("got %d, want default 10 for invalid value", got)
	}
}

func TestGetBoolFromEnv(t *testing.T) {
	t.Setenv("TEST_DEBUG", "true")
	if !GetBoolFromEnv("TEST_DEBUG", false) {
		t.Error("got false, want true")
	}
	if GetBoolFromEnv("TEST_DEBUG_UNSET", false) {
		t.Error("got true, want default false")
	}
}

func TestGetDurationFromEnv(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "45s")
	if got := GetDurationFromEnv("TEST_TIMEOUT", 30*time.Second); got != 45*time.Second {
		t.Errorf("got %v, want 45s", got)
	}

	t.Setenv("TEST_TIMEOUT_BAD", "bald")
	if got := GetDurationFromEnv("TEST_TIMEOUT_BAD", 30*time.Second); got != 30*time.Second {
		t.Errorf("got %v, want default 30s for invalid value", got)
	}
}
