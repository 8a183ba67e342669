// Package helpers provides small utility functions shared across the
// project, mainly environment-based configuration lookup.
package helpers

import (
	"os"
	"strconv"
	"time"
)

// GetStringFromEnv returns the environment variable value or the default
// if the variable is unset or empty.
//
// Example:
//
//	baseURL := helpers.GetStringFromEnv("RIS_BASE_URL", ris.DefaultBaseURL)
//	level := helpers.GetStringFromEnv("LOG_LEVEL", "info")
func GetStringFromEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetIntFromEnv returns the environment variable value as int, or the
// default if the variable is unset, empty or not a valid integer.
//
// Example:
//
//	limit := helpers.GetIntFromEnv("RESULT_LIMIT", 10)
func GetIntFromEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetBoolFromEnv returns the environment variable value as bool, or the
// default if the variable is unset, empty or not a valid boolean.
//
// Example:
//
//	debug := helpers.GetBoolFromEnv("DEBUG", false)
func GetBoolFromEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetDurationFromEnv returns the environment variable value as duration,
// or the default if the variable is unset, empty or not a valid
// duration string.
//
// Example:
//
//	timeout := helpers.GetDurationFromEnv("RIS_TIMEOUT", 30*time.Second)
func GetDurationFromEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
