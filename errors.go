// errors.go: structured errors for oblivio
//
// Errors are built with the go-errors library so every failure carries a
// stable code, a message and a context map.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package oblivio

import (
	goerrors "errors"
	"fmt"

	"github.com/agilira/go-errors"
)

// Error codes for oblivio
const (
	// Configuration errors
	ErrCodeInvalidConfig   errors.ErrorCode = "OBLIVIO_INVALID_CONFIG"
	ErrCodeInvalidCapacity errors.ErrorCode = "OBLIVIO_INVALID_CAPACITY"

	// Hot reload errors
	ErrCodeWatcherFailed errors.ErrorCode = "OBLIVIO_WATCHER_FAILED"

	// Internal errors
	ErrCodePanicRecovered errors.ErrorCode = "OBLIVIO_PANIC_RECOVERED"
)

const (
	msgInvalidConfig   = "invalid configuration"
	msgInvalidCapacity = "invalid capacity: must be greater than 0"
	msgWatcherFailed   = "failed to watch configuration file"
	msgPanicRecovered  = "panic recovered in cache callback"
)

// NewErrInvalidConfig creates an error for a configuration that cannot be used
func NewErrInvalidConfig(reason string) error {
	return errors.NewWithField(ErrCodeInvalidConfig, msgInvalidConfig, "reason", reason)
}

// NewErrInvalidCapacity creates an error for a non-positive capacity
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
		"minimum_required":  1,
	})
}

// NewErrWatcherFailed creates an error when the configuration watcher cannot be set up
func NewErrWatcherFailed(path string, cause error) error {
	return errors.Wrap(cause, ErrCodeWatcherFailed, msgWatcherFailed).
		WithContext("config_path", path).
		AsRetryable()
}

// NewErrPanicRecovered creates an error when a panic in a user callback is recovered
func NewErrPanicRecovered(operation string, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodePanicRecovered, msgPanicRecovered, map[string]interface{}{
		"operation":   operation,
		"panic_value": fmt.Sprintf("%v", panicValue),
	}).WithSeverity("critical")
}

// IsConfigError checks if error is a configuration error
func IsConfigError(err error) bool {
	code := GetErrorCode(err)
	return code == ErrCodeInvalidCapacity || code == ErrCodeInvalidConfig
}

// IsRetryable checks if the error can be retried
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var oblivioErr *errors.Error
	if goerrors.As(err, &oblivioErr) {
		return oblivioErr.Context
	}
	return nil
}
