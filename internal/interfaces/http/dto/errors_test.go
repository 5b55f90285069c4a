package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"not found", ErrCodeNotFound, http.StatusNotFound},
		{"already exists", ErrCodeAlreadyExists, http.StatusConflict},
		{"unauthorized", ErrCodeUnauthorized, http.StatusUnauthorized},
		{"invalid credentials", ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", ErrCodeForbidden, http.StatusForbidden},
		{"deactivated account", ErrCodeAccountDeactivated, http.StatusForbidden},
		{"insufficient stock", ErrCodeInsufficientStock, http.StatusUnprocessableEntity},
		{"product unavailable", ErrCodeProductUnavailable, http.StatusUnprocessableEntity},
		{"invalid input", ErrCodeInvalidInput, http.StatusBadRequest},
		{"rate limited", ErrCodeRateLimited, http.StatusTooManyRequests},
		{"concurrency conflict", ErrCodeConcurrencyConflict, http.StatusConflict},
		{"internal", ErrCodeInternal, http.StatusInternalServerError},
		{"unknown code falls back to 500", "ERR_SOMETHING_NEW", http.StatusInternalServerError},
		{"empty code falls back to 500", "", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"domain not found", "NOT_FOUND", ErrCodeNotFound},
		{"product not found", "PRODUCT_NOT_FOUND", ErrCodeNotFound},
		{"email taken maps to already exists", "EMAIL_TAKEN", ErrCodeAlreadyExists},
		{"already seller maps to conflict", "ALREADY_SELLER", ErrCodeConflict},
		{"pending application maps to conflict", "APPLICATION_PENDING", ErrCodeConflict},
		{"not a seller maps to forbidden", "NOT_A_SELLER", ErrCodeForbidden},
		{"unapproved seller maps to forbidden", "SELLER_NOT_APPROVED", ErrCodeForbidden},
		{"insufficient stock", "INSUFFICIENT_STOCK", ErrCodeInsufficientStock},
		{"inactive product", "PRODUCT_INACTIVE", ErrCodeProductUnavailable},
		{"status transition maps to invalid state", "INVALID_STATUS_TRANSITION", ErrCodeInvalidState},
		{"empty checkout maps to business rule", "EMPTY_CHECKOUT", ErrCodeBusinessRule},
		{"invalid quantity maps to invalid input", "INVALID_QUANTITY", ErrCodeInvalidInput},
		{"hash error maps to internal", "PASSWORD_HASH_ERROR", ErrCodeInternal},
		{"already normalized passes through", ErrCodeNotFound, ErrCodeNotFound},
		{"unknown passes through", "SOME_CUSTOM_CODE", "SOME_CUSTOM_CODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.code))
		})
	}
}

func TestNormalizedCodesResolveToStatus(t *testing.T) {
	// Every domain code in the mapping must land on a wire code with a status.
	for domainCode, wireCode := range LegacyErrorCodeMapping {
		_, ok := ErrorCodeHTTPStatus[wireCode]
		assert.True(t, ok, "domain code %s maps to %s which has no HTTP status", domainCode, wireCode)
	}
}
