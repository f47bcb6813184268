// File: /utils/errors.go
package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned in the error_code field of problem responses.
const (
	CodeValidation             = "Request.Validation"
	CodeUnauthorized           = "Auth.Unauthorized"
	CodeInvalidCredentials     = "Auth.InvalidCredentials"
	CodeUserNotFound           = "User.NotFound"
	CodeEmailTaken             = "User.EmailTaken"
	CodeWrongPassword          = "User.WrongPassword"
	CodeVehicleNotFound        = "Vehicle.NotFound"
	CodeVehicleForbidden       = "Vehicle.Forbidden"
	CodeEnergyTypeExists       = "VehicleEnergyType.AlreadyExists"
	CodeEnergyTypeNotFound     = "VehicleEnergyType.NotFound"
	CodeEnergyTypeDeleteFailed = "VehicleEnergyType.DeleteFailed"
	CodeEntryNotFound          = "EnergyEntry.NotFound"
	CodeIncompatibleEnergyType = "EnergyEntry.IncompatibleEnergyType"
	CodeIncompatibleUnit       = "EnergyEntry.IncompatibleUnit"
	CodeInvalidMileage         = "EnergyEntry.InvalidMileage"
	CodeServiceNotFound        = "ServiceRecord.NotFound"
	CodeInsufficientData       = "TripEstimate.InsufficientData"
	CodeInternal               = "Internal.Unexpected"
)

// AppError is an error with an HTTP status and a stable error code.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code, so errors.Is(err, ErrVehicleNotFound) works on
// wrapped copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newAppError(status int, code, message string) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

var (
	ErrUnauthorized           = newAppError(http.StatusUnauthorized, CodeUnauthorized, "Authentication required")
	ErrInvalidCredentials     = newAppError(http.StatusUnauthorized, CodeInvalidCredentials, "Invalid credentials")
	ErrUserNotFound           = newAppError(http.StatusNotFound, CodeUserNotFound, "User not found")
	ErrEmailTaken             = newAppError(http.StatusConflict, CodeEmailTaken, "Email already registered")
	ErrWrongPassword          = newAppError(http.StatusUnauthorized, CodeWrongPassword, "Current password is incorrect")
	ErrVehicleNotFound        = newAppError(http.StatusNotFound, CodeVehicleNotFound, "Vehicle not found")
	ErrVehicleForbidden       = newAppError(http.StatusForbidden, CodeVehicleForbidden, "Vehicle belongs to another user")
	ErrEnergyTypeExists       = newAppError(http.StatusConflict, CodeEnergyTypeExists, "Energy type already declared on vehicle")
	ErrEnergyTypeNotFound     = newAppError(http.StatusNotFound, CodeEnergyTypeNotFound, "Energy type not declared on vehicle")
	ErrEnergyTypeDeleteFailed = newAppError(http.StatusConflict, CodeEnergyTypeDeleteFailed, "Energy type cannot be removed from vehicle")
	ErrEntryNotFound          = newAppError(http.StatusNotFound, CodeEntryNotFound, "Energy entry not found")
	ErrIncompatibleEnergyType = newAppError(http.StatusUnprocessableEntity, CodeIncompatibleEnergyType, "Energy type is not supported by vehicle")
	ErrIncompatibleUnit       = newAppError(http.StatusUnprocessableEntity, CodeIncompatibleUnit, "Unit is not valid for energy type")
	ErrInvalidMileage         = newAppError(http.StatusUnprocessableEntity, CodeInvalidMileage, "Mileage is inconsistent with surrounding entries")
	ErrServiceNotFound        = newAppError(http.StatusNotFound, CodeServiceNotFound, "Service record not found")
	ErrInsufficientData       = newAppError(http.StatusUnprocessableEntity, CodeInsufficientData, "Not enough entries to estimate consumption")
)

// WithMessage returns a copy of e carrying a more specific message.
func (e *AppError) WithMessage(format string, args ...interface{}) *AppError {
	return &AppError{Code: e.Code, Status: e.Status, Message: fmt.Sprintf(format, args...), Err: e.Err}
}

// NewValidationError creates a 400 validation error.
func NewValidationError(message string) *AppError {
	return newAppError(http.StatusBadRequest, CodeValidation, message)
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// AsAppError converts any error into an AppError, treating unknown errors as
// internal failures.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err)
}
