package service

import (
	"errors"
	"fmt"
)

// ErrorCode classifies domain failures for callers and the HTTP layer.
type ErrorCode string

const (
	// CodeInsufficientDishes means the catalog cannot satisfy a generation request.
	CodeInsufficientDishes ErrorCode = "INSUFFICIENT_DISHES"
	// CodeValidation means the request shape is malformed.
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	// CodeInvalidData means the request is well formed but semantically invalid.
	CodeInvalidData ErrorCode = "INVALID_DATA"
	// CodeNotFound means a referenced menu, item, dish or list does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeConflict means the request conflicts with the current state.
	CodeConflict ErrorCode = "CONFLICT"
)

// DomainError is returned by services for failures the caller can act on.
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

// Is matches any DomainError carrying the same code, so the sentinels below
// work with errors.Is regardless of message.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

var (
	// ErrInsufficientDishes matches every CodeInsufficientDishes error.
	ErrInsufficientDishes = &DomainError{Code: CodeInsufficientDishes}
	// ErrValidation matches every CodeValidation error.
	ErrValidation = &DomainError{Code: CodeValidation}
	// ErrInvalidData matches every CodeInvalidData error.
	ErrInvalidData = &DomainError{Code: CodeInvalidData}
	// ErrNotFound matches every CodeNotFound error.
	ErrNotFound = &DomainError{Code: CodeNotFound}
	// ErrConflict matches every CodeConflict error.
	ErrConflict = &DomainError{Code: CodeConflict}
)

const (
	msgRequiredDishUnavailable = "Required dish is not available"
	msgRequiredIngredients     = "Unable to satisfy required ingredients"
	msgNotEnoughSlots          = "Not enough slots for required dishes"
	msgRequiredNotPlaced       = "Failed to place required dishes"
	msgLockedExceedSlots       = "Locked items exceed requested slots"
	msgNoSlotsRequested        = "totalSlots must request at least one slot"
	msgMenuNotFound            = "Menu not found"
	msgMenuItemNotFound        = "Menu item not found"
	msgShoppingListNotFound    = "Shopping list not found"
	msgShoppingItemNotFound    = "Shopping list item not found"
	msgDishNotFound            = "Dish not found"
	msgStatusUnchanged         = "Menu already has this status"
)

func newDomainError(code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg}
}

func insufficientDishes(msg string) error { return newDomainError(CodeInsufficientDishes, msg) }

func validationError(format string, args ...interface{}) error {
	return newDomainError(CodeValidation, fmt.Sprintf(format, args...))
}

func invalidData(format string, args ...interface{}) error {
	return newDomainError(CodeInvalidData, fmt.Sprintf(format, args...))
}

func notFound(msg string) error { return newDomainError(CodeNotFound, msg) }

func conflict(msg string) error { return newDomainError(CodeConflict, msg) }
