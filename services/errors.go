package services

import "errors"

// Sentinel errors; controllers map these to HTTP status codes.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account inactive")
	ErrInvalidQty         = errors.New("quantity must be positive")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrGateway            = errors.New("payment gateway error")
)
