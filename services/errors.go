package services

import "errors"

// Sentinel errors the controllers map to HTTP status codes. The messages are
// part of the API contract: frontend code pattern-matches on them.
var (
	ErrFoodNotFound       = errors.New("food not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrDuplicateReference = errors.New("payment reference already used")
)
