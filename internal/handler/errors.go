package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrInvalidRequestBody indicates that the request body could not be parsed.
var ErrInvalidRequestBody = fiber.NewError(fiber.StatusBadRequest, "invalid request body")

// ErrAmountRequired is returned when the amount parameter is missing.
var ErrAmountRequired = fiber.NewError(fiber.StatusBadRequest, "amount is required")

// ErrInvalidAmountBadRequest maps a non-numeric or non-positive amount to a
// 400 error.
var ErrInvalidAmountBadRequest = fiber.NewError(fiber.StatusBadRequest, "amount must be a positive decimal")

// ErrSameTokenBadRequest maps a same-token validation failure to a 400 error.
var ErrSameTokenBadRequest = fiber.NewError(fiber.StatusBadRequest, "from and to tokens cannot be the same")

// ErrUnknownTokenBadRequest maps an unregistered token ID to a 400 error.
var ErrUnknownTokenBadRequest = fiber.NewError(fiber.StatusBadRequest, "unknown token")

// ErrPoolUnavailableBadRequest maps a missing or drained pool to a 400 error.
var ErrPoolUnavailableBadRequest = fiber.NewError(fiber.StatusBadRequest, "no pool available for pair")

// ErrSessionNotFound maps an unknown or expired swap session to a 404 error.
var ErrSessionNotFound = fiber.NewError(fiber.StatusNotFound, "session not found")

// ErrRegistryUnavailable signals that the token catalog cannot be served.
var ErrRegistryUnavailable = fiber.NewError(fiber.StatusServiceUnavailable, "token registry unavailable")

// ErrQuoteFailedInternal signals a generic server-side quoting error.
var ErrQuoteFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "quote failed")

// NewTokenRequired returns a 400 Bad Request for a missing token field.
func NewTokenRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" token is required")
}
