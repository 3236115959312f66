package domain

import "errors"

// Domain errors as sentinel values
var (
	// Generation errors
	ErrInvalidParams     = errors.New("invalid generation parameters")
	ErrGenerationAborted = errors.New("generation aborted")
	ErrEmptyPool         = errors.New("no parent identifiers to sample from")

	// Entity errors
	ErrInvalidID       = errors.New("identifier must be positive")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidStatus   = errors.New("product status must be 0 or 1")
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidQuantity = errors.New("quantity out of range")
	ErrCostAbovePrice  = errors.New("unit cost cannot exceed unit price")
	ErrUnroundedAmount = errors.New("amount has more than two decimals")
	ErrInvalidInvoice  = errors.New("invoice number out of range")
)
