package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Sale errors
	ErrSaleNotFound         = errors.New("sale not found")
	ErrSaleValidationFailed = errors.New("sale validation failed")

	// Collaborator errors
	ErrPurchasableNotFound = errors.New("purchasable not found")
	ErrOrderNotFound       = errors.New("order not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
