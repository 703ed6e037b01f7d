package services

import "errors"

// Business-rule errors. Handlers map these onto HTTP statuses with errors.Is.
var (
	// ErrProductOrdered guards product deletion: a product referenced by any
	// order item must stay for the order history to remain meaningful.
	ErrProductOrdered = errors.New("product has been ordered before and cannot be deleted")
	// ErrCategoryInUse guards category deletion while products reference it.
	ErrCategoryInUse = errors.New("category is assigned to products and cannot be deleted")

	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidEntityKind    = errors.New("invalid entity kind")
	ErrInvalidMembership    = errors.New("invalid membership tier")
)
