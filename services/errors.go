package services

import "errors"

// Domain errors surfaced to the transport layer. NotFound-family errors map
// to 404, ErrSelectionLocked to 403. Anything else during a multi-step write
// rolls the transaction back and surfaces as a 500.
var (
	ErrSubscriptionNotFound      = errors.New("subscription not found")
	ErrSelectionNotFound         = errors.New("box selection not found")
	ErrNoActiveConfiguration     = errors.New("no box configuration available for this week")
	ErrConfigurationItemNotFound = errors.New("box configuration item not found")

	// ErrSelectionLocked rejects any mutation of a locked selection.
	ErrSelectionLocked = errors.New("box selection is locked and cannot be edited")

	// ErrInsufficientQuantity rejects a reservation that would push an item's
	// allocated quantity past its available quantity.
	ErrInsufficientQuantity = errors.New("insufficient quantity available")
)
