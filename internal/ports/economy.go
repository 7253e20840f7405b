package ports

import "context"

// WalletUpdate is a single chip-currency change for a user.
type WalletUpdate struct {
	UserID   string
	Amount   int64
	Metadata map[string]interface{}
}

// EconomyPort manages the chip currency backing match settlements.
type EconomyPort interface {
	// GetBalance retrieves the current chip balance for a user.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// UpdateBalances applies the wallet changes produced by a round
	// settlement.
	UpdateBalances(ctx context.Context, updates []WalletUpdate) error
}
