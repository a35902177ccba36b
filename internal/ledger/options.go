package ledger

import (
	"log/slog"

	interfaces "github.com/sheikh-saqib/in-memory-ledger/internal/interfaces"
	"github.com/sheikh-saqib/in-memory-ledger/internal/models"
)

// Option configures a Ledger at construction time.
type Option func(*Ledger)

// WithAccounts replaces the default seed with the given accounts.
// Accounts with a zero balance are skipped and a repeated address keeps the
// last balance given for it.
func WithAccounts(accounts ...models.Account) Option {
	return func(l *Ledger) {
		l.seed = accounts
	}
}

// WithStore keeps accounts in store instead of a fresh in-memory map.
// The ledger's mutex guards every call, so store needs no locking of its own.
// Seed accounts are written into store on construction.
func WithStore(store interfaces.AccountStore) Option {
	return func(l *Ledger) {
		if store != nil {
			l.store = store
		}
	}
}

// WithPublisher sends a TransferCompleted event to p after every successful transfer.
func WithPublisher(p interfaces.EventPublisher) Option {
	return func(l *Ledger) {
		l.publisher = p
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}
