package interfaces

import "github.com/sheikh-saqib/in-memory-ledger/internal/models"

// AccountStore holds account state keyed by address.
// Implementations are not required to be safe for concurrent use; the owner
// of the store serializes every call.
type AccountStore interface {
	Get(address string) (models.Account, bool)
	Put(account models.Account)
	All() []models.Account
	Len() int
}
