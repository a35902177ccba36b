package memory

import (
	"slices"
	"strings"

	interfaces "github.com/sheikh-saqib/in-memory-ledger/internal/interfaces" // interface AccountStore
	"github.com/sheikh-saqib/in-memory-ledger/internal/models"                // domain models: Account
)

// MemoryAccountStore is an in-memory implementation of interfaces.AccountStore.
// It has no locking of its own; the owning ledger serializes every call.
type MemoryAccountStore struct {
	accounts map[string]models.Account // address -> account
}

// NewMemoryAccountStore creates and returns an empty MemoryAccountStore
func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		accounts: make(map[string]models.Account),
	}
}

// Get returns the account stored under address, and whether it exists.
func (m *MemoryAccountStore) Get(address string) (models.Account, bool) {
	account, ok := m.accounts[address]
	return account, ok
}

// Put inserts or replaces the account keyed by its address.
func (m *MemoryAccountStore) Put(account models.Account) {
	m.accounts[account.Address] = account
}

// All returns a copy of every stored account, sorted by address.
// The copy keeps external code from touching the internal map.
func (m *MemoryAccountStore) All() []models.Account {
	copied := make([]models.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		copied = append(copied, account)
	}
	slices.SortFunc(copied, func(a, b models.Account) int {
		return strings.Compare(a.Address, b.Address)
	})
	return copied
}

func (m *MemoryAccountStore) Len() int {
	return len(m.accounts)
}

// Compile-time check: ensure MemoryAccountStore implements AccountStore interface
var _ interfaces.AccountStore = (*MemoryAccountStore)(nil)
