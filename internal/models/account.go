package models

// Account represents a single balance holder in the ledger
type Account struct {
	Address string `json:"address"` // unique identifier, opaque to the ledger
	Balance uint64 `json:"balance"` // unit-less count, never negative
}
