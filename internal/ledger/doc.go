// Package ledger holds named accounts with non-negative integer balances and
// moves funds between them atomically.
//
// A single mutex guards the whole account map. GetBalance, Transfer and the
// snapshot helpers each hold it for their full duration, so concurrent
// callers never observe a debit without its matching credit.
//
// Accounts are created on first receipt of funds and are never removed; a
// balance of zero is a valid resting state. An address with no entry has a
// balance of zero.
//
// sync.Mutex has no poisoned state. A panic while the lock is held is not
// recovered by this package and takes the process down.
package ledger
