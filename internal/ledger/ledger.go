package ledger

import (
	"fmt"
	"log/slog"
	"math/bits"
	"sync"
	"time"

	"github.com/google/uuid"
	interfaces "github.com/sheikh-saqib/in-memory-ledger/internal/interfaces"
	"github.com/sheikh-saqib/in-memory-ledger/internal/models"
	"github.com/sheikh-saqib/in-memory-ledger/internal/models/events"
	"github.com/sheikh-saqib/in-memory-ledger/internal/storage/memory"
)

const (
	// DefaultAddress is the account seeded when no accounts are supplied.
	DefaultAddress = "default"
	// DefaultBalance is the starting balance of DefaultAddress.
	DefaultBalance uint64 = 1000
)

// Ledger owns the account map and the mutex that guards it.
// The store is never handed out; every access goes through the methods below.
type Ledger struct {
	mu        sync.Mutex
	store     interfaces.AccountStore
	publisher interfaces.EventPublisher // optional, nil disables events
	logger    *slog.Logger
	seed      []models.Account
}

// NewLedger creates a ready-to-use Ledger.
// Without options it holds a single account, DefaultAddress, with DefaultBalance.
//
// Transfers conserve the total balance, so it must fit in a uint64 from the
// start. NewLedger panics if the seeded balances sum past math.MaxUint64.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		store:  memory.NewMemoryAccountStore(),
		logger: slog.Default(),
		seed:   []models.Account{{Address: DefaultAddress, Balance: DefaultBalance}},
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, account := range l.seed {
		if account.Balance == 0 {
			continue
		}
		l.store.Put(account)
	}
	l.seed = nil

	if _, err := sumBalances(l.store.All()); err != nil {
		panic(fmt.Sprintf("ledger: seed accounts: %v", err))
	}

	return l
}

func sumBalances(accounts []models.Account) (uint64, error) {
	var total, carry uint64
	for _, account := range accounts {
		total, carry = bits.Add64(total, account.Balance, 0)
		if carry != 0 {
			return 0, fmt.Errorf("total balance overflows uint64 at %q", account.Address)
		}
	}
	return total, nil
}

// GetBalance returns the balance held by address, or 0 if it has no entry.
func (l *Ledger) GetBalance(address string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.store.Get(address)
	if !ok {
		return 0
	}
	return account.Balance
}

// Transfer moves amount from one address to another.
// The sender must exist and hold at least amount; the receiver is created if
// it has no entry yet. On error nothing is changed.
func (l *Ledger) Transfer(from, to string, amount uint64) error {
	if err := l.transfer(from, to, amount); err != nil {
		return err
	}

	l.publish(from, to, amount)
	return nil
}

func (l *Ledger) transfer(from, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	sender, ok := l.store.Get(from)
	if !ok {
		return fmt.Errorf("transfer %d from %q to %q: %w", amount, from, to, ErrAccountNotFound)
	}
	if sender.Balance < amount {
		return fmt.Errorf("transfer %d from %q to %q: balance %d: %w", amount, from, to, sender.Balance, ErrInsufficientBalance)
	}

	sender.Balance -= amount
	l.store.Put(sender)

	// Read the receiver after the debit is stored so a self-transfer credits
	// the debited record back.
	receiver, ok := l.store.Get(to)
	if !ok {
		receiver = models.Account{Address: to}
	}
	receiver.Balance += amount
	l.store.Put(receiver)

	return nil
}

// publish must be called without l.mu held.
func (l *Ledger) publish(from, to string, amount uint64) {
	if l.publisher == nil {
		return
	}

	event := events.TransferCompleted{
		TransferID: uuid.NewString(),
		From:       from,
		To:         to,
		Amount:     amount,
		OccurredAt: time.Now().UTC(),
	}
	if err := l.publisher.Publish(events.TopicTransferCompleted, event); err != nil {
		l.logger.Warn("publish transfer event failed",
			"transfer_id", event.TransferID,
			"topic", events.TopicTransferCompleted,
			"error", err,
		)
	}
}

// Accounts returns a consistent snapshot of every account, sorted by address.
func (l *Ledger) Accounts() []models.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store.All()
}

// TotalBalance sums the balance of every account.
func (l *Ledger) TotalBalance() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	// NewLedger rejected any seed that could overflow and transfers conserve the sum.
	total, _ := sumBalances(l.store.All())
	return total
}

// Len returns the number of accounts holding an entry, including those at zero.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store.Len()
}
