package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sheikh-saqib/in-memory-ledger/internal/config"
	"github.com/sheikh-saqib/in-memory-ledger/internal/events/logevents"
	"github.com/sheikh-saqib/in-memory-ledger/internal/ledger"
	"github.com/sheikh-saqib/in-memory-ledger/internal/models"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		config.Exit("ledger-demo", err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		config.Exit("ledger-demo", err)
	}
}

type transferStep struct {
	to     string
	amount uint64
}

var demoTransfers = []transferStep{
	{to: "alice", amount: 500},
	{to: "bob", amount: 700},
}

func run(cfg config.Config, out io.Writer) error {
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.
		WithLevel(ptermLevel(cfg.SlogLevel())).
		WithWriter(out)))

	opts := []ledger.Option{
		ledger.WithLogger(logger),
		ledger.WithAccounts(models.Account{Address: cfg.SeedAddress, Balance: cfg.SeedBalance}),
	}
	if cfg.PublishEvents {
		opts = append(opts, ledger.WithPublisher(logevents.NewPublisher(logger).WithLevel(slog.LevelDebug)))
	}
	l := ledger.NewLedger(opts...)

	info := pterm.Info.WithWriter(out)
	success := pterm.Success.WithWriter(out)
	warning := pterm.Warning.WithWriter(out)

	info.Printfln("Initial balance of %s account: %d (%d accounts)", cfg.SeedAddress, l.GetBalance(cfg.SeedAddress), l.Len())

	for _, step := range demoTransfers {
		err := l.Transfer(cfg.SeedAddress, step.to, step.amount)
		switch {
		case err == nil:
			success.Printfln("Transferred %d from %s to %s", step.amount, cfg.SeedAddress, step.to)
		case errors.Is(err, ledger.ErrInsufficientBalance), errors.Is(err, ledger.ErrAccountNotFound):
			warning.Printfln("Transfer failed: %v", err)
		default:
			return fmt.Errorf("transfer to %s: %w", step.to, err)
		}
	}

	data := pterm.TableData{{"Address", "Balance"}}
	listed := make(map[string]bool)
	for _, account := range l.Accounts() {
		data = append(data, []string{account.Address, strconv.FormatUint(account.Balance, 10)})
		listed[account.Address] = true
	}
	// Receivers of failed transfers have no entry; show them at zero.
	for _, step := range demoTransfers {
		if !listed[step.to] {
			data = append(data, []string{step.to, "0"})
			listed[step.to] = true
		}
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(out).Render(); err != nil {
		return fmt.Errorf("render balances: %w", err)
	}

	info.Printfln("Total balance: %d", l.TotalBalance())
	return nil
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
