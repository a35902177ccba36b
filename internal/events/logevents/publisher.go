package logevents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	interfaces "github.com/sheikh-saqib/in-memory-ledger/internal/interfaces"
)

// Publisher writes every event as a structured log record.
type Publisher struct {
	logger *slog.Logger
	level  slog.Level
}

func NewPublisher(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		logger: logger,
		level:  slog.LevelInfo,
	}
}

// WithLevel returns a copy of p that logs at level.
func (p *Publisher) WithLevel(level slog.Level) *Publisher {
	cp := *p
	cp.level = level
	return &cp
}

// Publish flattens event to its JSON fields and logs them under the topic.
func (p *Publisher) Publish(topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", topic, err)
	}

	// UseNumber keeps uint64 amounts exact instead of rounding through float64.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		// not an object; log the raw payload
		p.logger.Log(context.Background(), p.level, "event", "topic", topic, "payload", string(data))
		return nil
	}

	attrs := make([]any, 0, 2+2*len(fields))
	attrs = append(attrs, "topic", topic)
	for key, value := range fields {
		attrs = append(attrs, key, value)
	}
	p.logger.Log(context.Background(), p.level, "event", attrs...)
	return nil
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
