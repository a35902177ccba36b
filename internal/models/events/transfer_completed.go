package events

import "time"

// TopicTransferCompleted is the topic TransferCompleted events are published on.
const TopicTransferCompleted = "transfer_completed"

type TransferCompleted struct {
	TransferID string    `json:"transfer_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Amount     uint64    `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
