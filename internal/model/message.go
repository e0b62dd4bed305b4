package model

import "time"

type (
	// Message is a pending encrypted payload held by the relay until the
	// recipient fetches it. Encrypted is opaque to the relay.
	Message struct {
		ID        int64     `json:"id"`
		Sender    string    `json:"sender"`
		Recipient string    `json:"recipient"`
		Encrypted string    `json:"encrypted"`
		Timestamp time.Time `json:"timestamp"`
	}
)
