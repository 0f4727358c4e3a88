package models

import (
	"encoding/json"
	"time"
)

// StreamMessage is one frame pushed to live viewers
type StreamMessage struct {
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data"`
	SentAt time.Time       `json:"sent_at"`
}
