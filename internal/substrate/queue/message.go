package queue

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message is the job message exchanged over the broker.
type Message struct {
	EntityID   int64  `json:"entity_id"`
	CollectUID string `json:"collect_uid"`
}

var errEmptyCollectUID = errors.New("collect_uid is empty")

// DecodeMessage parses a job message body.
func DecodeMessage(body []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return msg, fmt.Errorf("decode job message: %w", err)
	}
	if msg.CollectUID == "" {
		return msg, errEmptyCollectUID
	}
	return msg, nil
}

// Encode serializes the message.
func (m Message) Encode() ([]byte, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode job message: %w", err)
	}
	return body, nil
}
