// Package domain contains core concepts of the assistant.
// This file defines inbound messages and outbound replies.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// InboundMessage is one user turn received from the messaging channel.
// MediaURL is empty for text-only turns.
type InboundMessage struct {
	ID        uuid.UUID
	Sender    string
	Body      string
	MediaURL  string
	MediaType string
	At        time.Time
}

// HasImage reports whether the turn carries an image attachment.
func (m InboundMessage) HasImage() bool {
	return m.MediaURL != "" && len(m.MediaType) >= 6 && m.MediaType[:6] == "image/"
}

// Reply is a finalized outbound text bound for one destination.
// It is ephemeral and owned by the caller of the delivery pipeline.
type Reply struct {
	Destination string
	Text        string
}
