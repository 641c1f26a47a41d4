package ingest

import "strings"

// WebhookPayload is the accepted admission shape from spec §6.1: a
// messages.upsert event from the chat transport.
type WebhookPayload struct {
	Event    string       `json:"event"`
	Instance string       `json:"instance"`
	Data     WebhookData  `json:"data"`
}

type WebhookData struct {
	Key              WebhookKey      `json:"key"`
	PushName         string          `json:"pushName,omitempty"`
	Message          WebhookMessage  `json:"message"`
	MessageTimestamp *int64          `json:"messageTimestamp,omitempty"`
}

type WebhookKey struct {
	ID          string `json:"id"`
	RemoteJID   string `json:"remoteJid"`
	FromMe      bool   `json:"fromMe"`
	Participant string `json:"participant,omitempty"`
}

type WebhookMessage struct {
	Conversation        string                     `json:"conversation,omitempty"`
	ExtendedTextMessage *WebhookExtendedTextMessage `json:"extendedTextMessage,omitempty"`
}

type WebhookExtendedTextMessage struct {
	Text string `json:"text"`
}

// Text returns the message body regardless of which shape carried it.
func (m WebhookMessage) Text() string {
	if m.Conversation != "" {
		return m.Conversation
	}
	if m.ExtendedTextMessage != nil {
		return m.ExtendedTextMessage.Text
	}
	return ""
}

// passesFilters implements the admission filter from spec §6.1: group
// message, not self-authored, non-empty text after trimming.
func (p WebhookPayload) passesFilters() bool {
	if p.Event != "messages.upsert" {
		return false
	}
	if !strings.HasSuffix(p.Data.Key.RemoteJID, "@g.us") {
		return false
	}
	if p.Data.Key.FromMe {
		return false
	}
	return strings.TrimSpace(p.Data.Message.Text()) != ""
}
