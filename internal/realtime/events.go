package realtime

import "encoding/json"

// Action is an outbound realtime action. The set is closed; the server
// ignores anything else.
type Action string

const (
	ActionJoin         Action = "join"
	ActionSendMessage  Action = "send-message"
	ActionTyping       Action = "typing"
	ActionStopTyping   Action = "stop-typing"
	ActionReadReceipt  Action = "read-receipt"
	ActionCallUser     Action = "call-user"
	ActionAcceptCall   Action = "accept-call"
	ActionRejectCall   Action = "reject-call"
	ActionIceCandidate Action = "ice-candidate"
	ActionEndCall      Action = "end-call"
)

// Event is an inbound realtime event kind.
type Event string

const (
	EventReceiveMessage Event = "receive-message"
	EventMessageSent    Event = "message-sent"
	EventMessageError   Event = "message-error"
	EventTyping         Event = "typing"
	EventStopTyping     Event = "stop-typing"
	EventMessageRead    Event = "message-read"
	EventUserOnline     Event = "user-online"
	EventUserOffline    Event = "user-offline"
	EventIncomingCall   Event = "incoming-call"
	EventCallAccepted   Event = "call-accepted"
	EventCallRejected   Event = "call-rejected"
	EventIceCandidate   Event = "ice-candidate"
	EventCallEnded      Event = "call-ended"
)

// frame is the wire format: one JSON object per websocket text message.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ChatMessage is the payload of send-message and receive-message.
type ChatMessage struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Body       string `json:"body"`
}

// TypingNotice is the payload of typing and stop-typing.
type TypingNotice struct {
	ReceiverID string `json:"receiverId"`
}

// ReadReceipt acknowledges a message back to its sender.
type ReadReceipt struct {
	MessageID string `json:"messageId"`
	SenderID  string `json:"senderId"`
}

// CallSignal carries call-signaling payloads (offer, answer, candidates).
// Signal is opaque to the client; it is relayed verbatim between peers.
type CallSignal struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Signal json.RawMessage `json:"signal,omitempty"`
}
