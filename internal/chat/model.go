package chat

// SentinelSenderID marks a message authored by the current viewing user.
// Every other sender id is expected to match a conversation participant.
const SentinelSenderID int64 = 0

// MessageStatus is the delivery state of a message. Statuses only move
// forward: sending < sent < delivered < read.
type MessageStatus string

const (
	StatusSending   MessageStatus = "sending"
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

var statusRank = map[MessageStatus]int{
	StatusSending:   0,
	StatusSent:      1,
	StatusDelivered: 2,
	StatusRead:      3,
}

// ValidStatus reports whether s is a known delivery status.
func ValidStatus(s MessageStatus) bool {
	_, ok := statusRank[s]
	return ok
}

// ValidStatusTransition reports whether a message may move from one status
// to another. Re-applying the same status is allowed, moving backward is not.
func ValidStatusTransition(from, to MessageStatus) bool {
	f, ok := statusRank[from]
	if !ok {
		return false
	}
	t, ok := statusRank[to]
	if !ok {
		return false
	}
	return t >= f
}

type MessageType string

const (
	TypeText     MessageType = "text"
	TypeImage    MessageType = "image"
	TypeVideo    MessageType = "video"
	TypeAudio    MessageType = "audio"
	TypeDocument MessageType = "document"
)

// User is a conversation participant.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	IsOnline bool   `json:"is_online"`
}

// Message ids are monotonically increasing per conversation and are NOT
// globally unique; always pair a message id with its conversation id.
type Message struct {
	ID        int64         `json:"id"`
	SenderID  int64         `json:"sender_id"`
	Content   string        `json:"content"`
	Timestamp string        `json:"timestamp"`
	Status    MessageStatus `json:"status"`
	Type      MessageType   `json:"type"`
	MediaURL  string        `json:"media_url,omitempty"`
	FileName  string        `json:"file_name,omitempty"`
}

// Conversation is a thread between the current user and one or more
// participants. For a direct conversation Participants holds exactly the
// counterpart; the viewing user is implicit and never listed.
type Conversation struct {
	ID              string `json:"id"`
	IsGroup         bool   `json:"is_group"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar"`
	Participants    []User `json:"participants"`
	LastMessage     string `json:"last_message"`
	LastMessageTime string `json:"last_message_time"`
	UnreadCount     int    `json:"unread_count"`
	Typing          bool   `json:"typing"`
}

// CurrentUser is the viewing identity, sourced from the identity collaborator.
type CurrentUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
}

// ResolveSender maps a message sender id to a participant of the
// conversation. It returns nil for the current-user sentinel. For a direct
// conversation the sole participant is returned regardless of the supplied
// id. For groups an unknown id also resolves to nil and callers render the
// message without sender details instead of failing.
func ResolveSender(c Conversation, senderID int64) *User {
	if senderID == SentinelSenderID {
		return nil
	}
	if !c.IsGroup {
		if len(c.Participants) == 0 {
			return nil
		}
		u := c.Participants[0]
		return &u
	}
	for _, p := range c.Participants {
		if p.ID == senderID {
			u := p
			return &u
		}
	}
	return nil
}

// NextMessageID returns the next id for an append to the given sequence:
// one past the largest existing id, or 1 for an empty sequence.
func NextMessageID(msgs []Message) int64 {
	var max int64
	for _, m := range msgs {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}
