package chat

import (
	"errors"
	"sync"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNoActiveConversation = errors.New("no active conversation")
)

// Store is the single source of truth for conversations and their message
// sequences within a session. Everything is memory-resident and resets when
// the process restarts. All mutation goes through the methods below so that
// readers always observe a consistent snapshot; deferred engine callbacks run
// on timer goroutines, hence the lock.
type Store struct {
	mu sync.RWMutex

	order    []string
	convos   map[string]*Conversation
	messages map[string][]Message
	active   string
}

// SeedProvider supplies the initial conversations and messages. The shipped
// implementation is static demo data; tests inject their own.
type SeedProvider interface {
	Conversations() []Conversation
	Messages() map[string][]Message
}

func NewStore(seed SeedProvider) *Store {
	s := &Store{
		convos:   make(map[string]*Conversation),
		messages: make(map[string][]Message),
	}
	if seed != nil {
		s.LoadInitial(seed.Conversations(), seed.Messages())
	}
	return s
}

// LoadInitial replaces the store contents wholesale. Used once at startup;
// calling it again with the same data is idempotent.
func (s *Store) LoadInitial(conversations []Conversation, messages map[string][]Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.convos = make(map[string]*Conversation, len(conversations))
	s.messages = make(map[string][]Message, len(messages))
	s.active = ""

	for _, c := range conversations {
		c := c
		c.Participants = append([]User(nil), c.Participants...)
		s.order = append(s.order, c.ID)
		s.convos[c.ID] = &c
	}
	for id, msgs := range messages {
		s.messages[id] = append([]Message(nil), msgs...)
	}
}

// SelectConversation sets the active conversation pointer. On an unknown id
// it reports ErrConversationNotFound and leaves the pointer unchanged.
func (s *Store) SelectConversation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.convos[id]; !ok {
		return ErrConversationNotFound
	}
	s.active = id
	return nil
}

// ActiveConversation returns the currently selected conversation id, if any.
func (s *Store) ActiveConversation() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.active != ""
}

// Conversations returns all conversations in load order.
func (s *Store) Conversations() []Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Conversation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, snapshotConversation(s.convos[id]))
	}
	return out
}

// Conversation returns a copy of one conversation.
func (s *Store) Conversation(id string) (Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.convos[id]
	if !ok {
		return Conversation{}, false
	}
	return snapshotConversation(c), true
}

// Messages returns the conversation's messages in insertion order. The order
// is authoritative for rendering; messages are never re-sorted by timestamp.
// An unknown or empty conversation yields an empty slice, never an error.
func (s *Store) Messages(conversationID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Message(nil), s.messages[conversationID]...)
}

// AppendMessage appends to the end of the conversation's sequence, assigning
// the next per-conversation id. Summary fields (last message preview, unread
// count) are deliberately not touched here; the lifecycle engine owns those.
func (s *Store) AppendMessage(conversationID string, m Message) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.convos[conversationID]; !ok {
		return Message{}, ErrConversationNotFound
	}
	m.ID = NextMessageID(s.messages[conversationID])
	s.messages[conversationID] = append(s.messages[conversationID], m)
	return m, nil
}

// MutateMessageStatus advances a message's delivery status. Missing
// conversations or message ids are silent no-ops: deferred effects may fire
// after the user has navigated away, and late arrivals must be absorbed, not
// raised. Backward transitions are likewise ignored.
func (s *Store) MutateMessageStatus(conversationID string, messageID int64, status MessageStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.messages[conversationID]
	for i := range msgs {
		if msgs[i].ID != messageID {
			continue
		}
		if ValidStatusTransition(msgs[i].Status, status) {
			msgs[i].Status = status
		}
		return
	}
}

// SetTyping flips the conversation's typing indicator. No effect on messages.
func (s *Store) SetTyping(conversationID string, typing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.convos[conversationID]; ok {
		c.Typing = typing
	}
}

// UpdatePreview sets the conversation's last-message summary fields.
func (s *Store) UpdatePreview(conversationID, text, displayTime string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.convos[conversationID]; ok {
		c.LastMessage = text
		c.LastMessageTime = displayTime
	}
}

func snapshotConversation(c *Conversation) Conversation {
	out := *c
	out.Participants = append([]User(nil), c.Participants...)
	return out
}
