package chat

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrEmptyMessage rejects a text send with no content and no media.
var ErrEmptyMessage = errors.New("message has no content")

// Scheduler defers a callback. The production implementation uses
// time.AfterFunc; tests substitute one that advances virtual time so the
// staged delivery sequence can be asserted without wall-clock delays.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type timerScheduler struct{}

func (timerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// NewTimerScheduler returns the wall-clock scheduler.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

var defaultReplies = []string{
	"Just got your message, give me a minute.",
	"Copy that. I'll get back to you shortly.",
	"Received. Checking on it now.",
	"Good timing, I was about to ping you.",
}

// Engine converts a send intent into the staged sequence of store mutations
// that emulates a live backend: append as "sending", then sent, delivered,
// and finally a simulated counterpart reply that marks the original read.
// The typing indicator brackets the reply delay. Every deferred step
// re-resolves its target by (conversation id, message id) at fire time, so
// nothing breaks when the user navigates away mid-flight; stale ids are
// absorbed by the store's no-op semantics.
type Engine struct {
	store     *Store
	sched     Scheduler
	randIntn  func(n int) int
	now       func() time.Time
	delayUnit time.Duration
	replies   []string
	log       zerolog.Logger
}

type EngineOption func(*Engine)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) EngineOption {
	return func(e *Engine) { e.sched = s }
}

// WithRandom fixes the random source used to pick a group reply author.
func WithRandom(intn func(n int) int) EngineOption {
	return func(e *Engine) { e.randIntn = intn }
}

// WithClock replaces the display-timestamp clock.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithDelayUnit sets the base delay between delivery stages.
func WithDelayUnit(d time.Duration) EngineOption {
	return func(e *Engine) { e.delayUnit = d }
}

// WithReplies overrides the canned reply pool.
func WithReplies(replies []string) EngineOption {
	return func(e *Engine) {
		if len(replies) > 0 {
			e.replies = replies
		}
	}
}

func NewEngine(store *Store, logger zerolog.Logger, opts ...EngineOption) *Engine {
	e := &Engine{
		store:     store,
		sched:     timerScheduler{},
		randIntn:  rand.Intn,
		now:       time.Now,
		delayUnit: time.Second,
		replies:   defaultReplies,
		log:       logger.With().Str("component", "chat-engine").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SendRequest is a user's send intent. An empty ConversationID targets the
// store's active conversation. Type defaults to text.
type SendRequest struct {
	ConversationID string
	Content        string
	Type           MessageType
	MediaURL       string
	FileName       string
}

// Send validates the request, appends the message with status "sending" and
// schedules the delivery simulation. The returned message carries the id the
// store assigned. Validation failures change no state and schedule nothing.
func (e *Engine) Send(req SendRequest) (Message, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		active, ok := e.store.ActiveConversation()
		if !ok {
			return Message{}, ErrNoActiveConversation
		}
		conversationID = active
	}

	msgType := req.Type
	if msgType == "" {
		msgType = TypeText
	}
	if msgType == TypeText && strings.TrimSpace(req.Content) == "" && req.MediaURL == "" {
		return Message{}, ErrEmptyMessage
	}

	msg := Message{
		SenderID:  SentinelSenderID,
		Content:   req.Content,
		Timestamp: e.displayTime(),
		Status:    StatusSending,
		Type:      msgType,
		MediaURL:  req.MediaURL,
		FileName:  req.FileName,
	}

	appended, err := e.store.AppendMessage(conversationID, msg)
	if err != nil {
		return Message{}, err
	}

	e.store.SetTyping(conversationID, true)
	e.store.UpdatePreview(conversationID, previewText(appended), appended.Timestamp)

	e.log.Debug().
		Str("conversation_id", conversationID).
		Int64("message_id", appended.ID).
		Str("type", string(appended.Type)).
		Msg("message queued")

	// Staged delivery. The store enforces forward-only transitions, so the
	// stages tolerate scheduling jitter: if "delivered" fires before "sent"
	// ever ran, the late "sent" is dropped instead of rolling back.
	messageID := appended.ID
	e.sched.After(e.delayUnit, func() {
		e.store.MutateMessageStatus(conversationID, messageID, StatusSent)
	})
	e.sched.After(2*e.delayUnit, func() {
		e.store.MutateMessageStatus(conversationID, messageID, StatusDelivered)
	})
	e.sched.After(3*e.delayUnit, func() {
		e.simulateReply(conversationID, messageID)
	})

	return appended, nil
}

// simulateReply authors the counterpart's canned response: clear typing,
// append the reply as already delivered, then mark the original read.
func (e *Engine) simulateReply(conversationID string, originalID int64) {
	e.store.SetTyping(conversationID, false)

	convo, ok := e.store.Conversation(conversationID)
	if !ok || len(convo.Participants) == 0 {
		return
	}

	author := convo.Participants[0]
	if convo.IsGroup {
		author = convo.Participants[e.randIntn(len(convo.Participants))]
	}

	reply := Message{
		SenderID:  author.ID,
		Content:   e.replies[e.randIntn(len(e.replies))],
		Timestamp: e.displayTime(),
		Status:    StatusDelivered,
		Type:      TypeText,
	}

	appended, err := e.store.AppendMessage(conversationID, reply)
	if err != nil {
		e.log.Warn().Err(err).Str("conversation_id", conversationID).Msg("reply dropped")
		return
	}
	e.store.UpdatePreview(conversationID, appended.Content, appended.Timestamp)
	e.store.MutateMessageStatus(conversationID, originalID, StatusRead)

	e.log.Debug().
		Str("conversation_id", conversationID).
		Int64("reply_id", appended.ID).
		Int64("author_id", author.ID).
		Msg("simulated reply")
}

func (e *Engine) displayTime() string {
	return e.now().Format("15:04")
}

func previewText(m Message) string {
	if strings.TrimSpace(m.Content) != "" {
		return m.Content
	}
	if m.FileName != "" {
		return m.FileName
	}
	return string(m.Type)
}
