package chat

import (
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler queues callbacks and fires them when virtual time advances,
// in due order, so the staged delivery sequence is fully deterministic.
type fakeScheduler struct {
	now   time.Duration
	tasks []fakeTask
}

type fakeTask struct {
	due time.Duration
	seq int
	fn  func()
}

func (f *fakeScheduler) After(d time.Duration, fn func()) {
	f.tasks = append(f.tasks, fakeTask{due: f.now + d, seq: len(f.tasks), fn: fn})
}

func (f *fakeScheduler) Advance(d time.Duration) {
	f.now += d
	for {
		idx := -1
		for i, t := range f.tasks {
			if t.fn == nil || t.due > f.now {
				continue
			}
			if idx == -1 || t.due < f.tasks[idx].due ||
				(t.due == f.tasks[idx].due && t.seq < f.tasks[idx].seq) {
				idx = i
			}
		}
		if idx == -1 {
			return
		}
		fn := f.tasks[idx].fn
		f.tasks[idx].fn = nil
		fn()
	}
}

func (f *fakeScheduler) Pending() int {
	n := 0
	for _, t := range f.tasks {
		if t.fn != nil {
			n++
		}
	}
	return n
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 10, 45, 0, 0, time.UTC)
}

func newTestEngine(t *testing.T, opts ...EngineOption) (*Engine, *Store, *fakeScheduler) {
	t.Helper()
	store := NewStore(NewDemoSeed())
	sched := &fakeScheduler{}
	base := []EngineOption{
		WithScheduler(sched),
		WithClock(fixedClock),
		WithRandom(func(n int) int { return 0 }),
		WithDelayUnit(time.Second),
	}
	engine := NewEngine(store, zerolog.Nop(), append(base, opts...)...)
	return engine, store, sched
}

func TestEngine_RejectsEmptyTextSend(t *testing.T) {
	engine, store, sched := newTestEngine(t)
	require.NoError(t, store.SelectConversation("conv-1"))

	for _, content := range []string{"", "   ", "\t\n"} {
		_, err := engine.Send(SendRequest{Content: content})
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}

	assert.Len(t, store.Messages("conv-1"), 3)
	assert.Equal(t, 0, sched.Pending())
	c, _ := store.Conversation("conv-1")
	assert.False(t, c.Typing)
}

func TestEngine_RequiresTargetConversation(t *testing.T) {
	engine, _, sched := newTestEngine(t)

	_, err := engine.Send(SendRequest{Content: "hello"})
	assert.ErrorIs(t, err, ErrNoActiveConversation)
	assert.Equal(t, 0, sched.Pending())

	_, err = engine.Send(SendRequest{ConversationID: "conv-404", Content: "hello"})
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestEngine_MediaSendWithoutContent(t *testing.T) {
	engine, store, _ := newTestEngine(t)

	sent, err := engine.Send(SendRequest{
		ConversationID: "conv-2",
		Type:           TypeImage,
		MediaURL:       "http://localhost:8080/media/abc123.png",
		FileName:       "abc123.png",
	})
	require.NoError(t, err)
	assert.Equal(t, TypeImage, sent.Type)
	assert.Empty(t, sent.Content)

	c, _ := store.Conversation("conv-2")
	assert.Equal(t, "abc123.png", c.LastMessage)
}

// Direct-conversation send: the full staged lifecycle in order.
func TestEngine_SendLifecycle(t *testing.T) {
	engine, store, sched := newTestEngine(t)
	require.NoError(t, store.SelectConversation("conv-1"))

	sent, err := engine.Send(SendRequest{Content: "hello"})
	require.NoError(t, err)

	// Immediately observable: appended as 4th message, status sending.
	msgs := store.Messages("conv-1")
	require.Len(t, msgs, 4)
	assert.Equal(t, int64(4), sent.ID)
	assert.Equal(t, StatusSending, msgs[3].Status)
	assert.Equal(t, "hello", msgs[3].Content)
	assert.Equal(t, SentinelSenderID, msgs[3].SenderID)
	assert.Equal(t, "10:45", msgs[3].Timestamp)

	c, _ := store.Conversation("conv-1")
	assert.True(t, c.Typing)
	assert.Equal(t, "hello", c.LastMessage)

	sched.Advance(time.Second)
	assert.Equal(t, StatusSent, store.Messages("conv-1")[3].Status)

	sched.Advance(time.Second)
	assert.Equal(t, StatusDelivered, store.Messages("conv-1")[3].Status)

	sched.Advance(time.Second)
	msgs = store.Messages("conv-1")
	require.Len(t, msgs, 5)
	assert.Equal(t, StatusRead, msgs[3].Status)

	reply := msgs[4]
	assert.Equal(t, int64(101), reply.SenderID)
	assert.Equal(t, int64(5), reply.ID)
	assert.Equal(t, StatusDelivered, reply.Status)
	assert.Equal(t, TypeText, reply.Type)
	assert.NotEmpty(t, reply.Content)

	c, _ = store.Conversation("conv-1")
	assert.False(t, c.Typing)
	assert.Equal(t, reply.Content, c.LastMessage)
	assert.Equal(t, 0, sched.Pending())
}

// Group send: the reply author must be one of the participants.
func TestEngine_GroupReplyAuthor(t *testing.T) {
	engine, store, sched := newTestEngine(t, WithRandom(func(n int) int { return 1 % n }))

	_, err := engine.Send(SendRequest{ConversationID: "conv-5", Content: "status report?"})
	require.NoError(t, err)
	sched.Advance(3 * time.Second)

	convo, _ := store.Conversation("conv-5")
	require.Len(t, convo.Participants, 3)
	ids := make([]int64, 0, 3)
	for _, p := range convo.Participants {
		ids = append(ids, p.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	msgs := store.Messages("conv-5")
	reply := msgs[len(msgs)-1]
	assert.NotEqual(t, SentinelSenderID, reply.SenderID)
	assert.Contains(t, ids, reply.SenderID)
	// Fixed random source selects the second participant.
	assert.Equal(t, convo.Participants[1].ID, reply.SenderID)
}

// Switching conversations does not cancel in-flight effects; they complete
// against the store so returning to the thread shows the final state.
func TestEngine_EffectsSurviveConversationSwitch(t *testing.T) {
	engine, store, sched := newTestEngine(t)
	require.NoError(t, store.SelectConversation("conv-1"))

	sent, err := engine.Send(SendRequest{Content: "still there?"})
	require.NoError(t, err)

	require.NoError(t, store.SelectConversation("conv-2"))
	sched.Advance(3 * time.Second)

	msgs := store.Messages("conv-1")
	require.Len(t, msgs, 5)
	assert.Equal(t, StatusRead, msgs[3].Status)
	assert.Equal(t, sent.ID, msgs[3].ID)

	// The conversation the user switched to is untouched.
	assert.Len(t, store.Messages("conv-2"), 3)
}

// Rapid sends into different conversations: each deferred effect resolves
// its own (conversation, message) pair, so nothing clobbers.
func TestEngine_ConcurrentSendsAreIndependent(t *testing.T) {
	engine, store, sched := newTestEngine(t)

	a, err := engine.Send(SendRequest{ConversationID: "conv-1", Content: "ping one"})
	require.NoError(t, err)
	b, err := engine.Send(SendRequest{ConversationID: "conv-4", Content: "ping two"})
	require.NoError(t, err)

	sched.Advance(3 * time.Second)

	for conv, id := range map[string]int64{"conv-1": a.ID, "conv-4": b.ID} {
		var found bool
		for _, m := range store.Messages(conv) {
			if m.ID == id {
				found = true
				assert.Equal(t, StatusRead, m.Status, "conversation %s", conv)
			}
		}
		require.True(t, found, "conversation %s", conv)
		c, _ := store.Conversation(conv)
		assert.False(t, c.Typing)
	}
}

// A wholesale reload between send and the deferred effects: the stale message
// id no-ops and the simulation degrades without error.
func TestEngine_EffectsAbsorbReload(t *testing.T) {
	engine, store, sched := newTestEngine(t)

	_, err := engine.Send(SendRequest{ConversationID: "conv-1", Content: "about to vanish"})
	require.NoError(t, err)

	seed := NewDemoSeed()
	store.LoadInitial(seed.Conversations(), seed.Messages())
	sched.Advance(3 * time.Second)

	// Seed messages keep their statuses; the reply still lands because the
	// conversation id resolves again after the reload.
	msgs := store.Messages("conv-1")
	assert.Equal(t, StatusRead, msgs[0].Status)
	assert.Equal(t, StatusDelivered, msgs[2].Status)
}

// Delivery stages tolerate jitter: if "delivered" observably ran first, a
// late "sent" must not roll it back.
func TestEngine_StagesAreMonotonicUnderJitter(t *testing.T) {
	engine, store, sched := newTestEngine(t)

	sent, err := engine.Send(SendRequest{ConversationID: "conv-1", Content: "jittery"})
	require.NoError(t, err)

	store.MutateMessageStatus("conv-1", sent.ID, StatusDelivered)
	sched.Advance(time.Second) // the +1u "sent" stage fires late

	assert.Equal(t, StatusDelivered, store.Messages("conv-1")[3].Status)
}
