package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		name string
		from MessageStatus
		to   MessageStatus
		want bool
	}{
		{"forward one step", StatusSending, StatusSent, true},
		{"forward across lattice", StatusSending, StatusRead, true},
		{"sent to delivered", StatusSent, StatusDelivered, true},
		{"same status idempotent", StatusDelivered, StatusDelivered, true},
		{"backward rejected", StatusRead, StatusDelivered, false},
		{"read back to sending", StatusRead, StatusSending, false},
		{"unknown from", MessageStatus("queued"), StatusSent, false},
		{"unknown to", StatusSent, MessageStatus("bounced"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidStatusTransition(tc.from, tc.to))
		})
	}
}

func TestNextMessageID(t *testing.T) {
	assert.Equal(t, int64(1), NextMessageID(nil))
	assert.Equal(t, int64(1), NextMessageID([]Message{}))

	msgs := []Message{{ID: 3}, {ID: 1}, {ID: 2}}
	got := NextMessageID(msgs)
	assert.Equal(t, int64(4), got)
	for _, m := range msgs {
		assert.Greater(t, got, m.ID)
	}
}

func TestResolveSender(t *testing.T) {
	aria := User{ID: 101, Name: "Aria Chen"}
	marcus := User{ID: 102, Name: "Marcus Wright"}

	direct := Conversation{ID: "d1", Participants: []User{aria}}
	group := Conversation{ID: "g1", IsGroup: true, Participants: []User{aria, marcus}}

	t.Run("sentinel is current user", func(t *testing.T) {
		assert.Nil(t, ResolveSender(direct, SentinelSenderID))
		assert.Nil(t, ResolveSender(group, SentinelSenderID))
	})

	t.Run("direct returns sole participant even on mismatched id", func(t *testing.T) {
		got := ResolveSender(direct, 999)
		require.NotNil(t, got)
		assert.Equal(t, aria.ID, got.ID)
	})

	t.Run("group matches by id", func(t *testing.T) {
		got := ResolveSender(group, marcus.ID)
		require.NotNil(t, got)
		assert.Equal(t, "Marcus Wright", got.Name)
	})

	t.Run("group unknown sender degrades to nil", func(t *testing.T) {
		assert.Nil(t, ResolveSender(group, 999))
	})

	t.Run("direct with no participants", func(t *testing.T) {
		assert.Nil(t, ResolveSender(Conversation{ID: "empty"}, 5))
	})
}
