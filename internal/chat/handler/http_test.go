package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmolink/internal/chat"
)

type noopScheduler struct{}

func (noopScheduler) After(time.Duration, func()) {}

func newTestRouter(t *testing.T) (*mux.Router, *chat.Store) {
	t.Helper()
	store := chat.NewStore(chat.NewDemoSeed())
	engine := chat.NewEngine(store, zerolog.Nop(), chat.WithScheduler(noopScheduler{}))
	router := mux.NewRouter()
	NewChatHandler(store, engine, zerolog.Nop()).Register(router)
	return router, store
}

func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListConversations(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/conversations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var convos []chat.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &convos))
	assert.Len(t, convos, 6)
	assert.Equal(t, "conv-1", convos[0].ID)
}

func TestSelectConversation(t *testing.T) {
	router, store := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/conversations/conv-3/select", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	active, ok := store.ActiveConversation()
	require.True(t, ok)
	assert.Equal(t, "conv-3", active)

	rec = doRequest(router, http.MethodPost, "/conversations/conv-404/select", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	active, _ = store.ActiveConversation()
	assert.Equal(t, "conv-3", active)
}

func TestListMessages(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/conversations/conv-1/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []struct {
		chat.Message
		Sender *chat.User `json:"sender"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 3)

	// Counterpart messages resolve their sender, own messages do not.
	require.NotNil(t, views[0].Sender)
	assert.Equal(t, "Aria Chen", views[0].Sender.Name)
	assert.Nil(t, views[1].Sender)

	rec = doRequest(router, http.MethodGet, "/conversations/conv-404/messages", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendMessage(t *testing.T) {
	router, store := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/conversations/conv-1/messages",
		`{"content":"hello there"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var sent chat.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sent))
	assert.Equal(t, int64(4), sent.ID)
	assert.Equal(t, chat.StatusSending, sent.Status)
	assert.Len(t, store.Messages("conv-1"), 4)
}

func TestSendMessageValidation(t *testing.T) {
	router, store := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/conversations/conv-1/messages",
		`{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, store.Messages("conv-1"), 3)

	rec = doRequest(router, http.MethodPost, "/conversations/conv-404/messages",
		`{"content":"hello"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodPost, "/conversations/conv-1/messages",
		`not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
