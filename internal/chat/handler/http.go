package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"cosmolink/internal/chat"
)

// ChatHandler exposes the conversation store and lifecycle engine over HTTP.
type ChatHandler struct {
	store  *chat.Store
	engine *chat.Engine
	log    zerolog.Logger
}

func NewChatHandler(store *chat.Store, engine *chat.Engine, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		store:  store,
		engine: engine,
		log:    logger.With().Str("component", "chat-handler").Logger(),
	}
}

func (h *ChatHandler) Register(r *mux.Router) {
	r.HandleFunc("/conversations", h.listConversations).Methods("GET")
	r.HandleFunc("/conversations/{id}/select", h.selectConversation).Methods("POST")
	r.HandleFunc("/conversations/{id}/messages", h.listMessages).Methods("GET")
	r.HandleFunc("/conversations/{id}/messages", h.sendMessage).Methods("POST")
}

func (h *ChatHandler) listConversations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Conversations())
}

func (h *ChatHandler) selectConversation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.SelectConversation(id); err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"active": id})
}

// messageView decorates a message with its resolved sender. Sender is null
// for the current user and for unknown group senders; clients render those
// without a name or avatar.
type messageView struct {
	chat.Message
	Sender *chat.User `json:"sender"`
}

func (h *ChatHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	convo, ok := h.store.Conversation(id)
	if !ok {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	msgs := h.store.Messages(id)
	views := make([]messageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, messageView{
			Message: m,
			Sender:  chat.ResolveSender(convo, m.SenderID),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

type sendMessageRequest struct {
	Content  string `json:"content"`
	Type     string `json:"type"`
	MediaURL string `json:"media_url"`
	FileName string `json:"file_name"`
}

func (h *ChatHandler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sent, err := h.engine.Send(chat.SendRequest{
		ConversationID: mux.Vars(r)["id"],
		Content:        req.Content,
		Type:           chat.MessageType(req.Type),
		MediaURL:       req.MediaURL,
		FileName:       req.FileName,
	})
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, "message has no content")
		return
	case errors.Is(err, chat.ErrConversationNotFound):
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	case err != nil:
		h.log.Error().Err(err).Msg("send failed")
		writeError(w, http.StatusInternalServerError, "send failed")
		return
	}

	writeJSON(w, http.StatusCreated, sent)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
