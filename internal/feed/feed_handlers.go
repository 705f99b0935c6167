package feed

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/feed", h.feed).Methods("GET")
	r.HandleFunc("/notifications", h.notifications).Methods("GET")
	r.HandleFunc("/calls", h.calls).Methods("GET")
}

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Posts())
}

func (h *Handler) notifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Notifications())
}

func (h *Handler) calls(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.CallHistory())
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}
