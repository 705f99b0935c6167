package profile

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"cosmolink/internal/identity"
)

// Handler exposes the profile endpoints. All of them require a session.
type Handler struct {
	adapter *Adapter
	auth    *identity.Service
	log     zerolog.Logger
}

func NewHandler(adapter *Adapter, auth *identity.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		adapter: adapter,
		auth:    auth,
		log:     logger.With().Str("component", "profile-handler").Logger(),
	}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/profile", h.updateProfile).Methods("PATCH")
	r.HandleFunc("/profile/avatar", h.uploadAvatar).Methods("POST")
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auth.SessionFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	cu, err := h.adapter.LoadProfile(r.Context(), sess.UserID)
	if err != nil {
		// Last-known-good is preserved in memory; the caller still learns
		// the fetch failed.
		writeError(w, http.StatusBadGateway, "profile fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, cu)
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auth.SessionFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cu, err := h.adapter.UpdateProfile(r.Context(), sess.UserID, Update{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, "profile update failed")
		return
	}
	writeJSON(w, http.StatusOK, cu)
}

const maxAvatarBytes = 8 << 20

func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auth.SessionFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	url, err := h.adapter.UploadAvatar(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, http.StatusBadGateway, "avatar upload failed")
		return
	}

	// The new URL is persisted through the normal update path so a storage
	// success with a failed profile write still surfaces.
	cu, err := h.adapter.UpdateProfile(r.Context(), sess.UserID, Update{AvatarURL: &url})
	if err != nil {
		writeError(w, http.StatusBadGateway, "avatar saved but profile update failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"url": url, "profile": cu})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
