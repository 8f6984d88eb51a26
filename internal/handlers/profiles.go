package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wellspring-ai/internal/profile"
)

// ProfilesHandler handles HTTP requests for the chatbot catalog.
type ProfilesHandler struct {
	registry *profile.Registry
}

// NewProfilesHandler creates a new ProfilesHandler.
func NewProfilesHandler(registry *profile.Registry) *ProfilesHandler {
	return &ProfilesHandler{registry: registry}
}

// ProfileResponse is the public view of a chatbot profile. Retrieval tuning
// and the system prompt stay server-side.
type ProfileResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	WelcomeMessage  string   `json:"welcomeMessage"`
	PlaceholderText string   `json:"placeholderText"`
	Examples        []string `json:"examples,omitempty"`
}

func toProfileResponse(p *profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Category:        p.Category,
		WelcomeMessage:  p.WelcomeMessage,
		PlaceholderText: p.PlaceholderText,
		Examples:        p.Examples,
	}
}

// List returns every registered chatbot in registration order.
func (h *ProfilesHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles := h.registry.List()
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}
	writeJSON(r.Context(), w, out)
}

// Get returns a single chatbot by id.
func (h *ProfilesHandler) Get(w http.ResponseWriter, r *http.Request) {
	prof, ok := resolveProfile(w, r, h.registry, chi.URLParam(r, "chatbotID"))
	if !ok {
		return
	}
	writeJSON(r.Context(), w, toProfileResponse(prof))
}
