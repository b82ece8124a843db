package theme

import (
	"encoding/json"
	"net/http"
)

// Handler serves the active theme to storefront pages.
type Handler struct {
	store *Store
}

// NewHandler creates a new theme handler.
func NewHandler(store *Store) *Handler {
	return &Handler{
		store: store,
	}
}

// HandleCSS serves the active theme as a :root block of custom properties.
func (h *Handler) HandleCSS(w http.ResponseWriter, r *http.Request) {
	css := CSS(Variables(h.store.Current()))

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(css))
}

// HandleVariables serves the active theme's custom properties as a JSON
// object keyed by property name.
func (h *Handler) HandleVariables(w http.ResponseWriter, r *http.Request) {
	vars := VariableMap(Variables(h.store.Current()))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	if err := json.NewEncoder(w).Encode(vars); err != nil {
		http.Error(w, "failed to encode variables", http.StatusInternalServerError)
		return
	}
}
