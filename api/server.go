package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"themeplane/editor"
	"themeplane/logging"
	"themeplane/model"
	"themeplane/registry"
	"themeplane/theme"
)

const maxBodyBytes = 64 << 10

type Server struct {
	themes       *theme.Store
	themeHandler *theme.Handler
	buttons      *registry.Buttons
	cards        *registry.Cards
	hub          *Hub
	upgrader     websocket.Upgrader
	logger       zerolog.Logger
	unsubscribe  func()
}

// NewServer wires the HTTP API and subscribes the websocket hub to theme
// changes. Call Close to drop the subscription.
func NewServer(themes *theme.Store, buttons *registry.Buttons, cards *registry.Cards) *Server {
	s := &Server{
		themes:       themes,
		themeHandler: theme.NewHandler(themes),
		buttons:      buttons,
		cards:        cards,
		hub:          NewHub(),
		logger:       logging.Component("api"),
	}
	s.unsubscribe = themes.Subscribe(s.hub.PublishTheme)
	return s
}

// Close detaches the server from the theme store.
func (s *Server) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub { return s.hub }

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("GET /api/theme", s.handleGetTheme)
	mux.HandleFunc("GET /api/theme.css", s.themeHandler.HandleCSS)
	mux.HandleFunc("GET /api/theme/variables", s.themeHandler.HandleVariables)
	mux.HandleFunc("PUT /api/theme/{section}", s.handleUpdateTheme)
	mux.HandleFunc("POST /api/theme/reset", s.handleResetTheme)

	mux.HandleFunc("GET /api/buttons", s.handleListButtons)
	mux.HandleFunc("GET /api/buttons/{key}", s.handleGetButton)
	mux.HandleFunc("PUT /api/buttons/{key}", s.handleUpdateButton)
	mux.HandleFunc("POST /api/buttons/{key}/preset", s.handleButtonPreset)
	mux.HandleFunc("POST /api/buttons/{key}/apply-all", s.handleButtonApplyAll)

	mux.HandleFunc("GET /api/cards", s.handleListCards)
	mux.HandleFunc("GET /api/cards/{key}", s.handleGetCard)
	mux.HandleFunc("PUT /api/cards/{key}", s.handleUpdateCard)

	mux.HandleFunc("GET /api/ws", s.handleWebSocket)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	writeJSON(w, http.StatusOK, resp)
}

// ---------- theme ----------

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.themes.Current())
}

func (s *Server) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	section, err := theme.ParseSection(r.PathValue("section"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var partial json.RawMessage
	if err := decodeBody(w, r, &partial); err != nil {
		s.writeError(w, err)
		return
	}

	t, err := s.themes.Update(section, partial)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleResetTheme(w http.ResponseWriter, r *http.Request) {
	e := editor.OpenTheme(s.themes)
	if err := e.Reset(queryConfirmer(r)); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e.Value())
}

// ---------- buttons ----------

func (s *Server) handleListButtons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.buttons.All())
}

func (s *Server) handleGetButton(w http.ResponseWriter, r *http.Request) {
	b, err := s.buttons.Get(r.PathValue("key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleUpdateButton(w http.ResponseWriter, r *http.Request) {
	patch, err := decodePatch(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	e, err := editor.OpenButton(s.buttons, s.themes, r.PathValue("key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := e.Apply(patch); err != nil {
		e.Discard()
		s.writeError(w, err)
		return
	}
	if err := e.Commit(); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e.Value())
}

func (s *Server) handleButtonPreset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Preset model.ButtonPreset `json:"preset"`
	}
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	e, err := editor.OpenButton(s.buttons, s.themes, r.PathValue("key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := e.SelectPreset(req.Preset); err != nil {
		e.Discard()
		s.writeError(w, err)
		return
	}
	if err := e.Commit(); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e.Value())
}

func (s *Server) handleButtonApplyAll(w http.ResponseWriter, r *http.Request) {
	var patch map[string]string
	if r.ContentLength != 0 {
		var err error
		if patch, err = decodePatch(w, r); err != nil {
			s.writeError(w, err)
			return
		}
	}
	e, err := editor.OpenButton(s.buttons, s.themes, r.PathValue("key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer e.Discard()
	if err := e.Apply(patch); err != nil {
		s.writeError(w, err)
		return
	}
	changed, err := e.ApplyToAll(queryConfirmer(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info().Strs("keys", changed).Msg("button style applied to all")
	writeJSON(w, http.StatusOK, map[string]any{"changed": changed, "style": e.Value()})
}

// ---------- cards ----------

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cards.All())
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	c, err := s.cards.Get(r.PathValue("key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	patch, err := decodePatch(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	e, err := editor.OpenCard(s.cards, r.PathValue("key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := e.Apply(patch); err != nil {
		e.Discard()
		s.writeError(w, err)
		return
	}
	if err := e.Commit(); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e.Value())
}

// ---------- websocket ----------

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	if err := s.hub.Add(conn); err != nil {
		s.hub.Remove(conn)
		return
	}
	defer s.hub.Remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// ---------- helpers ----------

var errBadRequest = errors.New("bad request")

type requestError struct {
	err error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() []error {
	return []error{errBadRequest, e.err}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &requestError{err: fmt.Errorf("invalid json: %w", err)}
	}
	return nil
}

// decodePatch reads a flat JSON object of field values. Numbers and bools
// are accepted and converted to their text form.
func decodePatch(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	var raw map[string]any
	if err := decodeBody(w, r, &raw); err != nil {
		return nil, err
	}
	patch := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			patch[k] = t
		case float64:
			patch[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			patch[k] = strconv.FormatBool(t)
		default:
			return nil, &requestError{err: fmt.Errorf("field %q: unsupported value", k)}
		}
	}
	return patch, nil
}

func queryConfirmer(r *http.Request) editor.Confirmer {
	return editor.ConfirmFunc(func(string) bool {
		ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
		return ok
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrNotConfirmed):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, model.ErrInvalidValue),
		errors.Is(err, theme.ErrUnknownKey),
		errors.Is(err, theme.ErrUnknownSection),
		errors.Is(err, editor.ErrUnknownField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
		writeJSON(w, status, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := logging.Component("api")
		logger.Warn().Err(err).Msg("write json")
	}
}
