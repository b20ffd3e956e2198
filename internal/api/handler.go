package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/inamate/roomplanner/internal/auth"
	"github.com/inamate/roomplanner/internal/engine"
	"github.com/inamate/roomplanner/internal/layout"
	"github.com/inamate/roomplanner/internal/session"
)

// maxBatch bounds the number of commands accepted in one request.
const maxBatch = 1000

type Handler struct {
	hub          *session.Hub
	auth         *auth.Service
	defaultLevel string
	origins      []string
}

func NewHandler(hub *session.Hub, authSvc *auth.Service, defaultLevel string, origins []string) *Handler {
	return &Handler{
		hub:          hub,
		auth:         authSvc,
		defaultLevel: defaultLevel,
		origins:      origins,
	}
}

// Register mounts every route on r. Session routes require a token for the
// session named in the path.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/levels", h.ListLevels).Methods("GET")
	r.HandleFunc("/sessions", h.CreateSession).Methods("POST")

	s := r.PathPrefix("/sessions/{sessionId}").Subrouter()
	s.Use(h.auth.SessionMiddleware("sessionId"))
	s.HandleFunc("", h.GetSession).Methods("GET")
	s.HandleFunc("", h.DeleteSession).Methods("DELETE")
	s.HandleFunc("/commands", h.ApplyCommands).Methods("POST")
	s.HandleFunc("/render", h.Render).Methods("GET")
	s.HandleFunc("/reset", h.Reset).Methods("POST")
	s.HandleFunc("/ws", h.WebSocket)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type levelSummary struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Room      layout.Room `json:"room"`
	Furniture int         `json:"furniture"`
}

func (h *Handler) ListLevels(w http.ResponseWriter, r *http.Request) {
	levels := layout.Levels()
	out := make([]levelSummary, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, levelSummary{
			ID:        lvl.ID,
			Name:      lvl.Name,
			Room:      lvl.Room,
			Furniture: len(lvl.Furniture),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type createRequest struct {
	LevelID string `json:"levelId"`
}

type createResponse struct {
	SessionID string          `json:"sessionId"`
	Token     string          `json:"token"`
	Snapshot  engine.Snapshot `json:"snapshot"`
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.LevelID == "" {
		req.LevelID = h.defaultLevel
	}

	sess, err := h.hub.Create(req.LevelID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.auth.IssueToken(sess.ID)
	if err != nil {
		h.hub.Delete(sess.ID)
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{
		SessionID: sess.ID,
		Token:     token,
		Snapshot:  sess.Snapshot(),
	})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.hub.Get(auth.SessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.hub.Delete(auth.SessionIDFromContext(r.Context())); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// commandsRequest accepts either {"commands": [...]} or a single command object.
type commandsRequest struct {
	Commands []engine.Command `json:"commands"`
	engine.Command
}

type commandsResponse struct {
	Results  []engine.Result `json:"results"`
	Snapshot engine.Snapshot `json:"snapshot"`
}

func (h *Handler) ApplyCommands(w http.ResponseWriter, r *http.Request) {
	sess, err := h.hub.Get(auth.SessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var req commandsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	cmds := req.Commands
	if len(cmds) == 0 && req.Type != "" {
		cmds = []engine.Command{req.Command}
	}
	if len(cmds) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no commands"})
		return
	}
	if len(cmds) > maxBatch {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "too many commands"})
		return
	}

	results, snap := sess.ApplyAll(cmds)
	writeJSON(w, http.StatusOK, commandsResponse{Results: results, Snapshot: snap})
}

func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	sess, err := h.hub.Get(auth.SessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, sess.Render())
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.hub.Get(auth.SessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Reset())
}

// WebSocket attaches the caller as the session's single live client.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionIDFromContext(r.Context())
	if err := h.hub.CanAttach(sessionID); err != nil {
		handleServiceError(w, err)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	client := session.NewClient(h.hub, conn, sessionID, uuid.New().String())
	if err := h.hub.Attach(client); err != nil {
		conn.Close(websocket.StatusPolicyViolation, err.Error())
		return
	}

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
	case errors.Is(err, layout.ErrLevelNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "level not found"})
	case errors.Is(err, session.ErrAttached):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "session already attached"})
	default:
		slog.Error("service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
