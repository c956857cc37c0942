// Package server runs the live preview: an HTTP API over one playground
// session plus a WebSocket feed that pushes every change to open pages.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yacobolo/cssplay"
	"github.com/yacobolo/cssplay/internal/logger"
)

// maxImportBytes caps POST /api/import bodies.
const maxImportBytes = 1 << 20

// Server serves the preview page and the session API.
type Server struct {
	session  *Session
	hub      *LiveHub
	log      *logger.Logger
	upgrader websocket.Upgrader
}

// New creates a server for session. A nil log discards diagnostics.
func New(session *Session, log *logger.Logger) *Server {
	return &Server{
		session: session,
		hub:     NewLiveHub(),
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Hub returns the live update hub.
func (s *Server) Hub() *LiveHub {
	return s.hub
}

// Register mounts all routes on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handlePreview)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/variables", s.handleListVariables)
	mux.HandleFunc("POST /api/variables", s.handleAppendVariable)
	mux.HandleFunc("PUT /api/variables/{index}", s.handleSetVariable)
	mux.HandleFunc("DELETE /api/variables/{index}", s.handleRemoveVariable)
	mux.HandleFunc("GET /api/themes", s.handleThemes)
	mux.HandleFunc("PUT /api/theme", s.handleSetTheme)
	mux.HandleFunc("GET /api/stylesheet", s.handleStylesheet)
	mux.HandleFunc("GET /api/export/{file}", s.handleExport)
	mux.HandleFunc("POST /api/import", s.handleImport)
	mux.HandleFunc("GET /api/live", s.handleLive)
}

// Handler returns a mux with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("preview server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down preview server")
	s.hub.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	vars, theme := s.session.Snapshot()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, renderPreview(vars, theme))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"viewers": s.hub.Len(),
	})
}

// ---------- variables ----------

func (s *Server) handleListVariables(w http.ResponseWriter, r *http.Request) {
	vars, _ := s.session.Snapshot()
	writeJSON(w, http.StatusOK, vars)
}

func (s *Server) handleAppendVariable(w http.ResponseWriter, r *http.Request) {
	v := s.session.AppendCustom()
	s.hub.SetProperty(v.Name, v.CSSValue())
	s.log.Debug("variable added", "name", v.Name)
	writeJSON(w, http.StatusCreated, v)
}

type setValueRequest struct {
	Value *string `json:"value"`
}

func (s *Server) handleSetVariable(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req setValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == nil {
		writeError(w, http.StatusBadRequest, "body must be {\"value\": \"...\"}")
		return
	}

	v, err := s.session.SetValue(index, *req.Value)
	if err != nil {
		writeContractError(w, err)
		return
	}
	s.hub.SetProperty(v.Name, v.CSSValue())
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleRemoveVariable(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	removed, err := s.session.Remove(index)
	if err != nil {
		writeContractError(w, err)
		return
	}
	s.hub.RemoveProperty(removed.Name)
	s.log.Debug("variable removed", "name", removed.Name)
	w.WriteHeader(http.StatusNoContent)
}

// ---------- themes ----------

type themesResponse struct {
	Active string                `json:"active"`
	Themes []cssplay.ThemePreset `json:"themes"`
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	_, theme := s.session.Snapshot()
	writeJSON(w, http.StatusOK, themesResponse{Active: theme.ID, Themes: cssplay.Themes()})
}

type setThemeRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req setThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "body must be {\"id\": \"...\"}")
		return
	}

	theme, err := s.session.SetTheme(req.ID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.hub.SetTheme(theme)
	writeJSON(w, http.StatusOK, theme)
}

// ---------- stylesheet / export / import ----------

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	vars, _ := s.session.Snapshot()
	w.Header().Set("Content-Type", cssplay.ContentTypeCSS+"; charset=utf-8")
	_, _ = io.WriteString(w, cssplay.GenerateStylesheet(vars))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	vars, theme := s.session.Snapshot()
	sink := downloadSink{w: w}

	var err error
	switch file := r.PathValue("file"); file {
	case cssplay.StylesheetFilename:
		err = cssplay.ExportStylesheet(sink, vars)
	case cssplay.MarkupFilename:
		err = cssplay.ExportMarkup(sink)
	case cssplay.BundleFilename:
		err = cssplay.ExportBundle(sink, vars)
	case cssplay.DesignFilename:
		err = cssplay.ExportDesign(sink, vars, theme.ID)
	default:
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown export %q", file))
		return
	}
	if err != nil {
		s.log.Error(err, "export failed")
	}
}

type importResponse struct {
	Applied int    `json:"applied"`
	Theme   string `json:"theme"`
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "design payload too large")
		return
	}

	// Pages get the value as the stylesheet will emit it.
	applier := cssplay.ApplierFunc(func(name, value string) bool {
		v, ok := s.session.ApplyProperty(name, value)
		if !ok {
			s.log.Debug("design entry rejected", "name", name)
			return false
		}
		s.hub.SetProperty(v.Name, v.CSSValue())
		return true
	})

	applied, err := cssplay.ImportDesign(payload, applier)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if id := cssplay.ReadDesignTheme(payload); id != "" {
		if theme, err := s.session.SetTheme(id); err == nil {
			s.hub.SetTheme(theme)
		} else {
			s.log.Warn("ignoring theme from design", "theme", id)
		}
	}

	_, theme := s.session.Snapshot()
	s.log.Info("design imported", "applied", applied)
	writeJSON(w, http.StatusOK, importResponse{Applied: applied, Theme: theme.ID})
}

// ---------- live ----------

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	id := s.hub.Add(conn)
	log := s.log.With("conn", id)
	log.Debug("preview connected")

	defer func() {
		s.hub.Remove(id)
		_ = conn.Close()
		log.Debug("preview disconnected")
	}()

	// Pages never send anything; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// ---------- helpers ----------

// downloadSink delivers an artifact as an HTTP attachment.
type downloadSink struct {
	w http.ResponseWriter
}

func (d downloadSink) Write(a cssplay.Artifact) error {
	d.w.Header().Set("Content-Type", a.ContentType+"; charset=utf-8")
	d.w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Filename))
	d.w.WriteHeader(http.StatusOK)
	_, err := io.WriteString(d.w, a.Content)
	return err
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return 0, false
	}
	return index, true
}

// writeContractError maps variable list errors to status codes.
func writeContractError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cssplay.ErrIndexOutOfRange):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, cssplay.ErrBuiltinVariable):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
