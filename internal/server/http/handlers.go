package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"xiangqi/internal/record"
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games     *game.Manager
	log       logrus.FieldLogger
	recordDir string
}

// recordDir 为空时 /api/save 不可用
func NewHandler(games *game.Manager, log logrus.FieldLogger, recordDir string) *Handler {
	if games == nil {
		games = game.NewManager()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{games: games, log: log, recordDir: recordDir}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var fn func(http.ResponseWriter, *http.Request) error
	switch r.URL.Path {
	case "/api/new_game":
		fn = h.handleNewGame
	case "/api/play":
		fn = h.handlePlay
	case "/api/state":
		fn = h.handleState
	case "/api/undo":
		fn = h.handleUndo
	case "/api/goto":
		fn = h.handleGoto
	case "/api/export":
		fn = h.handleExport
	case "/api/import":
		fn = h.handleImport
	case "/api/save":
		fn = h.handleSave
	case "/api/delete":
		fn = h.handleDelete
	default:
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	err := fn(w, r)
	entry := h.log.WithFields(logrus.Fields{
		"path":    r.URL.Path,
		"elapsed": time.Since(start),
	})
	if err != nil {
		code := statusFor(err)
		entry.WithField("status", code).WithError(err).Warn("request failed")
		writeJSONStatus(w, code, ErrorResponse{Error: err.Error()})
		return
	}
	entry.Debug("request ok")
}

var errBadJSON = errors.New("bad json")

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, xiangqi.ErrNoMatchingNotation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errBadJSON),
		errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, xiangqi.ErrInvalidICCS),
		errors.Is(err, xiangqi.ErrInvalidFEN),
		errors.Is(err, record.ErrUnknownFormat),
		errors.Is(err, record.ErrBadEncoding):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	return nil
}

// decodeOptional 空 body（包括 chunked 的空 body）按零值请求处理
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: %v", errBadJSON, err)
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) error {
	var req NewGameRequest
	if err := decodeOptional(r, &req); err != nil {
		return err
	}

	var g *game.GameState
	if req.FEN == "" {
		g = h.games.NewGame()
	} else {
		if _, err := xiangqi.ParseBoardFEN(req.FEN); err != nil {
			return err
		}
		rec := record.New()
		rec.FEN = req.FEN
		var err error
		if g, err = h.games.Import(rec); err != nil {
			return err
		}
	}
	h.log.WithField("game_id", g.ID).Info("new game")
	writeJSON(w, snapshotToResponse(g.ID, g.Snapshot()))
	return nil
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) error {
	var req PlayRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		return err
	}

	var s game.Snapshot
	switch {
	case req.Notation != "":
		s, err = g.PlayNotation(req.Notation)
	case req.ICCS != "":
		var mv xiangqi.Move
		if mv, err = xiangqi.ParseICCS(req.ICCS); err != nil {
			return err
		}
		s, err = g.Play(mv.From, mv.To)
	case req.Move != nil:
		s, err = g.Play(req.Move.From, req.Move.To)
	default:
		return fmt.Errorf("%w: missing move", errBadJSON)
	}
	if err != nil {
		return err
	}

	h.log.WithFields(logrus.Fields{
		"game_id": g.ID,
		"move":    s.LastPly,
		"status":  s.Result,
	}).Info("move played")
	writeJSON(w, snapshotToResponse(g.ID, s))
	return nil
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) error {
	var req StateRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		return err
	}
	writeJSON(w, snapshotToResponse(g.ID, g.Snapshot()))
	return nil
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) error {
	var req StateRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		return err
	}
	s, undone := g.Undo()
	h.log.WithFields(logrus.Fields{"game_id": g.ID, "undone": undone}).Info("undo")
	writeJSON(w, snapshotToResponse(g.ID, s))
	return nil
}

func (h *Handler) handleGoto(w http.ResponseWriter, r *http.Request) error {
	var req GotoRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		return err
	}
	s, err := g.Goto(req.Moves)
	if err != nil {
		return err
	}
	writeJSON(w, snapshotToResponse(g.ID, s))
	return nil
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) error {
	var req ExportRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	f, err := record.ParseFormat(req.Format)
	if err != nil {
		return err
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := g.Record().Encode(&buf, f); err != nil {
		return err
	}
	writeJSON(w, ExportResponse{Format: string(f), Content: buf.String()})
	return nil
}

func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) error {
	var req ImportRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	f, err := record.ParseFormat(req.Format)
	if err != nil {
		return err
	}
	rec, err := record.Decode(strings.NewReader(req.Content), f)
	if err != nil {
		return err
	}
	g, err := h.games.Import(rec)
	if err != nil {
		return err
	}
	h.log.WithFields(logrus.Fields{"game_id": g.ID, "plies": rec.PlyCount()}).Info("record imported")
	writeJSON(w, snapshotToResponse(g.ID, g.Snapshot()))
	return nil
}

// handleSave 把记谱写到 recordDir/<game_id>.<format>
func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) error {
	if h.recordDir == "" {
		return errors.New("record directory not configured")
	}
	var req ExportRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	f, err := record.ParseFormat(req.Format)
	if err != nil {
		return err
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(h.recordDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(h.recordDir, g.ID+"."+string(f))
	var buf bytes.Buffer
	if err := g.Record().Encode(&buf, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	h.log.WithFields(logrus.Fields{"game_id": g.ID, "path": path}).Info("record saved")
	writeJSON(w, ExportResponse{Format: string(f), Content: path})
	return nil
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) error {
	var req StateRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := h.games.Delete(req.GameID); err != nil {
		return err
	}
	h.log.WithFields(logrus.Fields{"game_id": req.GameID, "games": h.games.Len()}).Info("game deleted")
	writeJSON(w, DeleteResponse{GameID: req.GameID, Games: h.games.Len()})
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("writeJSON error")
	}
}
