// Package http wires the audio generation endpoints for Kazka.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"kazka/internal/speech"
	"kazka/internal/story"
	"kazka/internal/tts"
)

// Server exposes the generation pipeline over HTTP.
type Server struct {
	logger *slog.Logger
	speech *speech.Service
}

// NewServer constructs a chi router implementing http.Handler. audioRoot is
// the artifact cache directory, served read-only under /audio/.
func NewServer(logger *slog.Logger, service *speech.Service, audioRoot string) http.Handler {
	srv := &Server{
		logger: logger,
		speech: service,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/audio/*", http.StripPrefix("/audio/", http.FileServer(http.Dir(audioRoot))))

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-narration", srv.handleGenerateNarration)
		r.Post("/generate-dialogue", srv.handleGenerateDialogue)
		r.Get("/dialogue-exists", srv.handleDialogueExists)
	})

	return r
}

type narrationRequest struct {
	ChapterID *int `json:"chapterId"`
}

type dialogueRequest struct {
	ChapterID *int   `json:"chapterId"`
	Character string `json:"character"`
	ChildName string `json:"childName"`
}

type narrationResponse struct {
	Success   bool   `json:"success"`
	AudioPath string `json:"audioPath"`
	Cached    bool   `json:"cached"`
}

type dialogueResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Cached   bool   `json:"cached"`
}

type existsResponse struct {
	Exists   bool    `json:"exists"`
	Filename *string `json:"filename"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleGenerateNarration(w http.ResponseWriter, r *http.Request) {
	var req narrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChapterID == nil {
		s.writeError(w, http.StatusBadRequest, "missing or invalid chapterId")
		return
	}

	result, err := s.speech.GenerateNarration(r.Context(), speech.NarrationRequest{ChapterID: *req.ChapterID})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, narrationResponse{
		Success:   true,
		AudioPath: result.AudioPath,
		Cached:    result.Cached,
	})
}

func (s *Server) handleGenerateDialogue(w http.ResponseWriter, r *http.Request) {
	var req dialogueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChapterID == nil || req.Character == "" {
		s.writeError(w, http.StatusBadRequest, "missing chapterId or character")
		return
	}

	character, ok := story.ParseCharacter(req.Character)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "unknown character: "+req.Character)
		return
	}

	result, err := s.speech.GenerateDialogue(r.Context(), speech.DialogueRequest{
		ChapterID: *req.ChapterID,
		Character: character,
		ChildName: req.ChildName,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, dialogueResponse{
		Success:  true,
		Filename: result.Filename,
		Cached:   result.Cached,
	})
}

func (s *Server) handleDialogueExists(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	chapterID, err := strconv.Atoi(q.Get("chapterId"))
	if err != nil || q.Get("character") == "" {
		s.writeError(w, http.StatusBadRequest, "missing chapterId or character")
		return
	}

	character, ok := story.ParseCharacter(q.Get("character"))
	if !ok {
		s.writeError(w, http.StatusBadRequest, "unknown character: "+q.Get("character"))
		return
	}

	exists, filename := s.speech.DialogueExists(speech.DialogueRequest{
		ChapterID: chapterID,
		Character: character,
		ChildName: q.Get("childName"),
	})

	resp := existsResponse{Exists: exists}
	if exists {
		resp.Filename = &filename
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// writeServiceError converts pipeline failures into structured responses;
// nothing escapes as a crash.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, speech.ErrBadRequest):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, speech.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	default:
		if synthErr, ok := tts.AsSynthesisError(err); ok {
			s.logger.Error("synthesis failed",
				slog.String("kind", synthErr.Kind.String()),
				slog.String("error", synthErr.Error()),
			)
			s.writeError(w, http.StatusInternalServerError, synthErr.Message)
			return
		}
		s.logger.Error("request failed", slog.String("error", err.Error()))
		s.writeError(w, http.StatusInternalServerError, "failed to generate audio")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response failed", slog.String("error", err.Error()))
	}
}
