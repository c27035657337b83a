package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"kazka/internal/speech"
	"kazka/internal/story"
	"kazka/internal/tts"
)

func newTestHandler(t *testing.T) (http.Handler, *tts.StubClient) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stub := tts.NewStubClient()
	dir := t.TempDir()
	svc := speech.NewService(logger, story.NewBookRepository(), stub, speech.NewStore(dir), speech.DefaultVoices())
	return NewServer(logger, svc, dir), stub
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGenerateNarrationEndpoint(t *testing.T) {
	handler, stub := newTestHandler(t)

	rec := postJSON(t, handler, "/api/generate-narration", `{"chapterId":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	require.Equal(t, "/audio/chapters/chapter-0.wav", body["audioPath"])
	require.Equal(t, false, body["cached"])

	// Second request hits the cache and skips synthesis.
	rec = postJSON(t, handler, "/api/generate-narration", `{"chapterId":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	require.Equal(t, true, body["cached"])
	require.Equal(t, 1, stub.Calls)
}

func TestGenerateNarrationValidation(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postJSON(t, handler, "/api/generate-narration", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, handler, "/api/generate-narration", `{"chapterId":"zero"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, handler, "/api/generate-narration", `{"chapterId":-2}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, handler, "/api/generate-narration", `{"chapterId":99}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateDialogueEndpoint(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postJSON(t, handler, "/api/generate-dialogue", `{"chapterId":0,"character":"police","childName":"Olena"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	require.Equal(t, false, body["cached"])
	require.Equal(t, "chapter-0-police-"+speech.NameHash("Olena")+".wav", body["filename"])
}

func TestGenerateDialogueValidation(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postJSON(t, handler, "/api/generate-dialogue", `{"chapterId":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, handler, "/api/generate-dialogue", `{"chapterId":0,"character":"submarine"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Chapter 1 has no tow dialogue.
	rec = postJSON(t, handler, "/api/generate-dialogue", `{"chapterId":1,"character":"tow"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, false, body["success"])
	require.NotEmpty(t, body["error"])
}

func TestGenerateDialogueSynthesisErrorSurfaces(t *testing.T) {
	handler, stub := newTestHandler(t)
	stub.Err = &tts.SynthesisError{Kind: tts.KindQuotaExhausted, Message: "API quota exceeded for all available models"}

	rec := postJSON(t, handler, "/api/generate-dialogue", `{"chapterId":0,"character":"police"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, false, body["success"])
	require.Contains(t, body["error"], "quota")
}

func TestDialogueExistsEndpoint(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dialogue-exists?chapterId=0&character=police&childName=Olena", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, false, body["exists"])
	require.Nil(t, body["filename"])

	// Generate, then the check flips.
	postJSON(t, handler, "/api/generate-dialogue", `{"chapterId":0,"character":"police","childName":"Olena"}`)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	body = decodeBody(t, rec)
	require.Equal(t, true, body["exists"])
	require.Equal(t, "chapter-0-police-"+speech.NameHash("Olena")+".wav", body["filename"])
}

func TestDialogueExistsValidation(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dialogue-exists?character=police", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServesGeneratedAudioFiles(t *testing.T) {
	handler, _ := newTestHandler(t)

	postJSON(t, handler, "/api/generate-narration", `{"chapterId":0}`)

	req := httptest.NewRequest(http.MethodGet, "/audio/chapters/chapter-0.wav", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "RIFF", rec.Body.String()[0:4])
}
