package httpapi

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rgoodwin/entrysim/internal/simulation"
)

// SimulationRunner is the pipeline surface the server drives.
type SimulationRunner interface {
	Run(ctx context.Context, input simulation.SimulationInput) (simulation.SimulationResult, error)
	RunWithProgress(ctx context.Context, input simulation.SimulationInput, progress simulation.ProgressFn) (simulation.SimulationResult, error)
}

type Server struct {
	runner SimulationRunner
}

func NewServer(runner SimulationRunner) http.Handler {
	s := &Server{runner: runner}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/simulate", s.handleSimulate)
	mux.HandleFunc("/v1/simulate/stream", s.handleSimulateStream)
	mux.HandleFunc("/v1/health", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForCode maps the generation failure taxonomy onto HTTP statuses.
func statusForCode(code simulation.ErrorCode) int {
	switch code {
	case simulation.CodeInvalidAPIKey:
		return http.StatusUnauthorized
	case simulation.CodeRateLimited:
		return http.StatusTooManyRequests
	case simulation.CodeServiceError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeGenerationError(w http.ResponseWriter, err error) {
	var ge *simulation.GenerationError
	if errors.As(err, &ge) {
		writeJSON(w, statusForCode(ge.Code), map[string]any{
			"ok": false,
			"error": map[string]any{
				"code":      ge.Code,
				"message":   ge.Message,
				"transient": ge.Transient,
			},
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"ok": false,
		"error": map[string]any{
			"code":    simulation.CodeUnknown,
			"message": err.Error(),
		},
	})
}

func writeValidationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"ok": false,
		"error": map[string]any{
			"code":    "validation",
			"message": err.Error(),
		},
	})
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decodeInput(r *http.Request) (simulation.SimulationInput, error) {
	var input simulation.SimulationInput
	if r.Body == nil {
		return input, errors.New("request body required")
	}
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		return input, err
	}
	if err := json.Unmarshal(blob, &input); err != nil {
		return input, fmt.Errorf("invalid JSON body: %w", err)
	}
	return input, input.Validate()
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	input, err := decodeInput(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	result, err := s.runner.Run(r.Context(), input)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "result": result})
}

// handleSimulateStream runs the pipeline and forwards each progress event
// as an SSE "message" frame. Failures after the stream has started are
// delivered as a terminal error frame.
func (s *Server) handleSimulateStream(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	input, err := decodeInput(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": map[string]any{"message": "streaming unsupported"}})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	bw := bufio.NewWriter(w)
	send := func(ev simulation.StreamEvent) {
		blob, err := json.Marshal(ev)
		if err != nil {
			return
		}
		if _, err := bw.WriteString("event: message\ndata: "); err != nil {
			return
		}
		if _, err := bw.Write(blob); err != nil {
			return
		}
		if _, err := bw.WriteString("\n\n"); err != nil {
			return
		}
		if err := bw.Flush(); err != nil {
			return
		}
		flusher.Flush()
	}

	if _, err := s.runner.RunWithProgress(r.Context(), input, send); err != nil {
		send(simulation.ErrorEvent(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
