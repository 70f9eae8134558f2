package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/uaclass/pkg/logger"
	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

// maxBatch bounds the number of user agents accepted by POST /classify.
const maxBatch = 100

var (
	ErrInvalidBody   = errors.New("invalid request body")
	ErrBatchTooLarge = errors.New("too many user agents in one request")
)

// Response is the JSON envelope of every API response.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type batchRequest struct {
	UserAgents []string `json:"user_agents"`
}

// classifyHandler classifies the "ua" query parameter, or the caller's own
// User-Agent header when the parameter is absent.
func classifyHandler(w http.ResponseWriter, r *http.Request) {
	ua := useragent.FromRequest(r)
	if q := r.URL.Query(); q.Has("ua") {
		ua = useragent.Parse(q.Get("ua"))
	}
	writeJSON(w, http.StatusOK, Response{Data: ua})
}

func classifyBatchHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			log.WarnContext(r.Context(), "decode classify batch", logger.Error(err))
			writeJSON(w, http.StatusBadRequest, Response{Error: ErrInvalidBody.Error()})
			return
		}
		if len(req.UserAgents) > maxBatch {
			writeJSON(w, http.StatusRequestEntityTooLarge, Response{Error: ErrBatchTooLarge.Error()})
			return
		}

		out := make([]useragent.UserAgent, 0, len(req.UserAgents))
		for _, raw := range req.UserAgents {
			out = append(out, useragent.Parse(raw))
		}
		writeJSON(w, http.StatusOK, Response{Data: out})
	}
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
