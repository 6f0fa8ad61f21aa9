package progress

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkov/fittrack/internal/auth"
	"github.com/avolkov/fittrack/internal/fitstats/profile"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/avolkov/fittrack/pkg"
	log "github.com/sirupsen/logrus"
)

type LogRequest struct {
	Exercise string `json:"exercise"`
	// Amount tolerates both numeric and quoted values. Anything that
	// does not parse counts as zero and the request becomes a noop.
	Amount json.Number `json:"amount"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.log")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	var req LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log progress, unmarshal json params: %s", err)
		http.Error(w, "log progress failed", http.StatusBadRequest)
		return
	}
	if req.Exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	amount64, err := req.Amount.Int64()
	if err != nil {
		// garbage input logs nothing, same as typing letters into the
		// reps field
		amount64 = 0
	}

	result, err := handler.service.LogProgress(ctx, accountID, req.Exercise, int(amount64))
	switch {
	case errors.Is(err, profile.ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("account %d: failed to log progress: %s", accountID, err)
		http.Error(w, "failed to log progress", http.StatusInternalServerError)
		return
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal progress result: %s", err)
		http.Error(w, "failed to marshal progress result", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJSON, http.StatusOK)
}
