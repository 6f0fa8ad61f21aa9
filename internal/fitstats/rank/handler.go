package rank

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avolkov/fittrack/internal/auth"
	"github.com/avolkov/fittrack/internal/fitstats/profile"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/avolkov/fittrack/pkg"
	log "github.com/sirupsen/logrus"
)

type reconciler interface {
	GetProfile(ctx context.Context, accountID int) (*profile.Profile, error)
}

type Handler struct {
	reconciler reconciler
}

func NewHandler(reconciler reconciler) *Handler {
	return &Handler{reconciler: reconciler}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rank.get")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	p, err := handler.reconciler.GetProfile(ctx, accountID)
	if err != nil {
		log.Errorf("rank, failed to get profile for account %d: %s", accountID, err)
		http.Error(w, "failed to get rank", http.StatusInternalServerError)
		return
	}

	statusJSON, err := json.Marshal(StatusFor(p.TotalXP))
	if err != nil {
		log.Errorf("failed to marshal rank status: %s", err)
		http.Error(w, "failed to marshal rank status", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJSON, http.StatusOK)
}
