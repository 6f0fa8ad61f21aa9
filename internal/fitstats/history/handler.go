package history

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/avolkov/fittrack/internal/auth"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/avolkov/fittrack/pkg"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=history_test

type historyRepo interface {
	List(ctx context.Context, accountID int, limit int) ([]Record, error)
	ListSince(ctx context.Context, accountID int, since string) ([]Record, error)
}

type ChartResponse struct {
	Exercise string       `json:"exercise"`
	Range    ChartRange   `json:"range"`
	Series   []ChartPoint `json:"series"`
}

type HeatmapResponse struct {
	Cells []HeatmapCell `json:"cells"`
}

type ListResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}

type Handler struct {
	repo historyRepo
	now  func() time.Time
}

func NewHandler(repo historyRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	limit := MaxRecords
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil || days <= 0 {
			http.Error(w, "error, days invalid", http.StatusBadRequest)
			return
		}
		limit = days
	}

	records, err := handler.repo.List(ctx, accountID, limit)
	if err != nil {
		log.Errorf("failed to list history for account %d: %s", accountID, err)
		http.Error(w, "failed to list history", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []Record{}
	}

	respJSON, err := json.Marshal(ListResponse{Records: records, Total: len(records)})
	if err != nil {
		log.Errorf("failed to marshal history: %s", err)
		http.Error(w, "failed to marshal history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJSON, http.StatusOK)
}

func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.chart")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	chartRange := RangeWeek
	if rangeParam := r.URL.Query().Get("range"); rangeParam != "" {
		var err error
		chartRange, err = ParseChartRange(rangeParam)
		if err != nil {
			http.Error(w, "error, range invalid", http.StatusBadRequest)
			return
		}
	}

	today := handler.now()
	since := pkg.DateString(today.AddDate(0, 0, -(chartRange.Days() - 1)))
	records, err := handler.repo.ListSince(ctx, accountID, since)
	if err != nil {
		log.Errorf("failed to list history for account %d chart: %s", accountID, err)
		http.Error(w, "failed to build chart", http.StatusInternalServerError)
		return
	}

	series, err := ChartSeries(records, exercise, chartRange, pkg.DateString(today))
	if err != nil {
		log.Errorf("failed to build chart for account %d: %s", accountID, err)
		http.Error(w, "failed to build chart", http.StatusInternalServerError)
		return
	}

	respJSON, err := json.Marshal(ChartResponse{
		Exercise: exercise,
		Range:    chartRange,
		Series:   series,
	})
	if err != nil {
		log.Errorf("failed to marshal chart: %s", err)
		http.Error(w, "failed to marshal chart", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJSON, http.StatusOK)
}

func (handler *Handler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.heatmap")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	records, err := handler.repo.List(ctx, accountID, MaxRecords)
	if err != nil {
		log.Errorf("failed to list history for account %d heatmap: %s", accountID, err)
		http.Error(w, "failed to build heatmap", http.StatusInternalServerError)
		return
	}

	respJSON, err := json.Marshal(HeatmapResponse{Cells: Heatmap(records)})
	if err != nil {
		log.Errorf("failed to marshal heatmap: %s", err)
		http.Error(w, "failed to marshal heatmap", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJSON, http.StatusOK)
}
