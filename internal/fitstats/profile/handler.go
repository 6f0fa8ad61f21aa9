package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkov/fittrack/internal/auth"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/avolkov/fittrack/pkg"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profile_test

// reconciler yields the profile with the day rollover already applied.
// Every read and mutation goes through it so stale daily counts never
// leak into responses or updates.
type reconciler interface {
	GetProfile(ctx context.Context, accountID int) (*Profile, error)
}

type profileRepo interface {
	Update(ctx context.Context, p *Profile) error
	UpdateSettings(ctx context.Context, accountID int, settings Settings) error
}

type AddExerciseRequest struct {
	Name     string  `json:"name"`
	Target   int     `json:"target"`
	XPPerRep float64 `json:"xpPerRep"`
	Unit     string  `json:"unit"`
}

type UpdateTargetRequest struct {
	Target int `json:"target"`
}

type Handler struct {
	reconciler reconciler
	repo       profileRepo
}

func NewHandler(reconciler reconciler, repo profileRepo) *Handler {
	return &Handler{
		reconciler: reconciler,
		repo:       repo,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	p, err := handler.reconciler.GetProfile(ctx, accountID)
	if err != nil {
		log.Errorf("failed to get profile for account %d: %s", accountID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	writeProfile(w, p)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.addExercise")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	p, err := handler.reconciler.GetProfile(ctx, accountID)
	if err != nil {
		log.Errorf("add exercise, failed to get profile for account %d: %s", accountID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	err = p.AddExercise(Exercise{
		Name:     req.Name,
		Target:   req.Target,
		XPPerRep: req.XPPerRep,
		Unit:     Unit(req.Unit),
	})
	switch {
	case errors.Is(err, ErrExerciseExists):
		http.Error(w, "exercise already exists", http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, p); err != nil {
		log.Errorf("add exercise, failed to update profile for account %d: %s", accountID, err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	log.Debugf("account %d: new exercise added: %s", accountID, req.Name)
	writeProfileWithStatus(w, p, http.StatusCreated)
}

func (handler *Handler) HandleUpdateTarget(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.updateTarget")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	exerciseName := vars["name"]
	if exerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	var req UpdateTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update target, unmarshal json params: %s", err)
		http.Error(w, "update target failed", http.StatusBadRequest)
		return
	}
	if req.Target <= 0 {
		http.Error(w, "error, target must be positive", http.StatusBadRequest)
		return
	}

	p, err := handler.reconciler.GetProfile(ctx, accountID)
	if err != nil {
		log.Errorf("update target, failed to get profile for account %d: %s", accountID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	exercise, err := p.Exercise(exerciseName)
	if err != nil {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	exercise.Target = req.Target

	if err := handler.repo.Update(ctx, p); err != nil {
		log.Errorf("update target, failed to update profile for account %d: %s", accountID, err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	writeProfile(w, p)
}

func (handler *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.updateSettings")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	var settings Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Errorf("update settings, unmarshal json params: %s", err)
		http.Error(w, "update settings failed", http.StatusBadRequest)
		return
	}
	if settings.Times == nil {
		settings.Times = []string{}
	}
	if settings.Days == nil {
		settings.Days = []string{}
	}

	if err := handler.repo.UpdateSettings(ctx, accountID, settings); err != nil {
		log.Errorf("failed to update settings for account %d: %s", accountID, err)
		http.Error(w, "failed to update settings", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func writeProfile(w http.ResponseWriter, p *Profile) {
	writeProfileWithStatus(w, p, http.StatusOK)
}

func writeProfileWithStatus(w http.ResponseWriter, p *Profile, statusCode int) {
	profileJSON, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "failed to marshal profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJSON, statusCode)
}
