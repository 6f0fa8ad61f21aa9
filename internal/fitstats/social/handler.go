package social

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/fittrack/internal/auth"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/avolkov/fittrack/pkg"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type AddFriendRequest struct {
	Email string `json:"email"`
}

type AddFriendResponse struct {
	Status AddFriendStatus `json:"status"`
}

type LeaderboardResponse struct {
	Exercise string             `json:"exercise"`
	Entries  []LeaderboardEntry `json:"entries"`
}

type FriendsResponse struct {
	Friends []FriendEntry `json:"friends"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.leaderboard")
	defer span.End()

	vars := mux.Vars(r)
	exercise := vars["exercise"]
	if exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	entries, err := handler.service.Leaderboard(ctx, exercise)
	if err != nil {
		log.Errorf("failed to get leaderboard for %s: %s", exercise, err)
		http.Error(w, "failed to get leaderboard", http.StatusInternalServerError)
		return
	}

	respJSON, err := json.Marshal(LeaderboardResponse{Exercise: exercise, Entries: entries})
	if err != nil {
		log.Errorf("failed to marshal leaderboard: %s", err)
		http.Error(w, "failed to marshal leaderboard", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJSON, http.StatusOK)
}

func (handler *Handler) HandleAddFriend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.addFriend")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	var req AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add friend, unmarshal json params: %s", err)
		http.Error(w, "add friend failed", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}

	status, err := handler.service.AddFriend(ctx, accountID, req.Email)
	if err != nil {
		log.Errorf("account %d: failed to add friend: %s", accountID, err)
		http.Error(w, "add friend failed", http.StatusInternalServerError)
		return
	}

	respJSON, err := json.Marshal(AddFriendResponse{Status: status})
	if err != nil {
		log.Errorf("failed to marshal add friend response: %s", err)
		http.Error(w, "add friend failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJSON, http.StatusOK)
}

func (handler *Handler) HandleFriends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.friends")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	friends, err := handler.service.Friends(ctx, accountID)
	if err != nil {
		log.Errorf("account %d: failed to list friends: %s", accountID, err)
		http.Error(w, "failed to list friends", http.StatusInternalServerError)
		return
	}

	respJSON, err := json.Marshal(FriendsResponse{Friends: friends})
	if err != nil {
		log.Errorf("failed to marshal friends: %s", err)
		http.Error(w, "failed to marshal friends", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJSON, http.StatusOK)
}
