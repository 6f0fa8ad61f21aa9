package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/avolkov/fittrack/internal/accounts"
	"github.com/avolkov/fittrack/internal/auth"
	"github.com/avolkov/fittrack/internal/config"
	"github.com/avolkov/fittrack/internal/db"
	"github.com/avolkov/fittrack/internal/fitstats/history"
	"github.com/avolkov/fittrack/internal/fitstats/profile"
	"github.com/avolkov/fittrack/internal/fitstats/progress"
	"github.com/avolkov/fittrack/internal/fitstats/rank"
	"github.com/avolkov/fittrack/internal/fitstats/rollover"
	"github.com/avolkov/fittrack/internal/fitstats/social"
	"github.com/avolkov/fittrack/internal/middleware"
	"github.com/avolkov/fittrack/internal/misc"
	"github.com/avolkov/fittrack/internal/telemetry/metrics"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	dbPool        *pgxpool.Pool
	quotesManager *misc.QuotesManager

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config         *config.Config
	VersionInfo    string
	RedisPassword  string
	TracingEnabled bool
}

func NewServer(ctx context.Context, params NewServerParams) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	otelShutdown, err := tracing.Setup(params.TracingEnabled, "fittrack-backend")
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(rdb),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	quotesCsvFile, err := os.Open(params.Config.QuotesCsvPath)
	if err != nil {
		return nil, fmt.Errorf("open quotes file: %w", err)
	}
	defer func() {
		if err := quotesCsvFile.Close(); err != nil {
			log.Warnf("close quotes csv file: %s", err)
		}
	}()

	s.quotesManager, err = misc.NewQuotesManager(csv.NewReader(quotesCsvFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create quotes manager: %w", err)
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	profileRepo := profile.NewRepo(s.dbPool)
	historyRepo := history.NewRepo(s.dbPool)
	accountsRepo := accounts.NewRepo(s.dbPool)

	rolloverService := rollover.NewService(profileRepo, historyRepo, s.metricsManager)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	accountsHandler := accounts.NewHandler(accountsRepo, s.authService)
	authSubrouter := r.PathPrefix("/a").Subrouter()
	authSubrouter.Use(middleware.RateLimit(
		reqRateLimiter, "auth",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	))
	authSubrouter.HandleFunc("/register", accountsHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authSubrouter.HandleFunc("/login", accountsHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authSubrouter.HandleFunc("/logout", accountsHandler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	authSubrouter.HandleFunc("/password/reset", accountsHandler.HandlePasswordResetRequest).Methods("POST", "OPTIONS").Name("password-reset")
	authSubrouter.HandleFunc("/password/confirm", accountsHandler.HandlePasswordResetConfirm).Methods("POST", "OPTIONS").Name("password-confirm")
	authSubrouter.HandleFunc("/profile", accountsHandler.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-account")

	profileHandler := profile.NewHandler(rolloverService, profileRepo)
	r.HandleFunc("/fitstats/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/fitstats/exercise", profileHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/fitstats/exercise/{name}/target", profileHandler.HandleUpdateTarget).Methods("PUT", "OPTIONS").Name("update-target")
	r.HandleFunc("/fitstats/settings", profileHandler.HandleUpdateSettings).Methods("PUT", "OPTIONS").Name("update-settings")

	progressHandler := progress.NewHandler(progress.NewService(
		rolloverService,
		profileRepo,
		progress.NewStatsRepo(s.dbPool),
		s.metricsManager,
	))
	r.HandleFunc("/fitstats/progress", progressHandler.HandleLog).Methods("POST", "OPTIONS").Name("log-progress")

	rankHandler := rank.NewHandler(rolloverService)
	r.HandleFunc("/fitstats/rank", rankHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-rank")

	historyHandler := history.NewHandler(historyRepo)
	r.HandleFunc("/fitstats/history", historyHandler.HandleList).Methods("GET", "OPTIONS").Name("list-history")
	r.HandleFunc("/fitstats/history/chart", historyHandler.HandleChart).Methods("GET", "OPTIONS").Name("history-chart")
	r.HandleFunc("/fitstats/history/heatmap", historyHandler.HandleHeatmap).Methods("GET", "OPTIONS").Name("history-heatmap")

	socialHandler := social.NewHandler(social.NewService(
		social.NewRepo(s.dbPool),
		accountsRepo,
	))
	r.HandleFunc("/fitstats/leaderboard/{exercise}", socialHandler.HandleLeaderboard).Methods("GET", "OPTIONS").Name("leaderboard")
	r.HandleFunc("/fitstats/friends", socialHandler.HandleAddFriend).Methods("POST", "OPTIONS").Name("add-friend")
	r.HandleFunc("/fitstats/friends", socialHandler.HandleFriends).Methods("GET", "OPTIONS").Name("list-friends")

	miscHandler := misc.NewHandler(s.quotesManager, s.config.QuotesCsvPath, s.versionInfo)
	r.HandleFunc("/", miscHandler.HandleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	r.HandleFunc("/quote/random", miscHandler.HandleGetRandomQuote).Methods("GET").Name("quote")
	r.HandleFunc("/quote/reload", miscHandler.HandleReloadQuotes).Methods("POST", "OPTIONS").Name("quote-reload")
	r.HandleFunc("/version", miscHandler.HandleGetVersionInfo).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
