package api

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/codeready-toolchain/agent-tracker/pkg/config"
	"github.com/codeready-toolchain/agent-tracker/pkg/database"
	"github.com/codeready-toolchain/agent-tracker/pkg/services"
	"github.com/codeready-toolchain/agent-tracker/pkg/version"
)

// Services bundles the service layer used by the HTTP handlers.
type Services struct {
	Agents       *services.AgentService
	Invocations  *services.InvocationService
	Issues       *services.IssueService
	Improvements *services.ImprovementService
	Changes      *services.ChangeService
	Ingest       *services.IngestService
	Dashboard    *services.DashboardService
	Metrics      *services.MetricsService
}

// NewServices wires every service against the same store.
func NewServices(cfg *config.Config, dbClient *database.Client) Services {
	client := dbClient.Client
	return Services{
		Agents:       services.NewAgentService(client),
		Invocations:  services.NewInvocationService(client),
		Issues:       services.NewIssueService(client),
		Improvements: services.NewImprovementService(client),
		Changes:      services.NewChangeService(client),
		Ingest:       services.NewIngestService(client, cfg.Ingest.MaxBatchSize),
		Dashboard:    services.NewDashboardService(client),
		Metrics: services.NewMetricsService(client, dbClient.Reachable, services.AppInfo{
			Name:        cfg.App.Name,
			Environment: cfg.App.Environment,
			Version:     version.Version,
		}),
	}
}

// Server is the HTTP API server.
type Server struct {
	cfg        *config.Config
	router     *gin.Engine
	httpServer *http.Server
	dbClient   *database.Client
	svc        Services
	limiter    *rate.Limiter
}

// NewServer creates a new API server with all routes registered.
func NewServer(cfg *config.Config, dbClient *database.Client, svc Services) *Server {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	router.Use(requestID())
	router.Use(requestLogger())
	router.Use(securityHeaders())
	router.Use(maxBodySize(cfg.Server.MaxBodyBytes))

	s := &Server{
		cfg:      cfg,
		router:   router,
		dbClient: dbClient,
		svc:      svc,
	}
	s.httpServer = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}
	if cfg.Ingest.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.Ingest.RateLimit), cfg.Ingest.RateBurst)
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ui := s.router.Group("/agent_tracker")
	ui.GET("/", s.dashboardHandler)

	ui.GET("/agents", s.listAgentsHandler)
	ui.POST("/agents", s.createAgentHandler)
	ui.GET("/agents/:id", s.getAgentHandler)
	ui.PATCH("/agents/:id", s.updateAgentHandler)
	ui.DELETE("/agents/:id", s.deleteAgentHandler)

	ui.GET("/agent_invocations", s.listInvocationsHandler)
	ui.GET("/agent_invocations/new", s.invocationFormHandler)
	ui.GET("/quick_log", s.invocationFormHandler)
	ui.POST("/agent_invocations", s.createInvocationHandler)
	ui.GET("/agent_invocations/:id", s.getInvocationHandler)
	ui.PATCH("/agent_invocations/:id", s.updateInvocationHandler)
	ui.DELETE("/agent_invocations/:id", s.deleteInvocationHandler)

	ui.GET("/agent_issues", s.listIssuesHandler)
	ui.POST("/agent_issues", s.createIssueHandler)
	ui.GET("/agent_issues/:id", s.getIssueHandler)
	ui.PATCH("/agent_issues/:id", s.updateIssueHandler)
	ui.DELETE("/agent_issues/:id", s.deleteIssueHandler)

	ui.GET("/agent_improvements", s.listImprovementsHandler)
	ui.POST("/agent_improvements", s.createImprovementHandler)
	ui.GET("/agent_improvements/:id", s.getImprovementHandler)
	ui.PATCH("/agent_improvements/:id", s.updateImprovementHandler)
	ui.DELETE("/agent_improvements/:id", s.deleteImprovementHandler)

	ui.GET("/agent_changes", s.listChangesHandler)
	ui.POST("/agent_changes", s.createChangeHandler)
	ui.GET("/agent_changes/:id", s.getChangeHandler)

	api := s.router.Group("/api", rateLimit(s.limiter))
	api.POST("/agent_invocations/bulk_create", bearerAuth(s.cfg.Auth.APIToken), s.bulkCreateHandler)

	metrics := []gin.HandlerFunc{}
	if s.cfg.Auth.MetricsAuthEnabled() {
		metrics = append(metrics, bearerAuth(s.cfg.Auth.MetricsToken()))
	}
	api.GET("/metrics", append(metrics, s.metricsHandler)...)
}

// SetMCPHandler mounts the MCP streamable HTTP transport at /mcp behind the
// ingestion bearer token.
func (s *Server) SetMCPHandler(h http.Handler) {
	s.router.Any("/mcp", rateLimit(s.limiter), bearerAuth(s.cfg.Auth.APIToken), gin.WrapH(h))
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln. It returns nil after a graceful shutdown.
func (s *Server) Serve(ln net.Listener) error {
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
