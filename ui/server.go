package ui

import (
	"context"
	"fmt"
	"html/template"
	"math/rand"
	"net/http"
	"sync"

	"pulsex/domain/survey"
	"pulsex/internal"
	"pulsex/internal/analysis"
	"pulsex/internal/config"
	"pulsex/ports"

	"github.com/gin-gonic/gin"
)

// Dependencies wires the dashboard to the loaded dataset and session state
type Dependencies struct {
	Dataset      ports.DatasetPort
	Sessions     ports.SessionRepository
	RNG          ports.RNGPort
	Cache        *analysis.MembershipCache
	Layout       config.Layout
	ReasonPrefix string
	SampleSeed   int64
	Logger       *internal.Logger
}

// Server represents the web server for the slice explorer
type Server struct {
	router    *gin.Engine
	templates *template.Template

	dataset      ports.DatasetPort
	sessions     ports.SessionRepository
	cache        *analysis.MembershipCache
	layout       config.Layout
	reasonPrefix string
	logger       *internal.Logger

	// math/rand sources are not safe for concurrent use
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewServer creates a new web server instance
func NewServer(deps Dependencies) (*Server, error) {
	if deps.Dataset == nil {
		return nil, fmt.Errorf("dataset port cannot be nil")
	}
	if deps.Sessions == nil {
		return nil, fmt.Errorf("session repository cannot be nil")
	}
	if deps.RNG == nil {
		return nil, fmt.Errorf("rng port cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = internal.DefaultLogger
	}
	if deps.ReasonPrefix == "" {
		deps.ReasonPrefix = config.DefaultReasonPrefix
	}

	rng, err := deps.RNG.SeededStream(context.Background(), "person-sampler", deps.SampleSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to create sampler stream: %w", err)
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:       gin.Default(),
		templates:    templates,
		dataset:      deps.Dataset,
		sessions:     deps.Sessions,
		cache:        deps.Cache,
		layout:       deps.Layout,
		reasonPrefix: deps.ReasonPrefix,
		logger:       deps.Logger,
		rng:          rng,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	data := s.router.Group("/", s.requireDataset)
	data.GET("/", s.handleIndex)

	api := data.Group("/api")
	api.GET("/options", s.handleOptions)
	api.GET("/overview", s.handleOverview)
	api.GET("/slice", s.handleSlice)
	api.GET("/sample", s.handleSample)
	api.GET("/records", s.handleRecords)
	api.GET("/profile", s.handleProfile)
	api.GET("/session", s.handleSession)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("[Server] Starting slice explorer on http://%s", addr)
	return s.router.Run(addr)
}

// membership resolves criteria through the cache when one is configured
func (s *Server) membership(table *survey.Table, criteria survey.Criteria) survey.Membership {
	if s.cache != nil {
		return s.cache.Membership(criteria)
	}
	return analysis.ComputeCriteriaMembership(table, criteria)
}

func (s *Server) samplePerson(table *survey.Table, onlyUnvaccinated bool) (int, error) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return analysis.SamplePerson(table, s.rng, onlyUnvaccinated)
}
