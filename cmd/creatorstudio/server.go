package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BaSui01/creatorstudio/api"
	"github.com/BaSui01/creatorstudio/api/handlers"
	"github.com/BaSui01/creatorstudio/config"
	"github.com/BaSui01/creatorstudio/internal/cache"
	"github.com/BaSui01/creatorstudio/internal/metrics"
	"github.com/BaSui01/creatorstudio/internal/server"
	"github.com/BaSui01/creatorstudio/internal/telemetry"
	"github.com/BaSui01/creatorstudio/llm"
	"github.com/BaSui01/creatorstudio/llm/providers"
	"github.com/BaSui01/creatorstudio/llm/providers/gemini"
	"github.com/BaSui01/creatorstudio/studio"
	"github.com/BaSui01/creatorstudio/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const metricsNamespace = "creatorstudio"

// =============================================================================
// 🖥️ Server 结构
// =============================================================================

// Server 是 CreatorStudio 的主服务器
type Server struct {
	cfg    *config.Config
	logger *zap.Logger

	// 依赖，测试时可预先注入
	provider llm.Provider
	registry *prometheus.Registry

	telemetry        *telemetry.Providers
	cache            *cache.Manager
	metricsCollector *metrics.Collector
	studio           *studio.Service

	// Handlers
	healthHandler    *handlers.HealthHandler
	studioHandler    *handlers.StudioHandler
	dashboardHandler *handlers.DashboardHandler
	pages            *web.Handler

	// 服务器管理器
	httpManager    *server.Manager
	metricsManager *server.Manager
}

// NewServer 创建新的服务器实例
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
	}
}

// =============================================================================
// 🚀 启动流程
// =============================================================================

// Start 启动所有服务
func (s *Server) Start() error {
	// 1. 遥测失败不阻止启动
	otelProviders, err := telemetry.Init(s.cfg.Telemetry, Version, s.logger)
	if err != nil {
		s.logger.Warn("failed to initialize telemetry", zap.Error(err))
	}
	s.telemetry = otelProviders

	// 2. 初始化依赖与 Handlers
	handler, err := s.buildHandler()
	if err != nil {
		return fmt.Errorf("failed to init handlers: %w", err)
	}

	// 3. 启动 HTTP 服务器
	if err := s.startHTTPServer(handler); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	// 4. 启动 Metrics 服务器
	if err := s.startMetricsServer(); err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	s.logger.Info("All servers started",
		zap.Int("http_port", s.cfg.Server.HTTPPort),
		zap.Int("metrics_port", s.cfg.Server.MetricsPort),
		zap.Bool("cache_enabled", s.cache != nil),
		zap.Bool("telemetry_enabled", s.telemetry.Enabled()),
	)
	return nil
}

// buildHandler 初始化服务与 handlers，返回带中间件链的根 handler
func (s *Server) buildHandler() (http.Handler, error) {
	s.initServices()
	if err := s.initHandlers(); err != nil {
		return nil, err
	}
	return s.routes(), nil
}

// =============================================================================
// 🔧 初始化方法
// =============================================================================

// initServices 初始化指标、Provider、缓存与生成服务
func (s *Server) initServices() {
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	s.metricsCollector = metrics.NewCollectorWithRegisterer(metricsNamespace, s.registry, s.logger)

	if s.provider == nil {
		if s.cfg.Gemini.APIKey == "" {
			s.logger.Warn("Gemini API key not configured, generation requests will fail until it is set")
		}
		s.provider = gemini.NewGeminiProvider(providers.GeminiConfig{
			BaseProviderConfig: providers.BaseProviderConfig{
				APIKey:  s.cfg.Gemini.APIKey,
				BaseURL: s.cfg.Gemini.BaseURL,
				Timeout: s.cfg.Gemini.Timeout,
			},
		}, s.logger)
	}

	opts := []studio.Option{studio.WithMetrics(s.metricsCollector)}

	// Redis 不可用时降级为无缓存
	if s.cfg.Redis.Enabled && s.cache == nil {
		cacheCfg := cache.DefaultConfig()
		cacheCfg.Addr = s.cfg.Redis.Addr
		cacheCfg.Password = s.cfg.Redis.Password
		cacheCfg.DB = s.cfg.Redis.DB
		cacheCfg.KeyPrefix = s.cfg.Redis.KeyPrefix
		cacheCfg.PoolSize = s.cfg.Redis.PoolSize
		cacheCfg.MinIdleConns = s.cfg.Redis.MinIdleConns
		cacheCfg.DefaultTTL = s.cfg.Studio.CacheTTL

		m, err := cache.NewManager(cacheCfg, s.logger)
		if err != nil {
			s.logger.Warn("Redis not available, response cache disabled", zap.Error(err))
		} else {
			s.cache = m
		}
	}
	if s.cache != nil {
		opts = append(opts, studio.WithCache(s.cache))
	}

	s.studio = studio.NewService(s.provider, studio.Config{
		IdeasModel:    s.cfg.Studio.IdeasModel,
		ScriptModel:   s.cfg.Studio.ScriptModel,
		MetadataModel: s.cfg.Studio.MetadataModel,
		Timeout:       s.cfg.Studio.Timeout,
		CacheTTL:      s.cfg.Studio.CacheTTL,
	}, s.logger, opts...)
}

// initHandlers 初始化所有 handlers
func (s *Server) initHandlers() error {
	s.healthHandler = handlers.NewHealthHandler(api.VersionInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}, s.logger)
	s.healthHandler.RegisterCheck(handlers.NewFuncCheck(s.provider.Name(), s.studio.HealthCheck))
	if s.cache != nil {
		s.healthHandler.RegisterCheck(handlers.NewFuncCheck("redis", s.cache.Ping))
	}

	s.studioHandler = handlers.NewStudioHandler(s.studio, s.logger)
	s.dashboardHandler = handlers.NewDashboardHandler(s.logger)

	pages, err := web.NewHandler(s.studio, s.logger)
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}
	s.pages = pages

	s.logger.Info("Handlers initialized")
	return nil
}

// =============================================================================
// 🌐 HTTP 服务器
// =============================================================================

// routes 注册路由并构建中间件链
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// ========================================
	// 健康检查端点
	// ========================================
	mux.HandleFunc("/health", s.healthHandler.HandleHealth)
	mux.HandleFunc("/healthz", s.healthHandler.HandleHealth)
	mux.HandleFunc("/ready", s.healthHandler.HandleReady)
	mux.HandleFunc("/readyz", s.healthHandler.HandleReady)
	mux.HandleFunc("/version", s.healthHandler.HandleVersion)

	// ========================================
	// JSON API
	// ========================================
	mux.HandleFunc("/api/v1/ideas", s.studioHandler.HandleIdeas)
	mux.HandleFunc("/api/v1/scripts", s.studioHandler.HandleScript)
	mux.HandleFunc("/api/v1/metadata", s.studioHandler.HandleMetadata)
	mux.HandleFunc("/api/v1/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/api/v1/views", s.dashboardHandler.HandleViews)

	// ========================================
	// HTML 页面
	// ========================================
	s.pages.Register(mux)

	// ========================================
	// 构建中间件链
	// ========================================
	middlewares := []Middleware{
		Recovery(s.logger),
		RequestID(),
		OTelTracing(),
		SecurityHeaders(),
		RequestLogger(s.logger),
		MetricsMiddleware(s.metricsCollector),
		CORS(s.cfg.Server.CORSAllowedOrigins),
	}
	if len(s.cfg.Server.APIKeys) > 0 {
		middlewares = append(middlewares, APIKeyAuth(s.cfg.Server.APIKeys, apiPrefix, s.cfg.Server.AllowQueryAPIKey, s.logger))
	}
	if s.cfg.Server.JWT.Enabled() {
		middlewares = append(middlewares, JWTAuth(s.cfg.Server.JWT, apiPrefix, s.logger))
	}

	return Chain(mux, middlewares...)
}

// startHTTPServer 启动 HTTP 服务器
func (s *Server) startHTTPServer(handler http.Handler) error {
	serverConfig := server.Config{
		Addr:            fmt.Sprintf(":%d", s.cfg.Server.HTTPPort),
		ReadTimeout:     s.cfg.Server.ReadTimeout,
		WriteTimeout:    s.cfg.Server.WriteTimeout,
		IdleTimeout:     2 * s.cfg.Server.ReadTimeout,
		MaxHeaderBytes:  1 << 20, // 1 MB
		ShutdownTimeout: s.cfg.Server.ShutdownTimeout,
	}

	s.httpManager = server.NewManager("http", handler, serverConfig, s.logger)
	return s.httpManager.Start()
}

// =============================================================================
// 📊 Metrics 服务器
// =============================================================================

// startMetricsServer 启动 Metrics 服务器
func (s *Server) startMetricsServer() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry}))

	serverConfig := server.Config{
		Addr:            fmt.Sprintf(":%d", s.cfg.Server.MetricsPort),
		ReadTimeout:     s.cfg.Server.ReadTimeout,
		WriteTimeout:    s.cfg.Server.ReadTimeout,
		ShutdownTimeout: s.cfg.Server.ShutdownTimeout,
	}

	s.metricsManager = server.NewManager("metrics", mux, serverConfig, s.logger)
	return s.metricsManager.Start()
}

// =============================================================================
// 🛑 关闭流程
// =============================================================================

// Wait 阻塞直到 ctx 结束（收到信号）或任一服务器异常退出
func (s *Server) Wait(ctx context.Context) {
	var httpErrs, metricsErrs <-chan error
	if s.httpManager != nil {
		httpErrs = s.httpManager.Errors()
	}
	if s.metricsManager != nil {
		metricsErrs = s.metricsManager.Errors()
	}

	select {
	case <-ctx.Done():
		s.logger.Info("Shutdown signal received")
	case err := <-httpErrs:
		s.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
	case err := <-metricsErrs:
		s.logger.Error("Metrics server stopped unexpectedly", zap.Error(err))
	}
}

// Shutdown 优雅关闭所有服务，顺序：HTTP → Metrics → 遥测 → 缓存
func (s *Server) Shutdown() {
	s.logger.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if s.httpManager != nil {
		if err := s.httpManager.Shutdown(ctx); err != nil {
			s.logger.Error("HTTP server shutdown error", zap.Error(err))
		}
	}

	if s.metricsManager != nil {
		if err := s.metricsManager.Shutdown(ctx); err != nil {
			s.logger.Error("Metrics server shutdown error", zap.Error(err))
		}
	}

	if err := s.telemetry.Shutdown(ctx); err != nil {
		s.logger.Error("Telemetry shutdown error", zap.Error(err))
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.Error("Cache close error", zap.Error(err))
		}
	}

	s.logger.Info("Graceful shutdown completed")
}

// apiPrefix 需要认证的路由前缀，健康检查与页面不受影响
const apiPrefix = "/api/"
