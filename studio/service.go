package studio

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/BaSui01/creatorstudio/internal/cache"
	"github.com/BaSui01/creatorstudio/llm"
	"github.com/BaSui01/creatorstudio/llm/structured"
	"github.com/BaSui01/creatorstudio/llm/tokenizer"
	"github.com/BaSui01/creatorstudio/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	instrumentationName = "github.com/BaSui01/creatorstudio/studio"
	jsonMIMEType        = "application/json"
	cacheType           = "generation"
)

// =============================================================================
// 🎯 配置与依赖
// =============================================================================

// Config 生成服务配置
type Config struct {
	IdeasModel    string
	ScriptModel   string
	MetadataModel string

	// Timeout 单次上游调用超时，0 表示只受调用方 context 约束
	Timeout time.Duration

	// CacheTTL 缓存有效期，0 表示不写缓存
	CacheTTL time.Duration
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		IdeasModel:    "gemini-2.5-flash",
		ScriptModel:   "gemini-3-pro-preview",
		MetadataModel: "gemini-2.5-flash",
		Timeout:       60 * time.Second,
		CacheTTL:      10 * time.Minute,
	}
}

// ResponseCache 保存已校验的模型输出文本
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// MetricsRecorder 生成相关指标
type MetricsRecorder interface {
	RecordGeneration(operation, model, status string, duration time.Duration, promptTokens, completionTokens int)
	GenerationStarted(operation string) func()
	RecordCollapsed(operation string)
	RecordPromptEstimate(operation string, tokens int)
	RecordCacheHit(cacheType string)
	RecordCacheMiss(cacheType string)
}

// Option 配置 Service 的可选依赖
type Option func(*Service)

// WithCache 启用响应缓存
func WithCache(c ResponseCache) Option {
	return func(s *Service) { s.cache = c }
}

// WithMetrics 设置指标记录器
func WithMetrics(m MetricsRecorder) Option {
	return func(s *Service) { s.metrics = m }
}

// WithTracer 设置 tracer，默认使用全局 TracerProvider
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// WithTokenizer 固定 prompt token 估算器，默认按模型从注册表查找
func WithTokenizer(t tokenizer.Tokenizer) Option {
	return func(s *Service) { s.tokenizer = t }
}

// WithValidator 替换输出校验器
func WithValidator(v structured.SchemaValidator) Option {
	return func(s *Service) { s.validator = v }
}

// =============================================================================
// 🎬 生成服务
// =============================================================================

// Service 封装三个一次性生成操作。每个操作只调用模型一次，从不重试。
type Service struct {
	provider  llm.Provider
	cfg       Config
	cache     ResponseCache
	metrics   MetricsRecorder
	tracer    trace.Tracer
	tokenizer tokenizer.Tokenizer
	validator structured.SchemaValidator
	group     singleflight.Group
	logger    *zap.Logger
}

// NewService 创建生成服务
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	def := DefaultConfig()
	if cfg.IdeasModel == "" {
		cfg.IdeasModel = def.IdeasModel
	}
	if cfg.ScriptModel == "" {
		cfg.ScriptModel = def.ScriptModel
	}
	if cfg.MetadataModel == "" {
		cfg.MetadataModel = def.MetadataModel
	}

	s := &Service{
		provider:  provider,
		cfg:       cfg,
		metrics:   nopMetrics{},
		tracer:    otel.Tracer(instrumentationName),
		validator: structured.NewValidator(),
		logger:    logger.With(zap.String("component", "studio")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config 返回生效的配置
func (s *Service) Config() Config { return s.cfg }

// GenerateVideoIdeas 为给定领域生成 5 个视频创意。模型返回空文本时结果为空切片。
func (s *Service) GenerateVideoIdeas(ctx context.Context, niche string) ([]types.VideoIdea, error) {
	if isBlank(niche) {
		return nil, invalidInput("niche")
	}
	ideas, err := generate[[]types.VideoIdea](ctx, s, call{
		op:     OpIdeas,
		model:  s.cfg.IdeasModel,
		prompt: IdeasPrompt(niche),
		schema: IdeasSchema(),
	})
	if err != nil {
		return nil, err
	}
	if ideas == nil {
		ideas = []types.VideoIdea{}
	}
	return ideas, nil
}

// GenerateScript 为给定标题生成分段脚本。模型返回空文本时结果为空切片。
func (s *Service) GenerateScript(ctx context.Context, title string) ([]types.ScriptSection, error) {
	if isBlank(title) {
		return nil, invalidInput("title")
	}
	sections, err := generate[[]types.ScriptSection](ctx, s, call{
		op:     OpScript,
		model:  s.cfg.ScriptModel,
		prompt: ScriptPrompt(title),
		schema: ScriptSchema(),
	})
	if err != nil {
		return nil, err
	}
	if sections == nil {
		sections = []types.ScriptSection{}
	}
	return sections, nil
}

// OptimizeMetadata 为视频描述生成标题、描述与标签。模型返回空文本时结果为 nil。
func (s *Service) OptimizeMetadata(ctx context.Context, description string) (*types.GeneratedMetadata, error) {
	if isBlank(description) {
		return nil, invalidInput("description")
	}
	return generate[*types.GeneratedMetadata](ctx, s, call{
		op:     OpMetadata,
		model:  s.cfg.MetadataModel,
		prompt: MetadataPrompt(description),
		schema: MetadataSchema(),
	})
}

// HealthCheck 探测上游 Provider
func (s *Service) HealthCheck(ctx context.Context) error {
	status, err := s.provider.HealthCheck(ctx)
	if err != nil {
		return err
	}
	if status == nil || !status.Healthy {
		return errors.New("provider reported unhealthy")
	}
	return nil
}

// =============================================================================
// 🔧 通用生成流程
// =============================================================================

type call struct {
	op     Operation
	model  string
	prompt string
	schema *structured.JSONSchema
}

// generate 查缓存 → 合并相同请求 → 调用模型 → 校验 → 解码。
// 空文本返回 T 的零值。
func generate[T any](ctx context.Context, s *Service, c call) (T, error) {
	var zero T

	text, err := s.textFor(ctx, c)
	if err != nil {
		return zero, toServiceError(err)
	}
	if strings.TrimSpace(text) == "" {
		return zero, nil
	}

	var out T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return zero, malformedOutput(c.op, s.provider.Name(), err)
	}
	return out, nil
}

// textFor 返回已校验的模型输出文本，优先命中缓存
func (s *Service) textFor(ctx context.Context, c call) (string, error) {
	key := Fingerprint(c.op, c.model, c.prompt)

	if text, ok := s.lookup(ctx, key); ok {
		return text, nil
	}

	// 上游调用与单个请求的生命周期解绑，避免首个调用方取消时连带其他等待者失败
	ch := s.group.DoChan(key, func() (any, error) {
		callCtx := context.WithoutCancel(ctx)
		return s.callModel(callCtx, c, key)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.metrics.RecordCollapsed(c.op.String())
		}
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (s *Service) lookup(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	text, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		s.metrics.RecordCacheHit(cacheType)
		return text, true
	case cache.IsCacheMiss(err):
		s.metrics.RecordCacheMiss(cacheType)
	default:
		// 缓存故障不影响生成
		s.metrics.RecordCacheMiss(cacheType)
		s.logger.Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
	}
	return "", false
}

// callModel 执行唯一一次上游调用。错误在此记录一次日志后返回。
func (s *Service) callModel(ctx context.Context, c call, key string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "studio."+c.op.String(),
		trace.WithAttributes(
			attribute.String("studio.operation", c.op.String()),
			attribute.String("llm.provider", s.provider.Name()),
			attribute.String("llm.model", c.model),
		))
	defer span.End()

	done := s.metrics.GenerationStarted(c.op.String())
	defer done()

	estimated := tokenizer.CountOrEstimate(s.promptTokenizer(c.model), c.prompt)
	s.metrics.RecordPromptEstimate(c.op.String(), estimated)

	start := time.Now()
	resp, err := s.provider.Completion(ctx, &llm.ChatRequest{
		Model:            c.model,
		Messages:         []llm.Message{{Role: llm.RoleUser, Content: c.prompt}},
		ResponseMIMEType: jsonMIMEType,
		ResponseSchema:   c.schema,
		Timeout:          s.cfg.Timeout,
	})
	duration := time.Since(start)

	if err != nil {
		s.metrics.RecordGeneration(c.op.String(), c.model, "error", duration, estimated, 0)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("generation failed",
			zap.String("operation", c.op.String()),
			zap.String("model", c.model),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return "", err
	}

	promptTokens := resp.Usage.PromptTokens
	if promptTokens == 0 {
		promptTokens = estimated
	}
	text := llm.Text(resp)

	if strings.TrimSpace(text) != "" {
		if verr := s.validator.Validate([]byte(text), c.schema); verr != nil {
			s.metrics.RecordGeneration(c.op.String(), c.model, "malformed", duration, promptTokens, resp.Usage.CompletionTokens)
			span.RecordError(verr)
			span.SetStatus(codes.Error, "malformed output")
			s.logger.Error("model output failed schema validation",
				zap.String("operation", c.op.String()),
				zap.String("model", c.model),
				zap.Error(verr),
			)
			return "", malformedOutput(c.op, s.provider.Name(), verr)
		}
		s.store(ctx, key, text)
	}

	s.metrics.RecordGeneration(c.op.String(), c.model, "success", duration, promptTokens, resp.Usage.CompletionTokens)
	span.SetAttributes(
		attribute.Int("llm.tokens.prompt", promptTokens),
		attribute.Int("llm.tokens.completion", resp.Usage.CompletionTokens),
		attribute.Bool("studio.empty_output", strings.TrimSpace(text) == ""),
	)
	s.logger.Debug("generation completed",
		zap.String("operation", c.op.String()),
		zap.String("model", c.model),
		zap.Duration("duration", duration),
		zap.Int("prompt_tokens", promptTokens),
	)
	return text, nil
}

func (s *Service) store(ctx context.Context, key, text string) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, text, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("cache store failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) promptTokenizer(model string) tokenizer.Tokenizer {
	if s.tokenizer != nil {
		return s.tokenizer
	}
	return tokenizer.GetTokenizerOrEstimator(model)
}

type nopMetrics struct{}

func (nopMetrics) RecordGeneration(string, string, string, time.Duration, int, int) {}
func (nopMetrics) GenerationStarted(string) func()                                  { return func() {} }
func (nopMetrics) RecordCollapsed(string)                                           {}
func (nopMetrics) RecordPromptEstimate(string, int)                                 {}
func (nopMetrics) RecordCacheHit(string)                                            {}
func (nopMetrics) RecordCacheMiss(string)                                           {}
