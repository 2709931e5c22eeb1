package handlers

import (
	"context"
	"net/http"

	"github.com/BaSui01/creatorstudio/api"
	"github.com/BaSui01/creatorstudio/studio"
	"github.com/BaSui01/creatorstudio/types"
	"go.uber.org/zap"
)

// =============================================================================
// 🎬 生成接口 Handler
// =============================================================================

// Generator 三个生成操作，由 *studio.Service 实现
type Generator interface {
	GenerateVideoIdeas(ctx context.Context, niche string) ([]types.VideoIdea, error)
	GenerateScript(ctx context.Context, title string) ([]types.ScriptSection, error)
	OptimizeMetadata(ctx context.Context, description string) (*types.GeneratedMetadata, error)
}

// StudioHandler 生成接口处理器
type StudioHandler struct {
	generator Generator
	logger    *zap.Logger
}

// NewStudioHandler 创建生成接口处理器
func NewStudioHandler(generator Generator, logger *zap.Logger) *StudioHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudioHandler{
		generator: generator,
		logger:    logger.With(zap.String("handler", "studio")),
	}
}

// decodeRequest 方法、Content-Type 与请求体校验，失败时已写出响应
func (h *StudioHandler) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !RequireMethod(w, r, http.MethodPost, h.logger) {
		return false
	}
	if !ValidateContentType(w, r, h.logger) {
		return false
	}
	return DecodeJSONBody(w, r, dst, h.logger) == nil
}

// HandleIdeas 处理 POST /api/v1/ideas
// @Summary 生成视频创意
// @Tags 生成
// @Accept json
// @Produce json
// @Param request body api.IdeasRequest true "领域"
// @Success 200 {object} Response{data=api.IdeasResponse}
// @Failure 400 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/ideas [post]
func (h *StudioHandler) HandleIdeas(w http.ResponseWriter, r *http.Request) {
	var req api.IdeasRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	ideas, err := h.generator.GenerateVideoIdeas(r.Context(), req.Niche)
	if err != nil {
		WriteServiceError(w, r, err, h.logger)
		return
	}
	WriteSuccess(w, r, api.IdeasResponse{Ideas: ideas})
}

// HandleScript 处理 POST /api/v1/scripts
// @Summary 生成分段脚本
// @Tags 生成
// @Accept json
// @Produce json
// @Param request body api.ScriptRequest true "标题"
// @Success 200 {object} Response{data=api.ScriptResponse}
// @Failure 400 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/scripts [post]
func (h *StudioHandler) HandleScript(w http.ResponseWriter, r *http.Request) {
	var req api.ScriptRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	sections, err := h.generator.GenerateScript(r.Context(), req.Title)
	if err != nil {
		WriteServiceError(w, r, err, h.logger)
		return
	}
	WriteSuccess(w, r, api.ScriptResponse{
		Sections: sections,
		Markdown: studio.ScriptMarkdown(sections),
	})
}

// HandleMetadata 处理 POST /api/v1/metadata
// @Summary 优化 SEO 元数据
// @Tags 生成
// @Accept json
// @Produce json
// @Param request body api.MetadataRequest true "视频描述"
// @Success 200 {object} Response{data=api.MetadataResponse}
// @Failure 400 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/metadata [post]
func (h *StudioHandler) HandleMetadata(w http.ResponseWriter, r *http.Request) {
	var req api.MetadataRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	meta, err := h.generator.OptimizeMetadata(r.Context(), req.Description)
	if err != nil {
		WriteServiceError(w, r, err, h.logger)
		return
	}
	WriteSuccess(w, r, api.MetadataResponse{Metadata: meta})
}
