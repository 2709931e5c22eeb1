package handlers

import (
	"net/http"

	"github.com/BaSui01/creatorstudio/api"
	"github.com/BaSui01/creatorstudio/dashboard"
	"github.com/BaSui01/creatorstudio/types"
	"go.uber.org/zap"
)

// DashboardHandler 仪表盘与导航
type DashboardHandler struct {
	logger *zap.Logger
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{logger: logger.With(zap.String("handler", "dashboard"))}
}

// HandleDashboard 处理 GET /api/v1/dashboard
// @Summary 频道概览
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} Response{data=dashboard.Overview}
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	WriteSuccess(w, r, dashboard.GetOverview())
}

// HandleViews 处理 GET /api/v1/views
// @Summary 导航项
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} Response{data=api.ViewsResponse}
// @Router /api/v1/views [get]
func (h *DashboardHandler) HandleViews(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	WriteSuccess(w, r, api.ViewsResponse{Views: types.NavItems()})
}
