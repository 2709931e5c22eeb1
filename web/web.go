package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/BaSui01/creatorstudio/dashboard"
	"github.com/BaSui01/creatorstudio/studio"
	"github.com/BaSui01/creatorstudio/types"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const htmlContentType = "text/html; charset=utf-8"

// 生成失败时页面展示的提示
const (
	ideasFailedAlert    = "Failed to generate ideas. Please check your API key or try again."
	scriptFailedAlert   = "Script generation failed."
	metadataFailedAlert = "Optimization failed."
)

// =============================================================================
// 🖥️ 页面数据
// =============================================================================

// Generator 页面调用的生成操作，由 *studio.Service 实现
type Generator interface {
	GenerateVideoIdeas(ctx context.Context, niche string) ([]types.VideoIdea, error)
	GenerateScript(ctx context.Context, title string) ([]types.ScriptSection, error)
	OptimizeMetadata(ctx context.Context, description string) (*types.GeneratedMetadata, error)
}

// Page 所有模板共享的数据
type Page struct {
	Title  string
	Active types.AppView
	Nav    []types.NavItem
	Plan   dashboard.PlanUsage

	// 表单回显与错误提示
	Input string
	Alert string

	Overview *dashboard.Overview
	Ideas    []types.VideoIdea
	Sections []types.ScriptSection
	Markdown string
	Metadata *types.GeneratedMetadata
}

// =============================================================================
// 🎯 Handler
// =============================================================================

// Handler 服务端渲染的页面
type Handler struct {
	generator Generator
	pages     map[types.AppView]*template.Template
	logger    *zap.Logger
}

// NewHandler 解析内嵌模板，模板错误在启动时暴露
func NewHandler(generator Generator, logger *zap.Logger) (*Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	files := map[types.AppView]string{
		types.ViewDashboard: "templates/dashboard.html",
		types.ViewIdeation:  "templates/ideas.html",
		types.ViewScripting: "templates/scripts.html",
		types.ViewMetadata:  "templates/seo.html",
	}

	pages := make(map[types.AppView]*template.Template, len(files))
	for view, file := range files {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, err
		}
		pages[view] = tmpl
	}

	return &Handler{
		generator: generator,
		pages:     pages,
		logger:    logger.With(zap.String("component", "web")),
	}, nil
}

// Register 在 mux 上注册页面与静态资源路由
func (h *Handler) Register(mux *http.ServeMux) {
	static, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	mux.HandleFunc("GET /{$}", h.handleDashboard)
	mux.HandleFunc("GET /ideas", h.handleIdeas)
	mux.HandleFunc("POST /ideas", h.handleIdeas)
	mux.HandleFunc("GET /scripts", h.handleScripts)
	mux.HandleFunc("POST /scripts", h.handleScripts)
	mux.HandleFunc("GET /seo", h.handleSEO)
	mux.HandleFunc("POST /seo", h.handleSEO)
}

func (h *Handler) newPage(view types.AppView) *Page {
	return &Page{
		Title:  view.Label(),
		Active: view,
		Nav:    types.NavItems(),
		Plan:   dashboard.GetOverview().Plan,
	}
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(types.ViewDashboard)
	overview := dashboard.GetOverview()
	page.Overview = &overview
	h.render(w, page)
}

func (h *Handler) handleIdeas(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(types.ViewIdeation)
	if input, ok := formInput(r, "niche"); ok {
		page.Input = input
		ideas, err := h.generator.GenerateVideoIdeas(r.Context(), input)
		if err != nil {
			h.logger.Warn("ideas page generation failed", zap.Error(err))
			page.Alert = ideasFailedAlert
		} else {
			page.Ideas = ideas
		}
	}
	h.render(w, page)
}

func (h *Handler) handleScripts(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(types.ViewScripting)
	if input, ok := formInput(r, "title"); ok {
		page.Input = input
		sections, err := h.generator.GenerateScript(r.Context(), input)
		if err != nil {
			h.logger.Warn("script page generation failed", zap.Error(err))
			page.Alert = scriptFailedAlert
		} else {
			page.Sections = sections
			page.Markdown = studio.ScriptMarkdown(sections)
		}
	}
	h.render(w, page)
}

func (h *Handler) handleSEO(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(types.ViewMetadata)
	if input, ok := formInput(r, "description"); ok {
		page.Input = input
		meta, err := h.generator.OptimizeMetadata(r.Context(), input)
		if err != nil {
			h.logger.Warn("metadata page generation failed", zap.Error(err))
			page.Alert = metadataFailedAlert
		} else {
			page.Metadata = meta
		}
	}
	h.render(w, page)
}

// formInput 读取 POST 表单字段。GET 或空白输入返回 false，页面只回显表单。
func formInput(r *http.Request, field string) (string, bool) {
	if r.Method != http.MethodPost {
		return "", false
	}
	value := r.PostFormValue(field)
	if strings.TrimSpace(value) == "" {
		return value, false
	}
	return value, true
}

// render 先渲染到缓冲区，模板出错时不会写出半个页面
func (h *Handler) render(w http.ResponseWriter, page *Page) {
	var buf bytes.Buffer
	if err := h.pages[page.Active].Execute(&buf, page); err != nil {
		h.logger.Error("render page failed", zap.String("view", string(page.Active)), zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	_, _ = buf.WriteTo(w)
}

// =============================================================================
// 🔧 模板函数
// =============================================================================

var funcs = template.FuncMap{
	// barHeight 柱状图高度百分比，最小 2% 以保证可见
	"barHeight": func(v int, series []types.AnalyticsData) int {
		peak := 0
		for _, d := range series {
			if d.Views > peak {
				peak = d.Views
			}
		}
		if peak == 0 {
			return 0
		}
		if p := v * 100 / peak; p > 2 {
			return p
		}
		return 2
	},
	"inc": func(i int) int { return i + 1 },
}
