package api

import "github.com/BaSui01/creatorstudio/types"

// =============================================================================
// 🎬 生成接口请求/响应
// =============================================================================

// IdeasRequest 视频创意生成请求
// @Description 视频创意生成请求
type IdeasRequest struct {
	// 频道领域，例如 "home espresso"
	Niche string `json:"niche" example:"home espresso" binding:"required"`
}

// IdeasResponse 视频创意生成响应
type IdeasResponse struct {
	Ideas []types.VideoIdea `json:"ideas"`
}

// ScriptRequest 脚本生成请求
// @Description 脚本生成请求
type ScriptRequest struct {
	// 视频标题
	Title string `json:"title" example:"I Tried Every Budget Espresso Machine" binding:"required"`
}

// ScriptResponse 脚本生成响应，Markdown 为可直接复制的导出文本
type ScriptResponse struct {
	Sections []types.ScriptSection `json:"sections"`
	Markdown string                `json:"markdown"`
}

// MetadataRequest SEO 元数据优化请求
// @Description SEO 元数据优化请求
type MetadataRequest struct {
	// 视频内容描述
	Description string `json:"description" example:"ranking five espresso machines under $200" binding:"required"`
}

// MetadataResponse SEO 元数据优化响应，模型返回空输出时 metadata 为 null
type MetadataResponse struct {
	Metadata *types.GeneratedMetadata `json:"metadata"`
}

// =============================================================================
// 🧭 导航
// =============================================================================

// ViewsResponse 侧边栏导航项
type ViewsResponse struct {
	Views []types.NavItem `json:"views"`
}

// VersionInfo 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}
