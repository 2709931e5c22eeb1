package types

// =============================================================================
// 🎬 创作内容类型
// =============================================================================
// JSON 字段名即模型响应 schema 的属性名，不可随意修改。

// VideoIdea 单条视频创意
type VideoIdea struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ViralScore     float64 `json:"viralScore"` // 1-100
	TargetAudience string  `json:"targetAudience"`
}

// ScriptSection 脚本分段
type ScriptSection struct {
	Heading   string `json:"heading"`
	Content   string `json:"content"`
	VisualCue string `json:"visualCue"`
}

// GeneratedMetadata SEO 元数据
type GeneratedMetadata struct {
	Titles      []string `json:"titles"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// AnalyticsData 单日频道数据点
type AnalyticsData struct {
	Day   string `json:"day"`
	Views int    `json:"views"`
	Subs  int    `json:"subs"`
}
