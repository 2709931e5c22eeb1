package studio

import "strings"

// Operation 标识一种生成操作，同时用作指标与缓存键的标签
type Operation string

const (
	OpIdeas    Operation = "ideas"
	OpScript   Operation = "script"
	OpMetadata Operation = "metadata"
)

func (o Operation) String() string { return string(o) }

// =============================================================================
// 📝 Prompt 模板
// =============================================================================
// 用户输入原样嵌入双引号内，不做转义或裁剪。

// IdeasPrompt 构建视频创意 prompt
func IdeasPrompt(niche string) string {
	return `Generate 5 distinct, high-potential YouTube video ideas for the niche: "` + niche +
		`". Focus on trending topics and high click-through potential.`
}

// ScriptPrompt 构建脚本 prompt
func ScriptPrompt(title string) string {
	return strings.Join([]string{
		`Write a structured YouTube video script for a video titled: "` + title + `".`,
		`Break it down into sections (Intro, Body Paragraphs, Outro).`,
		`Include visual cues for the editor.`,
	}, "\n")
}

// MetadataPrompt 构建 SEO 元数据 prompt
func MetadataPrompt(description string) string {
	return strings.Join([]string{
		`Optimize YouTube metadata for a video about: "` + description + `".`,
		`Provide 5 click-bait yet accurate titles, a SEO-optimized description (first 2 sentences are crucial), and a list of 15 relevant tags.`,
	}, "\n")
}
