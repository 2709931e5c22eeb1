// =============================================================================
// 📦 测试数据工厂 - 模型响应测试数据
// =============================================================================
// 提供预定义的生成结果与 ChatResponse，用于测试
// =============================================================================
package fixtures

import (
	"encoding/json"
	"time"

	"github.com/BaSui01/creatorstudio/llm"
	"github.com/BaSui01/creatorstudio/types"
)

// =============================================================================
// 🎬 生成结果样例
// =============================================================================

// SampleIdeas 返回 5 条视频创意
func SampleIdeas() []types.VideoIdea {
	return []types.VideoIdea{
		{Title: "I Tried Every Budget Espresso Machine", Description: "Side-by-side taste test of five machines under $200.", ViralScore: 92, TargetAudience: "Home baristas on a budget"},
		{Title: "Latte Art in 60 Seconds", Description: "Fast tutorial for the three easiest pours.", ViralScore: 85, TargetAudience: "Beginner baristas"},
		{Title: "Why Your Coffee Tastes Bitter", Description: "Extraction explained with a refractometer.", ViralScore: 78, TargetAudience: "Coffee nerds"},
		{Title: "Cold Brew vs Iced Coffee", Description: "Blind test with friends.", ViralScore: 71, TargetAudience: "Summer coffee drinkers"},
		{Title: "The $5 Grinder Upgrade", Description: "A cheap mod that improves grind consistency.", ViralScore: 66, TargetAudience: "Tinkerers"},
	}
}

// SampleScript 返回三段式脚本
func SampleScript() []types.ScriptSection {
	return []types.ScriptSection{
		{Heading: "Intro", Content: "Today we are ranking every budget espresso machine.", VisualCue: "Fast cuts of five machines on a counter"},
		{Heading: "Point 1", Content: "First up, the cheapest one.", VisualCue: "Close-up of the portafilter"},
		{Heading: "Outro", Content: "Subscribe for part two.", VisualCue: "End screen with subscribe button"},
	}
}

// SampleMetadata 返回 SEO 元数据
func SampleMetadata() *types.GeneratedMetadata {
	return &types.GeneratedMetadata{
		Titles:      []string{"Budget Espresso Showdown", "I Ranked 5 Cheap Espresso Machines"},
		Description: "We tested five espresso machines under $200. The winner surprised us.",
		Tags:        []string{"espresso", "coffee", "budget", "review"},
	}
}

// JSONText 将值编码为模型响应文本
func JSONText(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// =============================================================================
// 🎯 ChatResponse 工厂
// =============================================================================

// SimpleResponse 返回简单的文本响应
func SimpleResponse(content string) *llm.ChatResponse {
	return &llm.ChatResponse{
		ID:       "resp-001",
		Provider: "mock",
		Model:    "gemini-2.5-flash",
		Choices: []llm.ChatChoice{
			{
				Index:        0,
				FinishReason: "STOP",
				Message: llm.Message{
					Role:    llm.RoleAssistant,
					Content: content,
				},
			},
		},
		Usage:     SmallUsage(),
		CreatedAt: time.Now(),
	}
}

// ResponseWithUsage 返回带自定义 Token 使用量的响应
func ResponseWithUsage(content string, promptTokens, completionTokens int) *llm.ChatResponse {
	resp := SimpleResponse(content)
	resp.Usage = CustomUsage(promptTokens, completionTokens)
	return resp
}

// EmptyResponse 返回没有候选项的响应
func EmptyResponse() *llm.ChatResponse {
	resp := SimpleResponse("")
	resp.Choices = nil
	return resp
}

// =============================================================================
// 📊 Token 使用量
// =============================================================================

// SmallUsage 小量 token 使用
func SmallUsage() llm.ChatUsage {
	return CustomUsage(10, 20)
}

// CustomUsage 自定义 token 使用量
func CustomUsage(prompt, completion int) llm.ChatUsage {
	return llm.ChatUsage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      prompt + completion,
	}
}
