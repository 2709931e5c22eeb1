package studio

import (
	"strings"

	"github.com/BaSui01/creatorstudio/types"
)

const sectionSeparator = "\n\n---\n\n"

// ScriptMarkdown 将脚本分段渲染为可复制的 Markdown 文本
//
//	## <heading>
//
//	[Visual: <visualCue>]
//
//	<content>
//
// 分段之间以水平线分隔，空输入返回空字符串。
func ScriptMarkdown(sections []types.ScriptSection) string {
	if len(sections) == 0 {
		return ""
	}
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, "## "+s.Heading+"\n\n[Visual: "+s.VisualCue+"]\n\n"+s.Content)
	}
	return strings.Join(parts, sectionSeparator)
}
