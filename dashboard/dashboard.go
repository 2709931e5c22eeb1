package dashboard

import (
	"strconv"
	"strings"

	"github.com/BaSui01/creatorstudio/types"
)

// =============================================================================
// 📊 频道概览（固定演示数据）
// =============================================================================

// Trend 指标变化方向
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// TrendOf 以 "+" 开头的变化量视为上升，其余视为下降
func TrendOf(delta string) Trend {
	if strings.HasPrefix(delta, "+") {
		return TrendUp
	}
	return TrendDown
}

// StatCard 概览卡片
type StatCard struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Change     string `json:"change"`
	Trend      Trend  `json:"trend"`
	Comparison string `json:"comparison"`
}

// Suggestion 最近的 AI 建议
type Suggestion struct {
	Title string `json:"title"`
	Age   string `json:"age"`
}

// PlanUsage 套餐用量
type PlanUsage struct {
	Plan    string `json:"plan"`
	Used    int    `json:"used"`
	Limit   int    `json:"limit"`
	Percent int    `json:"percent"`
}

// Overview 仪表盘视图的全部数据
type Overview struct {
	Greeting     string                `json:"greeting"`
	Heading      string                `json:"heading"`
	PeriodLabel  string                `json:"period_label"`
	Stats        []StatCard            `json:"stats"`
	Weekly       []types.AnalyticsData `json:"weekly"`
	Suggestions  []Suggestion          `json:"suggestions"`
	QuickActions []string              `json:"quick_actions"`
	Plan         PlanUsage             `json:"plan"`
}

const comparisonLabel = "vs last week"

var (
	weekDays   = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	weekViews  = []int{1200, 1500, 1100, 2400, 1800, 3200, 4500}
	weekSubs   = []int{10, 15, 8, 45, 20, 60, 90}
	actionList = []string{"New Script", "Keyword Research", "Community Post", "Analyze Competitor"}
)

// WeeklySeries 返回周一到周日的频道数据
func WeeklySeries() []types.AnalyticsData {
	out := make([]types.AnalyticsData, len(weekDays))
	for i, day := range weekDays {
		out[i] = types.AnalyticsData{Day: day, Views: weekViews[i], Subs: weekSubs[i]}
	}
	return out
}

// TotalViews 周播放量合计
func TotalViews(series []types.AnalyticsData) int {
	total := 0
	for _, d := range series {
		total += d.Views
	}
	return total
}

// NewPlanUsage 计算用量百分比，limit 非正时为 0
func NewPlanUsage(plan string, used, limit int) PlanUsage {
	p := PlanUsage{Plan: plan, Used: used, Limit: limit}
	if limit > 0 {
		p.Percent = used * 100 / limit
	}
	return p
}

// GetOverview 构建仪表盘数据，每次返回新值
func GetOverview() Overview {
	weekly := WeeklySeries()
	return Overview{
		Greeting:    "Welcome back, Creator.",
		Heading:     "Channel Overview",
		PeriodLabel: "Last 7 Days",
		Stats: []StatCard{
			newStat("Views", CompactNumber(TotalViews(weekly)), "+12%"),
			newStat("Subs", GroupThousands(1240), "+2.5%"),
			newStat("Watch Time", "940h", "+8%"),
			newStat("Revenue", "$420", "+15%"),
		},
		Weekly: weekly,
		Suggestions: []Suggestion{
			{Title: `Title optimization for "Vlog #42"`, Age: "2 hours ago"},
			{Title: `Title optimization for "Vlog #42"`, Age: "2 hours ago"},
			{Title: `Title optimization for "Vlog #42"`, Age: "2 hours ago"},
		},
		QuickActions: append([]string(nil), actionList...),
		Plan:         NewPlanUsage("Pro Plan", 750, 1000),
	}
}

func newStat(title, value, change string) StatCard {
	return StatCard{
		Title:      title,
		Value:      value,
		Change:     change,
		Trend:      TrendOf(change),
		Comparison: comparisonLabel,
	}
}

// =============================================================================
// 🔢 数字格式化
// =============================================================================

// CompactNumber 1 位小数的紧凑格式：15700 -> "15.7K"，2500000 -> "2.5M"，小于 1000 原样输出
func CompactNumber(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	switch {
	case n >= 1_000_000:
		return sign + oneDecimal(n, 1_000_000) + "M"
	case n >= 1_000:
		return sign + oneDecimal(n, 1_000) + "K"
	default:
		return sign + strconv.Itoa(n)
	}
}

// oneDecimal 截断到 1 位小数并去掉 ".0"
func oneDecimal(n, unit int) string {
	tenths := n * 10 / unit
	s := strconv.Itoa(tenths / 10)
	if frac := tenths % 10; frac != 0 {
		s += "." + strconv.Itoa(frac)
	}
	return s
}

// GroupThousands 千位分隔：1240 -> "1,240"
func GroupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
