package types

import "strings"

// AppView identifies one of the dashboard views.
type AppView string

const (
	ViewDashboard AppView = "DASHBOARD"
	ViewIdeation  AppView = "IDEATION"
	ViewScripting AppView = "SCRIPTING"
	ViewMetadata  AppView = "METADATA"
)

// NavItem 侧边栏导航项
type NavItem struct {
	View  AppView `json:"view"`
	Label string  `json:"label"`
	Path  string  `json:"path"`
}

var navItems = []NavItem{
	{View: ViewDashboard, Label: "Dashboard", Path: "/"},
	{View: ViewIdeation, Label: "Ideas", Path: "/ideas"},
	{View: ViewScripting, Label: "Scripts", Path: "/scripts"},
	{View: ViewMetadata, Label: "SEO", Path: "/seo"},
}

// NavItems returns the navigation items in display order.
func NavItems() []NavItem {
	out := make([]NavItem, len(navItems))
	copy(out, navItems)
	return out
}

// ParseView 解析视图名（大小写不敏感），未知值回落到 Dashboard
func ParseView(s string) AppView {
	switch v := AppView(strings.ToUpper(strings.TrimSpace(s))); v {
	case ViewDashboard, ViewIdeation, ViewScripting, ViewMetadata:
		return v
	default:
		return ViewDashboard
	}
}

// ViewForPath 根据 URL 路径查找视图，未知路径回落到 Dashboard
func ViewForPath(path string) AppView {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return ViewDashboard
	}
	for _, item := range navItems {
		if item.Path == path {
			return item.View
		}
	}
	return ViewDashboard
}

// Label returns the navigation label of the view.
func (v AppView) Label() string {
	for _, item := range navItems {
		if item.View == v {
			return item.Label
		}
	}
	return navItems[0].Label
}

// Path returns the URL path that renders the view.
func (v AppView) Path() string {
	for _, item := range navItems {
		if item.View == v {
			return item.Path
		}
	}
	return navItems[0].Path
}
