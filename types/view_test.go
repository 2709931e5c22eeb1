package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want AppView
	}{
		{"DASHBOARD", ViewDashboard},
		{"ideation", ViewIdeation},
		{" Scripting ", ViewScripting},
		{"METADATA", ViewMetadata},
		{"", ViewDashboard},
		{"analytics", ViewDashboard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseView(tt.in), "input %q", tt.in)
	}
}

func TestViewForPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ViewDashboard, ViewForPath("/"))
	assert.Equal(t, ViewDashboard, ViewForPath(""))
	assert.Equal(t, ViewIdeation, ViewForPath("/ideas"))
	assert.Equal(t, ViewIdeation, ViewForPath("/ideas/"))
	assert.Equal(t, ViewScripting, ViewForPath("/scripts"))
	assert.Equal(t, ViewMetadata, ViewForPath("/seo"))
	assert.Equal(t, ViewDashboard, ViewForPath("/unknown"))
}

func TestNavItems_OrderAndLabels(t *testing.T) {
	t.Parallel()

	items := NavItems()
	labels := make([]string, 0, len(items))
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	assert.Equal(t, []string{"Dashboard", "Ideas", "Scripts", "SEO"}, labels)

	// 返回的是副本
	items[0].Label = "changed"
	assert.Equal(t, "Dashboard", NavItems()[0].Label)
}

func TestAppView_LabelAndPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SEO", ViewMetadata.Label())
	assert.Equal(t, "/scripts", ViewScripting.Path())
	assert.Equal(t, "Dashboard", AppView("bogus").Label())
	assert.Equal(t, "/", AppView("bogus").Path())
}
