package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSeries = []Series{
	{
		Name: "Vendas",
		Points: []Point{
			{Label: "Jan", Value: 12},
			{Label: "Fev", Value: 18},
		},
	},
}

func Test_Render__should_return_chart_html(t *testing.T) {
	renderer := NewBarRenderer("")

	html, err := renderer.Render("sales", "Vendas por mês", []string{"Jan", "Fev"}, testSeries)

	assert.NoError(t, err)
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Vendas por mês")
}

func Test_Render__should_return_error_when_series_empty(t *testing.T) {
	renderer := NewBarRenderer("")

	_, err := renderer.Render("empty", "Nothing", []string{"Jan"}, nil)

	assert.Error(t, err)
}

func Test_Render__should_reuse_cached_html_for_same_key(t *testing.T) {
	renderer := NewBarRenderer("dark")

	first, err := renderer.Render("sales", "First title", []string{"Jan", "Fev"}, testSeries)
	assert.NoError(t, err)

	second, err := renderer.Render("sales", "Second title", []string{"Jan", "Fev"}, testSeries)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotContains(t, second, "Second title")
}

func Test_NewBarRenderer__should_default_theme(t *testing.T) {
	assert.Equal(t, "westeros", NewBarRenderer("").theme)
	assert.Equal(t, "dark", NewBarRenderer("dark").theme)
}
