package parser

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestFirstText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		rules    []Rule
		expected string
		found    bool
	}{
		{
			name: "first rule wins",
			html: `<div><a class="product-item-link">Vis inox M6</a><h2 class="title">Other</h2></div>`,
			rules: []Rule{
				{Tags: []string{"a"}, ClassContains: []string{"product-item-link"}},
				{Tags: []string{"h2"}, ClassContains: []string{"title"}},
			},
			expected: "Vis inox M6",
			found:    true,
		},
		{
			name: "falls through to second rule",
			html: `<div><h3 class="product-title">Joint torique</h3></div>`,
			rules: []Rule{
				{Tags: []string{"a"}, ClassContains: []string{"product-item-link"}},
				{Tags: []string{"h2", "h3", "a"}, ClassContains: []string{"title", "name"}},
			},
			expected: "Joint torique",
			found:    true,
		},
		{
			name: "class match is case-insensitive substring",
			html: `<div><span class="ProductPriceBig">12,50</span></div>`,
			rules: []Rule{
				{Tags: []string{"span"}, ClassContains: []string{"price"}},
			},
			expected: "12,50",
			found:    true,
		},
		{
			name: "empty tags matches any element",
			html: `<div><section class="stock-level">En stock</section></div>`,
			rules: []Rule{
				{ClassContains: []string{"stock"}},
			},
			expected: "En stock",
			found:    true,
		},
		{
			name: "element with empty text is skipped",
			html: `<div><span class="price"> </span><div class="price-final">9,99</div></div>`,
			rules: []Rule{
				{Tags: []string{"span"}, ClassContains: []string{"price"}},
				{Tags: []string{"div"}, ClassContains: []string{"price"}},
			},
			expected: "9,99",
			found:    true,
		},
		{
			name: "no match",
			html: `<div><p>nothing relevant</p></div>`,
			rules: []Rule{
				{Tags: []string{"span"}, ClassContains: []string{"price"}},
			},
			expected: "",
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromHTML(t, tt.html)
			text, ok := FirstText(doc.Selection, tt.rules)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestFindContainer(t *testing.T) {
	rules := []Rule{
		{Tags: []string{"div"}, ClassContains: []string{"product-card"}},
		{Tags: []string{"article"}, ClassContains: []string{"product"}},
	}

	t.Run("primary container", func(t *testing.T) {
		doc := docFromHTML(t, `<body><div class="product-card"><span class="price">5,00</span></div></body>`)
		container, ok := FindContainer(doc, rules)
		require.True(t, ok)
		assert.Equal(t, "5,00", container.Find("span").Text())
	})

	t.Run("fallback container", func(t *testing.T) {
		doc := docFromHTML(t, `<body><article class="product featured"><h2 class="title">Gant</h2></article></body>`)
		container, ok := FindContainer(doc, rules)
		require.True(t, ok)
		assert.Equal(t, "Gant", container.Find("h2").Text())
	})

	t.Run("no container", func(t *testing.T) {
		doc := docFromHTML(t, `<body><p>Aucun résultat</p></body>`)
		_, ok := FindContainer(doc, rules)
		assert.False(t, ok)
	})
}
