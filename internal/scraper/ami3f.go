package scraper

import (
	"log/slog"

	"github.com/sectorem/tarificateur/internal/models"
	"github.com/sectorem/tarificateur/internal/parser"
)

// NewAmi3f builds the adapter for ami3f.com. The site has shipped two
// different results layouts, so the container chain tries div.product-card
// first and falls back to article.product.
func NewAmi3f(baseURL string, client *Client, logger *slog.Logger) *SiteAdapter {
	return newSiteAdapter(site{
		name:      models.SupplierAmi3f,
		searchURL: baseURL + "/recherche?q=%s",
		containerRules: []parser.Rule{
			{Tags: []string{"div"}, ClassContains: []string{"product-card"}},
			{Tags: []string{"article"}, ClassContains: []string{"product"}},
		},
		designationRules: []parser.Rule{
			{Tags: []string{"h2", "h3", "a"}, ClassContains: []string{"title", "name"}},
		},
		priceRules: []parser.Rule{
			{Tags: []string{"span", "div"}, ClassContains: []string{"price"}},
		},
		availabilityRules: []parser.Rule{
			{Tags: []string{"span", "div"}, ClassContains: []string{"stock", "availability"}},
		},
	}, client, logger)
}
