package scraper

import (
	"log/slog"

	"github.com/sectorem/tarificateur/internal/models"
	"github.com/sectorem/tarificateur/internal/parser"
)

// NewLuxior builds the adapter for luxior.fr, a Magento storefront. The
// search results page wraps each hit in div.product-item-info.
func NewLuxior(baseURL string, client *Client, logger *slog.Logger) *SiteAdapter {
	return newSiteAdapter(site{
		name:      models.SupplierLuxior,
		searchURL: baseURL + "/catalogsearch/result/?q=%s",
		containerRules: []parser.Rule{
			{Tags: []string{"div"}, ClassContains: []string{"product-item-info"}},
		},
		designationRules: []parser.Rule{
			{Tags: []string{"a"}, ClassContains: []string{"product-item-link"}},
			{Tags: []string{"h2", "h3", "a"}, ClassContains: []string{"title", "name"}},
		},
		priceRules: []parser.Rule{
			{Tags: []string{"span"}, ClassContains: []string{"price"}},
			{Tags: []string{"div"}, ClassContains: []string{"price"}},
		},
		availabilityRules: []parser.Rule{
			{Tags: []string{"div"}, ClassContains: []string{"stock"}},
			{Tags: []string{"span"}, ClassContains: []string{"stock", "availability"}},
		},
	}, client, logger)
}
