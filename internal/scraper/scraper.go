package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/sectorem/tarificateur/internal/models"
	"github.com/sectorem/tarificateur/internal/parser"
)

// Adapter looks up a product reference on one supplier site. Lookup never
// returns a Go error and never panics: every outcome, including upstream
// failures, is encoded in the record.
type Adapter interface {
	Name() string
	Lookup(ctx context.Context, reference string) models.ProductRecord
}

// site holds the per-supplier variation: the search endpoint template and
// the selector rule chains. The lookup flow itself is identical for every
// supplier.
type site struct {
	name              string
	searchURL         string // fmt template with one %s for the escaped reference
	containerRules    []parser.Rule
	designationRules  []parser.Rule
	priceRules        []parser.Rule
	availabilityRules []parser.Rule
}

// SiteAdapter implements Adapter for one configured retail site.
type SiteAdapter struct {
	site   site
	client *Client
	logger *slog.Logger
}

func newSiteAdapter(s site, client *Client, logger *slog.Logger) *SiteAdapter {
	return &SiteAdapter{
		site:   s,
		client: client,
		logger: logger.With("component", "scraper", "supplier", s.name),
	}
}

func (a *SiteAdapter) Name() string {
	return a.site.name
}

// Lookup issues the search request, locates the product container and
// extracts designation, price and availability.
func (a *SiteAdapter) Lookup(ctx context.Context, reference string) (rec models.ProductRecord) {
	rec = models.NewRecord(reference, a.site.name)
	defer func() {
		if p := recover(); p != nil {
			a.logger.Error("lookup panicked", "reference", reference, "panic", p)
			rec = models.NewRecord(reference, a.site.name)
			rec.Error = Failure{Kind: FailureInternal, Detail: fmt.Sprint(p)}.Message()
		}
	}()

	searchURL := fmt.Sprintf(a.site.searchURL, url.QueryEscape(reference))
	a.logger.Info("searching supplier", "reference", reference, "url", searchURL)

	resp, err := a.client.Get(ctx, searchURL)
	if err != nil {
		a.logger.Warn("search request failed", "reference", reference, "error", err)
		rec.Error = classify(err).Message()
		return rec
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rec.Error = Failure{Kind: FailureHTTPStatus, Status: resp.StatusCode}.Message()
		return rec
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		rec.Error = Failure{Kind: FailureInternal, Detail: err.Error()}.Message()
		return rec
	}

	container, ok := parser.FindContainer(doc, a.site.containerRules)
	if !ok {
		rec.Error = Failure{Kind: FailureNotFound}.Message()
		return rec
	}

	rec.Designation = parser.DesignationFallback
	if text, ok := parser.FirstText(container, a.site.designationRules); ok {
		rec.Designation = text
	}

	if text, ok := parser.FirstText(container, a.site.priceRules); ok {
		if price, ok := parser.ParsePrice(text); ok {
			rec.Price = &price
		}
	}

	rec.Availability = parser.AvailabilityFallback
	if text, ok := parser.FirstText(container, a.site.availabilityRules); ok {
		rec.Availability = text
	}

	return rec
}
