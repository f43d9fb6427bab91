package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Rule describes one candidate selector: an element whose tag name is in
// Tags (empty means any tag) and whose class attribute contains any of
// ClassContains as a case-insensitive substring. Retailer markup drifts
// without notice, so extraction works through ordered rule chains rather
// than exact selectors.
type Rule struct {
	Tags          []string
	ClassContains []string
}

func (r Rule) selector() string {
	if len(r.Tags) == 0 {
		return "*"
	}
	return strings.Join(r.Tags, ", ")
}

func (r Rule) classMatches(class string) bool {
	if len(r.ClassContains) == 0 {
		return true
	}
	class = strings.ToLower(class)
	for _, want := range r.ClassContains {
		if strings.Contains(class, strings.ToLower(want)) {
			return true
		}
	}
	return false
}

// find returns the first element under root matching the rule.
func (r Rule) find(root *goquery.Selection) *goquery.Selection {
	var found *goquery.Selection
	root.Find(r.selector()).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		if r.classMatches(class) {
			found = s
			return false
		}
		return true
	})
	return found
}

// FirstText evaluates the rule chain in order and returns the trimmed text
// of the first match that carries any text. The second return value is
// false when no rule produced a value.
func FirstText(root *goquery.Selection, rules []Rule) (string, bool) {
	for _, rule := range rules {
		el := rule.find(root)
		if el == nil {
			continue
		}
		if text := strings.TrimSpace(el.Text()); text != "" {
			return text, true
		}
	}
	return "", false
}

// FindContainer locates the product container on a search-results page,
// trying each rule in order.
func FindContainer(doc *goquery.Document, rules []Rule) (*goquery.Selection, bool) {
	for _, rule := range rules {
		if el := rule.find(doc.Selection); el != nil {
			return el, true
		}
	}
	return nil, false
}
