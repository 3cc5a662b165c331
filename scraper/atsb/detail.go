package atsb

import (
	"strings"
	"unicode/utf8"

	"atsb-dashboard/utils"

	"github.com/PuerkitoBio/goquery"
)

const (
	// Paragraphs at or below this length are boilerplate/captions, not narrative
	minParagraphLen = 40
	// How many qualifying paragraphs make up the excerpt
	maxParagraphs = 4
	// Site name the ATSB appends to page titles
	siteNameSuffix = " | ATSB"
)

// FetchDetail retrieves a report detail page and returns its refined title
// and a short narrative excerpt. The excerpt may be empty when no paragraph
// qualifies; that is valid, not an error.
func (c *Client) FetchDetail(reportURL string) (string, string, error) {
	doc, err := c.fetchDocument(reportURL)
	if err != nil {
		return "", "", err
	}
	return extractTitle(doc), extractExcerpt(doc), nil
}

// extractTitle prefers the first h1, falls back to the title element, and
// strips the trailing site-name suffix
func extractTitle(doc *goquery.Document) string {
	heading := doc.Find("h1").First()
	if heading.Length() == 0 {
		heading = doc.Find("title").First()
	}
	return strings.TrimSuffix(utils.CleanText(heading.Text()), siteNameSuffix)
}

// extractExcerpt joins the first few sufficiently long paragraphs from the
// main content region (whole document when no main element exists) with
// blank lines
func extractExcerpt(doc *goquery.Document) string {
	scope := doc.Find("main")
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	var paragraphs []string
	scope.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := utils.CleanText(p.Text())
		if utf8.RuneCountInString(text) > minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < maxParagraphs
	})
	return strings.Join(paragraphs, "\n\n")
}
