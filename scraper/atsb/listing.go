package atsb

import (
	"sort"
	"strings"
	"time"

	"atsb-dashboard/models"
	"atsb-dashboard/utils"

	"github.com/PuerkitoBio/goquery"
)

// Hrefs of report links on the listing page all share this path fragment
const reportPathFragment = "/publications/investigation_reports/"

// Listing dates are printed day/month/year, e.g. "05/03/2024"
const listingDateLayout = "02/01/2006"

// FetchListing retrieves the investigation report index and returns up to
// limit summaries, most recent occurrence date first. Rows sharing a report
// number are deduplicated last-write-wins; rows whose date cannot be parsed
// sort as the oldest.
func (c *Client) FetchListing(limit int) ([]models.ReportSummary, error) {
	c.logger.Info("Fetching report listing: %s", c.listingURL)

	doc, err := c.fetchDocument(c.listingURL)
	if err != nil {
		return nil, err
	}

	items := c.parseListing(doc, limit)
	c.logger.Info("Listing parsed: %d reports (limit %d)", len(items), limit)
	return items, nil
}

func (c *Client) parseListing(doc *goquery.Document, limit int) []models.ReportSummary {
	dedup := utils.NewOrderedMap[models.ReportSummary]()

	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		links := row.Find(`a[href*="` + reportPathFragment + `"]`)
		if links.Length() == 0 {
			return
		}

		titleLink := pickTitleLink(links)
		codeLink := links.Eq(links.Length() - 1)

		cells := row.Find("td")
		summary := models.ReportSummary{
			ReportNo:            utils.CleanText(codeLink.Text()),
			Title:               utils.CleanText(titleLink.Text()),
			ReportURL:           c.absoluteURL(titleLink.AttrOr("href", "")),
			OccurrenceDateText:  cellText(cells, 2),
			InvestigationStatus: cellText(cells, 3),
		}
		if t, err := time.Parse(listingDateLayout, summary.OccurrenceDateText); err == nil {
			summary.OccurrenceDate = &t
		}

		dedup.Set(summary.ReportNo, summary)
	})

	items := dedup.Values()
	sortByDateDesc(items)
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// pickTitleLink returns the first link in the row whose visible text is not
// a report code ("AO-..." / "AA-..."); code-only rows fall back to the first
// link.
func pickTitleLink(links *goquery.Selection) *goquery.Selection {
	var title *goquery.Selection
	links.EachWithBreak(func(_ int, a *goquery.Selection) bool {
		text := strings.ToUpper(utils.CleanText(a.Text()))
		if !strings.Contains(text, "AO-") && !strings.Contains(text, "AA-") {
			title = a
			return false
		}
		return true
	})
	if title == nil {
		return links.First()
	}
	return title
}

// cellText reads the idx-th table cell, normalized; missing cells are ""
func cellText(cells *goquery.Selection, idx int) string {
	if idx >= cells.Length() {
		return ""
	}
	return utils.CleanText(cells.Eq(idx).Text())
}

func sortByDateDesc(items []models.ReportSummary) {
	sort.SliceStable(items, func(i, j int) bool {
		return dateOrZero(items[i]).After(dateOrZero(items[j]))
	})
}

func dateOrZero(s models.ReportSummary) time.Time {
	if s.OccurrenceDate == nil {
		return time.Time{}
	}
	return *s.OccurrenceDate
}
