package atsb

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"atsb-dashboard/config"
	"atsb-dashboard/utils"

	"github.com/PuerkitoBio/goquery"
)

// Client fetches and parses pages from the ATSB website
type Client struct {
	httpClient *http.Client
	baseURL    string
	listingURL string
	logger     *utils.Logger
}

// NewClient creates a new ATSB client with a fixed request timeout
func NewClient(cfg *config.Config, logger *utils.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second,
		},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		listingURL: cfg.ListingURL,
		logger:     logger,
	}
}

// fetchDocument GETs a page and parses it into a goquery document.
// Transport errors and non-200 statuses are returned to the caller;
// per the pipeline's error policy they abort the run.
func (c *Client) fetchDocument(pageURL string) (*goquery.Document, error) {
	resp, err := c.httpClient.Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return doc, nil
}

// absoluteURL resolves site-relative hrefs against the base URL
func (c *Client) absoluteURL(href string) string {
	if strings.HasPrefix(href, "/") {
		return c.baseURL + href
	}
	return href
}
