package preview

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; DevShareBot/1.0; +https://devshare.dev)"

// Summary is the Open Graph metadata scraped from a posted link. Every field
// is optional; an empty Summary means the page exposed nothing usable.
type Summary struct {
	Title       string
	Description string
	Image       string
}

func (s Summary) Empty() bool {
	return s.Title == "" && s.Description == "" && s.Image == ""
}

type Fetcher struct {
	client *resty.Client
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")
	return &Fetcher{client: client}
}

// Fetch downloads url and extracts its Open Graph metadata. Callers treat any
// error as "no preview"; nothing here is retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Summary, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("preview fetch got status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, err
	}

	summary := Parse(doc)
	if summary.Empty() {
		return nil, fmt.Errorf("no open graph metadata at %s", url)
	}
	return &summary, nil
}

// Parse pulls og:* tags out of a document, falling back to <title> and the
// plain description meta tag.
func Parse(doc *goquery.Document) Summary {
	var summary Summary

	summary.Title = metaContent(doc, "og:title")
	if summary.Title == "" {
		summary.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	summary.Description = metaContent(doc, "og:description")
	if summary.Description == "" {
		summary.Description, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
		summary.Description = strings.TrimSpace(summary.Description)
	}

	summary.Image = metaContent(doc, "og:image")

	return summary
}

func metaContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First().Attr("content")
	return strings.TrimSpace(content)
}
