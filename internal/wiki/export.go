package wiki

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Export is the wikitext of one page together with where it came from.
type Export struct {
	URL      string
	Title    string
	Wikitext string
}

// ExportURL returns the Special:Export address of page on the client's wiki.
func (c *Client) ExportURL(page string) string {
	title := strings.ReplaceAll(strings.TrimSpace(page), " ", "_")
	return strings.TrimRight(c.baseURL, "/") + "/wiki/Special:Export/" + url.PathEscape(title)
}

// FetchExport downloads the export of page and extracts its wikitext.
func (c *Client) FetchExport(ctx context.Context, page string) (*Export, error) {
	u := c.ExportURL(page)

	body, err := c.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch export of %q: %w", page, err)
	}

	title, text, err := ParseExport(body)
	if err != nil {
		return nil, fmt.Errorf("parse export of %q: %w", page, err)
	}
	if title == "" {
		title = page
	}

	return &Export{URL: u, Title: title, Wikitext: text}, nil
}

// ParseExport pulls the page title and revision text out of a MediaWiki XML
// export. A body without a <text> element is treated as raw wikitext.
func ParseExport(body []byte) (title, text string, err error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}

	node := doc.Find("page revision text").First()
	if node.Length() == 0 {
		node = doc.Find("text").First()
	}
	if node.Length() == 0 {
		return "", string(body), nil
	}

	title = strings.TrimSpace(doc.Find("page title").First().Text())
	return title, node.Text(), nil
}
