package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches page chrome that never carries job description text
const noiseSelector = "nav, footer, header, script, style, noscript, iframe, form, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// blockSelector matches elements that start a new line in rendered text
const blockSelector = "p, div, section, article, h1, h2, h3, h4, h5, h6, li, tr, dt, dd, blockquote, pre"

// JobPostingSelectors returns selectors for the main description container on common job boards.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
	}
}

var inlineSpace = regexp.MustCompile(`[ \t\p{Zs}]+`)

// HTMLToText converts an HTML job posting into plain text, one block element per line.
// List items are prefixed with "- " so bullet structure survives.
func HTMLToText(html string) (string, error) {
	return HTMLToTextWith(html, JobPostingSelectors(), nil)
}

// HTMLToTextWith is HTMLToText with caller-chosen selectors: the first content selector that
// matches wins (else body), and every noise selector is removed on top of the common page chrome.
func HTMLToTextWith(html string, contentSelectors, noiseSelectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	content.Find("br").ReplaceWithHtml("\n")
	content.Find("li").PrependHtml("- ")
	content.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n")
		s.AppendHtml("\n")
	})

	return collapseLines(content.Text()), nil
}

// collapseLines trims every line, collapses inline whitespace and drops blank lines
func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
		if line != "" && line != "-" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
