package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the shortest description text accepted from a plain HTTP fetch
const MinContentLength = 500

// ShouldUseBrowser reports whether extracted text is short enough that the page is probably
// assembled by JavaScript
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// settleDelay gives client-side scripts time to fill the description after body is ready
const settleDelay = 3 * time.Second

// ChromeRenderer renders pages in headless Chrome through chromedp.
// Chrome or Chromium must be installed.
func ChromeRenderer(timeout time.Duration) Renderer {
	return func(ctx context.Context, url string) (string, error) {
		allocCtx, cancel := chromedp.NewExecAllocator(ctx,
			append(chromedp.DefaultExecAllocatorOptions[:],
				chromedp.Flag("headless", true),
				chromedp.Flag("disable-gpu", true),
				chromedp.Flag("no-sandbox", true),
				chromedp.Flag("disable-dev-shm-usage", true),
				chromedp.UserAgent(DefaultUserAgent),
			)...,
		)
		defer cancel()

		browserCtx, cancel := chromedp.NewContext(allocCtx)
		defer cancel()

		browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
		defer cancel()

		var html string
		err := chromedp.Run(browserCtx,
			chromedp.Navigate(url),
			chromedp.WaitReady("body"),
			chromedp.Sleep(settleDelay),
			chromedp.OuterHTML("html", &html),
		)
		if err != nil {
			return "", fmt.Errorf("browser rendering failed: %w", err)
		}
		return html, nil
	}
}
