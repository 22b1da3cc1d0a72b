// Package fetch - browser.go provides headless browser rendering for
// JavaScript-heavy pages. Careers pages in particular often hide listings
// behind scripts, so rendering plus an optional scroll pass recovers content
// a plain HTTP fetch misses.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// renderSettleWait is the fixed wait after page load for scripts to render.
const renderSettleWait = 2 * time.Second

// renderPage renders a page in a headless browser and returns the rendered
// HTML and document title. Requires Chrome/Chromium on the system.
func renderPage(ctx context.Context, urlStr string, opts *Options) (html string, title string, err error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	actions := []chromedp.Action{
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettleWait),
	}

	if opts.WaitForSelector != "" {
		actions = append(actions, chromedp.WaitVisible(opts.WaitForSelector))
	}

	if opts.ScrollPage {
		// Scroll to the bottom in steps to trigger lazy-loaded listings.
		actions = append(actions,
			chromedp.ActionFunc(func(ctx context.Context) error {
				for i := 0; i < 4; i++ {
					if err := chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil).Do(ctx); err != nil {
						return err
					}
					if err := chromedp.Sleep(500 * time.Millisecond).Do(ctx); err != nil {
						return err
					}
				}
				return nil
			}),
		)
	}

	if opts.ExtraWait > 0 {
		actions = append(actions, chromedp.Sleep(opts.ExtraWait))
	}

	actions = append(actions,
		chromedp.Title(&title),
		chromedp.OuterHTML("html", &html),
	)

	if err := chromedp.Run(browserCtx, actions...); err != nil {
		return "", "", fmt.Errorf("browser rendering failed: %w", err)
	}

	return html, title, nil
}
