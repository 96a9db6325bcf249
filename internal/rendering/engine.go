package rendering

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Engine converts rendered HTML into PDF bytes.
type Engine interface {
	PDF(ctx context.Context, html string) ([]byte, error)
}

// A4 paper size in inches, as PrintToPDF expects.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// ChromeEngine prints HTML to PDF through a headless Chrome instance.
// Requires Chrome/Chromium to be installed on the system.
type ChromeEngine struct {
	timeout time.Duration
	logger  *zap.Logger
}

// NewChromeEngine returns an engine with the given per-document timeout.
func NewChromeEngine(timeout time.Duration, logger *zap.Logger) *ChromeEngine {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromeEngine{timeout: timeout, logger: logger}
}

// PDF renders html in a headless browser and returns the printed PDF bytes.
func (e *ChromeEngine) PDF(ctx context.Context, html string) ([]byte, error) {
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

	browserCtx, cancel = context.WithTimeout(browserCtx, e.timeout)
	defer cancel()

	start := time.Now()
	var pdf []byte

	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("headless chrome rendering failed: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("headless chrome produced empty pdf output")
	}

	e.logger.Debug("printed pdf",
		zap.Int("bytes", len(pdf)),
		zap.Duration("took", time.Since(start)))

	return pdf, nil
}
