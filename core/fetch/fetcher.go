// Package fetch implements the Fetcher interface with a headless Chrome
// driven through chromedp. Every call gets its own browser process so no
// state leaks between URLs.
package fetch

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/gaurav-prasanna/pagesnap/core"
)

const (
	// NavigationTimeout bounds navigation plus the network-idle wait.
	NavigationTimeout = 60 * time.Second
	// ScrollSteps is the fixed number of auto-scroll steps.
	ScrollSteps = 30
	// ScrollDistance is the vertical distance of one scroll step, in pixels.
	ScrollDistance = 1200
	// ScrollPause is the pause after each scroll step.
	ScrollPause = 250 * time.Millisecond

	// screenshotQuality 100 makes chromedp capture PNG instead of JPEG.
	screenshotQuality = 100
)

// BrowserFetcher fetches fully rendered pages with headless Chrome.
type BrowserFetcher struct {
	// UserAgent overrides the browser's user agent when non-empty.
	UserAgent string
	// ExecPath points at a specific Chrome binary when non-empty.
	ExecPath string
}

// New creates a BrowserFetcher.
func New(userAgent, execPath string) *BrowserFetcher {
	return &BrowserFetcher{UserAgent: userAgent, ExecPath: execPath}
}

// Fetch launches a browser, loads url until the network goes idle, optionally
// scrolls and waits, then captures the HTML, title and an optional screenshot.
// The browser is torn down before Fetch returns, on success and on failure.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string, opts core.FetchOptions) (*core.FetchResult, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, f.allocatorOptions()...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	// The first Run allocates the browser; it must not run under navCtx.
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	navCtx, navCancel := context.WithTimeout(browserCtx, NavigationTimeout)
	err := chromedp.Run(navCtx, navigateAndWaitIdle(url))
	navCancel()
	if err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}

	var tasks chromedp.Tasks
	if opts.Scroll {
		tasks = append(tasks, scrollTasks()...)
	}
	if opts.Wait > 0 {
		tasks = append(tasks, chromedp.Sleep(opts.Wait))
	}

	result := &core.FetchResult{URL: url}
	tasks = append(tasks,
		chromedp.Title(&result.Title),
		chromedp.OuterHTML("html", &result.HTML, chromedp.ByQuery),
	)
	if opts.Screenshot {
		tasks = append(tasks, chromedp.FullScreenshot(&result.Screenshot, screenshotQuality))
	}

	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return nil, fmt.Errorf("capturing %s: %w", url, err)
	}

	if opts.Screenshot && opts.ScreenshotTarget != nil {
		path := opts.ScreenshotTarget(result.Title, result.HTML)
		if err := os.WriteFile(path, result.Screenshot, 0o644); err != nil {
			return nil, fmt.Errorf("writing screenshot %s: %w", path, err)
		}
	}

	return result, nil
}

func (f *BrowserFetcher) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
	)
	if f.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(f.UserAgent))
	}
	if f.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(f.ExecPath))
	}
	return opts
}

// navigateAndWaitIdle navigates and blocks until Chrome reports the
// networkIdle lifecycle event for the navigated document, or ctx expires.
// Events from iframes or from the document being replaced are ignored.
func navigateAndWaitIdle(url string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		if err := page.SetLifecycleEventsEnabled(true).Do(ctx); err != nil {
			return fmt.Errorf("enabling lifecycle events: %w", err)
		}

		w := newIdleWatcher()
		listenCtx, stopListening := context.WithCancel(ctx)
		defer stopListening()
		chromedp.ListenTarget(listenCtx, w.observe)

		// The reply carries the frame and loader of the new document.
		var nav page.NavigateReturns
		if err := cdp.Execute(ctx, page.CommandNavigate, page.Navigate(url), &nav); err != nil {
			return err
		}
		if nav.ErrorText != "" {
			return fmt.Errorf("page load error %s", nav.ErrorText)
		}

		return w.wait(ctx, idleKey{frame: nav.FrameID, loader: nav.LoaderID})
	}
}

// idleKey identifies one document load in one frame.
type idleKey struct {
	frame  cdp.FrameID
	loader cdp.LoaderID
}

// idleKeyOf returns the key of a networkIdle lifecycle event.
func idleKeyOf(ev interface{}) (idleKey, bool) {
	e, ok := ev.(*page.EventLifecycleEvent)
	if !ok || e.Name != "networkIdle" {
		return idleKey{}, false
	}
	return idleKey{frame: e.FrameID, loader: e.LoaderID}, true
}

// idleWatcher records networkIdle events as they arrive. Events can land
// before the navigation reports its loader ID, so they are kept rather
// than matched on arrival.
type idleWatcher struct {
	mu     sync.Mutex
	seen   map[idleKey]bool
	notify chan struct{}
}

func newIdleWatcher() *idleWatcher {
	return &idleWatcher{
		seen:   make(map[idleKey]bool),
		notify: make(chan struct{}, 1),
	}
}

func (w *idleWatcher) observe(ev interface{}) {
	key, ok := idleKeyOf(ev)
	if !ok {
		return
	}
	w.mu.Lock()
	w.seen[key] = true
	w.mu.Unlock()
	select {
	case w.notify <- struct{}{}:
	default:
	}
}

// reached reports whether target went idle. An empty loader ID (a
// same-document navigation) matches on the frame alone.
func (w *idleWatcher) reached(target idleKey) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if target.loader != "" {
		return w.seen[target]
	}
	for k := range w.seen {
		if k.frame == target.frame {
			return true
		}
	}
	return false
}

func (w *idleWatcher) wait(ctx context.Context, target idleKey) error {
	for {
		if w.reached(target) {
			return nil
		}
		select {
		case <-w.notify:
		case <-ctx.Done():
			return fmt.Errorf("waiting for network idle: %w", ctx.Err())
		}
	}
}

// scrollTasks scrolls a fixed number of steps regardless of whether new
// content appears.
func scrollTasks() []chromedp.Action {
	js := fmt.Sprintf("window.scrollBy(0, %d)", ScrollDistance)
	actions := make([]chromedp.Action, 0, ScrollSteps*2)
	for i := 0; i < ScrollSteps; i++ {
		actions = append(actions,
			chromedp.Evaluate(js, nil),
			chromedp.Sleep(ScrollPause),
		)
	}
	return actions
}
