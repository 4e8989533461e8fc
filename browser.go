package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/chromedp/cdproto"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// browserPage is what the run flow needs from a browser tab.
type browserPage interface {
	Navigate(url string) error
	// Click waits up to timeout for selector to be visible and enabled,
	// then clicks it through JavaScript.
	Click(selector string, timeout time.Duration) error
	Evaluate(expr string, res any) error
	// RequestLog returns every network event recorded since launch.
	RequestLog() []requestEntry
}

// sessionOpener launches a browser and returns its page plus a teardown func.
type sessionOpener func(ctx context.Context, cfg Config) (browserPage, func(), error)

// browserSession is a chromedp tab with a cumulative network log.
type browserSession struct {
	ctx context.Context

	mu  sync.Mutex
	log []requestEntry
}

func getBrowserCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		programFiles := os.Getenv("PROGRAMFILES")
		programFilesX86 := os.Getenv("PROGRAMFILES(X86)")
		localAppData := os.Getenv("LOCALAPPDATA")

		if programFiles == "" {
			programFiles = `C:\Program Files`
		}
		if programFilesX86 == "" {
			programFilesX86 = `C:\Program Files (x86)`
		}
		if localAppData == "" {
			localAppData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}
		return []string{
			filepath.Join(programFiles, "Google", "Chrome", "Application", "chrome.exe"),
			filepath.Join(programFilesX86, "Google", "Chrome", "Application", "chrome.exe"),
			filepath.Join(localAppData, "Google", "Chrome", "Application", "chrome.exe"),
			filepath.Join(programFiles, "Microsoft", "Edge", "Application", "msedge.exe"),
			filepath.Join(programFilesX86, "Microsoft", "Edge", "Application", "msedge.exe"),
			filepath.Join(programFiles, "Chromium", "Application", "chrome.exe"),
			filepath.Join(programFiles, "BraveSoftware", "Brave-Browser", "Application", "brave.exe"),
			filepath.Join(localAppData, "BraveSoftware", "Brave-Browser", "Application", "brave.exe"),
		}

	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
			"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser",
		}

	default:
		return []string{
			"google-chrome",
			"google-chrome-stable",
			"chromium",
			"chromium-browser",
			"microsoft-edge",
			"microsoft-edge-stable",
			"brave-browser",
		}
	}
}

func resolveBrowserPath(candidate string) (string, bool) {
	if filepath.IsAbs(candidate) {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		return "", false
	}
	if path, err := exec.LookPath(candidate); err == nil {
		return path, true
	}
	return "", false
}

// findBrowser returns customPath if it resolves, otherwise the first
// installed Chromium-family browser.
func findBrowser(customPath string) (string, error) {
	if customPath != "" {
		if path, ok := resolveBrowserPath(customPath); ok {
			return path, nil
		}
		return "", fmt.Errorf("specified browser not found: %s", customPath)
	}

	for _, candidate := range getBrowserCandidates() {
		if path, ok := resolveBrowserPath(candidate); ok {
			return path, nil
		}
	}

	return "", fmt.Errorf("no supported browser found, install Google Chrome, Chromium, Edge or Brave")
}

// launchFlags are the command-line switches added on top of chromedp's
// defaults.
func launchFlags(cfg Config) map[string]any {
	return map[string]any{
		"headless":              cfg.Headless,
		"autoplay-policy":       "no-user-gesture-required",
		"no-sandbox":            true,
		"disable-dev-shm-usage": true,
		"disable-gpu":           true,
		"window-size":           "1920,1080",
		"user-agent":            cfg.UserAgent,
	}
}

func allocatorOptions(cfg Config, execPath string) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.ExecPath(execPath))
	for name, value := range launchFlags(cfg) {
		opts = append(opts, chromedp.Flag(name, value))
	}
	return opts
}

// openBrowser launches a browser with ad blocking installed and network
// events recorded. The returned func closes the browser and must always run.
func openBrowser(ctx context.Context, cfg Config) (browserPage, func(), error) {
	execPath, err := findBrowser(cfg.BrowserPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Using browser", "path", execPath)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocatorOptions(cfg, execPath)...)
	taskCtx, cancel2 := chromedp.NewContext(allocCtx, chromedp.WithLogf(logger.Debugf))
	taskCtx, cancel3 := context.WithTimeout(taskCtx, cfg.SessionTimeout)
	closeFn := func() {
		cancel3()
		cancel2()
		cancel()
	}

	s := &browserSession{ctx: taskCtx}
	chromedp.ListenTarget(taskCtx, s.record)

	if err := chromedp.Run(taskCtx,
		network.Enable(),
		network.SetBlockedURLS(cfg.BlockedURLs),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(adBlockScript(cfg.AdDomains)).Do(ctx)
			return err
		}),
	); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to start browser session: %w", err)
	}

	return s, closeFn, nil
}

func (s *browserSession) record(ev any) {
	var entry requestEntry
	switch e := ev.(type) {
	case *network.EventRequestWillBeSent:
		entry = requestEntry{Method: cdproto.EventNetworkRequestWillBeSent, URL: e.Request.URL}
	case *network.EventResponseReceived:
		entry = requestEntry{Method: cdproto.EventNetworkResponseReceived, URL: e.Response.URL}
	default:
		return
	}

	s.mu.Lock()
	s.log = append(s.log, entry)
	s.mu.Unlock()
}

func (s *browserSession) RequestLog() []requestEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]requestEntry, len(s.log))
	copy(out, s.log)
	return out
}

func (s *browserSession) Navigate(url string) error {
	if err := chromedp.Run(s.ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (s *browserSession) Click(selector string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	return chromedp.Run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.WaitEnabled(selector, chromedp.ByQuery),
		chromedp.Evaluate(fmt.Sprintf(`document.querySelector(%s).click()`, jsString(selector)), nil),
	)
}

func (s *browserSession) Evaluate(expr string, res any) error {
	return chromedp.Run(s.ctx, chromedp.Evaluate(expr, res))
}
