package main

import (
	"errors"
	"sync"
	"time"

	"github.com/chromedp/cdproto"
)

// fakePage stands in for a browser tab.
type fakePage struct {
	mu sync.Mutex

	clickable map[string]bool
	textMatch bool
	evalErr   error
	title     string
	titleErr  error
	navErr    error

	// logAt returns the network log for the n-th RequestLog call.
	logAt func(n int) []requestEntry

	navigated []string
	clicks    []string
	waits     []time.Duration
	logCalls  int
}

func (f *fakePage) Navigate(url string) error {
	f.navigated = append(f.navigated, url)
	return f.navErr
}

func (f *fakePage) Click(selector string, timeout time.Duration) error {
	f.clicks = append(f.clicks, selector)
	f.waits = append(f.waits, timeout)
	if f.clickable[selector] {
		return nil
	}
	return errors.New("context deadline exceeded")
}

func (f *fakePage) Evaluate(expr string, res any) error {
	switch r := res.(type) {
	case *bool:
		if f.evalErr != nil {
			return f.evalErr
		}
		*r = f.textMatch
	case *string:
		if f.titleErr != nil {
			return f.titleErr
		}
		*r = f.title
	}
	return nil
}

func (f *fakePage) RequestLog() []requestEntry {
	f.mu.Lock()
	n := f.logCalls
	f.logCalls++
	f.mu.Unlock()
	if f.logAt == nil {
		return nil
	}
	return f.logAt(n)
}

func requested(urls ...string) []requestEntry {
	entries := make([]requestEntry, 0, len(urls))
	for _, u := range urls {
		entries = append(entries, requestEntry{Method: cdproto.EventNetworkRequestWillBeSent, URL: u})
	}
	return entries
}

// testConfig keeps waits short enough for unit tests.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PollTimeout = 60 * time.Millisecond
	cfg.PollInterval = 5 * time.Millisecond
	cfg.ConsentSettle = 0
	return cfg
}
