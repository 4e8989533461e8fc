package main

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto"
	"github.com/samber/lo"
)

// requestEntry is one network event seen by the browser.
type requestEntry struct {
	Method cdproto.MethodType
	URL    string
}

// manifestCandidates derives the manifest URLs from the whole request log.
// Outgoing requests whose path ends in .mpd or .m3u8 are kept in discovery
// order, except HLS URLs that already carry fragment, which are moved to the
// front. preferDomain, when set, is applied to the finished list.
func manifestCandidates(entries []requestEntry, fragment, preferDomain string) []string {
	var candidates []string
	for _, entry := range entries {
		if entry.Method != cdproto.EventNetworkRequestWillBeSent || entry.URL == "" {
			continue
		}
		scheme, _, path := requestURLParts(entry.URL)
		if scheme != "http" && scheme != "https" {
			continue
		}

		switch {
		case strings.HasSuffix(path, ".m3u8") && strings.Contains(entry.URL, fragment):
			candidates = append([]string{entry.URL}, candidates...)
		case strings.HasSuffix(path, ".mpd"), strings.HasSuffix(path, ".m3u8"):
			candidates = append(candidates, entry.URL)
		}
	}

	if preferDomain == "" {
		return candidates
	}
	return lo.Filter(candidates, func(c string, _ int) bool {
		_, host, _ := requestURLParts(c)
		return strings.Contains(host, preferDomain)
	})
}

// requestURLParts returns the scheme, lowercased hostname and path of raw.
// URLs net/url rejects, such as ones with malformed percent escapes, are
// split by hand so they still count.
func requestURLParts(raw string) (scheme, host, path string) {
	if u, err := url.Parse(raw); err == nil {
		return strings.ToLower(u.Scheme), strings.ToLower(u.Hostname()), u.Path
	}

	rest := raw
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	i := strings.Index(rest, "://")
	if i < 0 {
		return "", "", rest
	}
	scheme, rest = strings.ToLower(rest[:i]), rest[i+3:]

	host = rest
	if j := strings.Index(rest, "/"); j >= 0 {
		host, path = rest[:j], rest[j:]
	}
	if j := strings.LastIndex(host, "@"); j >= 0 {
		host = host[j+1:]
	}
	if j := strings.LastIndex(host, ":"); j >= 0 && !strings.Contains(host[j:], "]") {
		host = host[:j]
	}
	return scheme, strings.ToLower(strings.Trim(host, "[]")), path
}

// watchManifests polls log until it yields a candidate or cfg.PollTimeout
// elapses. An empty result with a nil error means nothing showed up in time.
func watchManifests(ctx context.Context, log func() []requestEntry, cfg Config) ([]string, error) {
	deadline := time.Now().Add(cfg.PollTimeout)
	var candidates []string

	for time.Now().Before(deadline) {
		candidates = manifestCandidates(log(), cfg.HLSFragment, cfg.PreferDomain)
		if len(candidates) > 0 {
			return candidates, nil
		}

		logger.Debug("No manifest yet", "remaining", time.Until(deadline).Round(time.Second))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.PollInterval):
		}
	}

	return candidates, nil
}
