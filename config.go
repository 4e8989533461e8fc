package main

import "time"

const (
	defaultPollTimeout    = 30 * time.Second
	defaultPollInterval   = 500 * time.Millisecond
	defaultSessionTimeout = 180 * time.Second
	defaultHeadless       = false
	defaultPreferDomain   = "vbd.mediasetinfinity.es"
	defaultUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125 Safari/537.36"
	infinityOrigin        = "https://www.mediasetinfinity.es"

	// hlsFragment is the path of the playlist toHLS produces; requests that
	// already carry it are ranked ahead of everything else.
	hlsFragment = "main.ism/picky.m3u8"
)

// Config holds every setting of a run. It is built once by DefaultConfig and
// passed by value, so components never share mutable state.
type Config struct {
	PollTimeout    time.Duration
	PollInterval   time.Duration
	SessionTimeout time.Duration
	Headless       bool
	PreferDomain   string
	UserAgent      string
	BrowserPath    string

	// BlockedURLs are wildcard patterns handed to Network.setBlockedURLs.
	BlockedURLs []string
	// AdDomains are substrings the page script uses to spot ad nodes.
	AdDomains []string

	ConsentSelector   string
	ConsentWait       time.Duration
	FallbackSelectors []string
	FallbackWait      time.Duration
	ConsentSettle     time.Duration
	AcceptPattern     string

	HLSFragment string
	Origin      string
	Downloader  string
}

// DefaultConfig returns the settings for Mediaset Infinity pages.
func DefaultConfig() Config {
	return Config{
		PollTimeout:    defaultPollTimeout,
		PollInterval:   defaultPollInterval,
		SessionTimeout: defaultSessionTimeout,
		Headless:       defaultHeadless,
		PreferDomain:   defaultPreferDomain,
		UserAgent:      defaultUserAgent,
		BlockedURLs: []string{
			"*doubleclick.net/*",
			"*googlesyndication.com/*",
			"*googletagservices.com/*",
			"*adservice.google.com/*",
			"*imasdk.googleapis.com/*",
			"*video-ads.mediaset.es/*",
			"*ads.mediaset.es/*",
			"*googlevideo.com/videoplayback*",
			"*rr3---sn-8vq54voxn25po-n89l.googlevideo.com/*",
			"*mediaset.es/*vast*",
			"*mediaset.es/*preroll*",
		},
		AdDomains: []string{
			"doubleclick.net",
			"googlesyndication.com",
			"googletagservices.com",
			"adservice.google.com",
			"imasdk.googleapis.com",
			"video-ads.mediaset.es",
			"ads.mediaset.es",
			"googlevideo.com",
			"rr3---sn-8vq54voxn25po-n89l.googlevideo.com",
			"vast",
			"preroll",
			"adserver",
			"pubads",
		},
		ConsentSelector: "#didomi-notice-agree-button",
		ConsentWait:     10 * time.Second,
		FallbackSelectors: []string{
			"button.accept-cookies",
			"button.cookie-accept",
			"a#cookie-accept",
			`button[aria-label*="accept"]`,
			`button[data-testid="cookie-accept"]`,
			`button[class*="accept"]`,
			`button[id*="accept"]`,
			`a[class*="accept"]`,
		},
		FallbackWait:  5 * time.Second,
		ConsentSettle: 2 * time.Second,
		AcceptPattern: "Aceptar|Accept|Consentir|Aceptar todas",
		HLSFragment:   hlsFragment,
		Origin:        infinityOrigin,
		Downloader:    "yt-dlp",
	}
}
