package main

import "strings"

// toHLS rewrites an Infinity DASH manifest URL into the matching HLS
// playlist. Non-.mpd URLs, and .mpd URLs of any other shape, are returned
// unchanged.
func toHLS(manifestURL string) string {
	if !strings.HasSuffix(strings.ToLower(manifestURL), ".mpd") {
		return manifestURL
	}
	if strings.Contains(manifestURL, "mpd-cenc.ism/web.mpd") {
		return strings.ReplaceAll(manifestURL, "mpd-cenc.ism/web.mpd", "main.ism/picky.m3u8")
	}
	return strings.ReplaceAll(manifestURL, "web.mpd", "picky.m3u8")
}
