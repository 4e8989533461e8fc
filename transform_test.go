package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHLS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain web.mpd",
			input:    "https://x.com/a/web.mpd",
			expected: "https://x.com/a/picky.m3u8",
		},
		{
			name:     "Encrypted manifest",
			input:    "https://x.com/mpd-cenc.ism/web.mpd",
			expected: "https://x.com/main.ism/picky.m3u8",
		},
		{
			name:     "Uppercase extension matches case-sensitive substrings only",
			input:    "https://x.com/web.mpd/a/WEB.MPD",
			expected: "https://x.com/picky.m3u8/a/WEB.MPD",
		},
		{
			name:     "Unknown mpd shape passes through",
			input:    "https://x.com/a/manifest.mpd",
			expected: "https://x.com/a/manifest.mpd",
		},
		{
			name:     "HLS untouched",
			input:    "https://x.com/a/main.ism/picky.m3u8",
			expected: "https://x.com/a/main.ism/picky.m3u8",
		},
		{
			name:     "web.mpd not at the end",
			input:    "https://x.com/web.mpd/index.m3u8",
			expected: "https://x.com/web.mpd/index.m3u8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toHLS(tt.input))
		})
	}
}
