package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptCookies_PrimarySelector(t *testing.T) {
	cfg := testConfig()
	p := &fakePage{clickable: map[string]bool{cfg.ConsentSelector: true}}

	strategy, err := acceptCookies(p, cfg).Get()
	require.NoError(t, err)
	assert.Equal(t, cfg.ConsentSelector, strategy)
	assert.Equal(t, []string{cfg.ConsentSelector}, p.clicks)
	assert.Equal(t, []time.Duration{10 * time.Second}, p.waits)
}

func TestAcceptCookies_FallbackSelector(t *testing.T) {
	cfg := testConfig()
	p := &fakePage{clickable: map[string]bool{`button[id*="accept"]`: true}}

	strategy, err := acceptCookies(p, cfg).Get()
	require.NoError(t, err)
	assert.Equal(t, `button[id*="accept"]`, strategy)
	// primary, then fallbacks up to and including the match
	assert.Len(t, p.clicks, 1+7)
	assert.Equal(t, []time.Duration{
		10 * time.Second,
		5 * time.Second, 5 * time.Second, 5 * time.Second, 5 * time.Second,
		5 * time.Second, 5 * time.Second, 5 * time.Second,
	}, p.waits)
}

func TestAcceptCookies_SettlesAfterClick(t *testing.T) {
	cfg := testConfig()
	cfg.ConsentSettle = 40 * time.Millisecond

	tests := []struct {
		name string
		page *fakePage
	}{
		{"Primary selector", &fakePage{clickable: map[string]bool{cfg.ConsentSelector: true}}},
		{"Fallback selector", &fakePage{clickable: map[string]bool{"a#cookie-accept": true}}},
		{"Text match", &fakePage{textMatch: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			require.True(t, acceptCookies(tt.page, cfg).IsOk())
			assert.GreaterOrEqual(t, time.Since(start), cfg.ConsentSettle)
		})
	}
}

func TestAcceptCookies_NoSettleWithoutClick(t *testing.T) {
	cfg := testConfig()
	cfg.ConsentSettle = time.Minute

	start := time.Now()
	assert.True(t, acceptCookies(&fakePage{}, cfg).IsError())
	assert.Less(t, time.Since(start), time.Second)
}

func TestAcceptCookies_TextMatch(t *testing.T) {
	cfg := testConfig()
	p := &fakePage{textMatch: true}

	strategy, err := acceptCookies(p, cfg).Get()
	require.NoError(t, err)
	assert.Equal(t, textMatchStrategy, strategy)
	assert.Len(t, p.clicks, 1+len(cfg.FallbackSelectors))
}

func TestAcceptCookies_NotFound(t *testing.T) {
	cfg := testConfig()
	p := &fakePage{}

	result := acceptCookies(p, cfg)
	assert.True(t, result.IsError())
	assert.ErrorIs(t, result.Error(), errConsentNotFound)
}

func TestAcceptCookies_ScriptFailure(t *testing.T) {
	cfg := testConfig()
	p := &fakePage{evalErr: errors.New("cannot find context with specified id")}

	result := acceptCookies(p, cfg)
	assert.ErrorIs(t, result.Error(), errConsentNotFound)
}
