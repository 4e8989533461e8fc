package main

import (
	"context"
	"fmt"
	"io"
)

const noCandidatesMessage = "No manifest candidates found."

// run drives one extraction: open the browser, load pageURL, dismiss the
// consent dialog, wait for a manifest and print the download command to out.
// Finding nothing is not an error.
func run(ctx context.Context, cfg Config, pageURL string, out io.Writer, open sessionOpener) error {
	p, closeSession, err := open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSession()

	logger.Info("Loading page", "url", pageURL)
	if err := p.Navigate(pageURL); err != nil {
		return err
	}

	consent := acceptCookies(p, cfg)
	if strategy, err := consent.Get(); err != nil {
		logger.Debug("Cookie consent not dismissed", "err", err)
	} else {
		logger.Info("Cookie consent accepted", "via", strategy)
	}

	logger.Info("Watching network for manifests", "timeout", cfg.PollTimeout)
	candidates, err := watchManifests(ctx, p.RequestLog, cfg)
	if err != nil {
		return fmt.Errorf("failed while watching for manifests: %w", err)
	}

	if len(candidates) == 0 {
		fmt.Fprintln(out, noCandidatesMessage)
		return nil
	}

	fmt.Fprintln(out, "Candidates found:")
	for _, c := range candidates {
		fmt.Fprintln(out, "  "+c)
	}

	title := sanitizeFilename(pageTitle(p).OrElse(defaultTitle))
	manifestURL := toHLS(candidates[0])

	fmt.Fprintln(out, downloaderCommand(cfg, manifestURL, title))
	return nil
}
