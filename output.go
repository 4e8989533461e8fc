package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/mo"
)

const defaultTitle = "video"

const titleScript = `(() => document.querySelector('title')?.innerText
	|| document.querySelector('meta[name="title"]')?.content
	|| document.querySelector('h1')?.innerText
	|| 'video')()`

var invalidFilenameChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// pageTitle reads the page title, falling back to meta title, the first h1
// and finally "video".
func pageTitle(p browserPage) mo.Result[string] {
	var title string
	if err := p.Evaluate(titleScript, &title); err != nil {
		return mo.Err[string](fmt.Errorf("failed to read page title: %w", err))
	}
	return mo.Ok(title)
}

// sanitizeFilename drops characters that are invalid in filenames and
// collapses every run of Unicode whitespace (NBSP included) into one space.
func sanitizeFilename(name string) string {
	cleaned := invalidFilenameChars.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(cleaned), " ")
}

// downloaderCommand renders the shell command that fetches manifestURL into
// <title>.mp4.
func downloaderCommand(cfg Config, manifestURL, title string) string {
	return fmt.Sprintf(`%s --add-header "Origin: %s" "%s" -o "%s.mp4"`,
		cfg.Downloader, cfg.Origin, manifestURL, title)
}
