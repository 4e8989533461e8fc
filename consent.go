package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/mo"
)

var errConsentNotFound = errors.New("no cookie consent button found")

const textMatchStrategy = "text-match"

// acceptTemplate clicks the first button or link whose text matches %s.
const acceptTemplate = `(() => {
	const pattern = new RegExp(%s, 'i');
	for (const el of document.querySelectorAll('button, a')) {
		if (pattern.test(el.innerText || '')) {
			el.click();
			return true;
		}
	}
	return false;
})()`

// acceptCookies dismisses the consent dialog. It tries the primary selector,
// then each fallback selector, then a text search over buttons and links.
// The result holds the strategy that clicked.
func acceptCookies(p browserPage, cfg Config) mo.Result[string] {
	clicked := func(strategy string) mo.Result[string] {
		time.Sleep(cfg.ConsentSettle)
		return mo.Ok(strategy)
	}

	if err := p.Click(cfg.ConsentSelector, cfg.ConsentWait); err == nil {
		return clicked(cfg.ConsentSelector)
	}

	for _, selector := range cfg.FallbackSelectors {
		if err := p.Click(selector, cfg.FallbackWait); err == nil {
			return clicked(selector)
		}
	}

	var ok bool
	if err := p.Evaluate(fmt.Sprintf(acceptTemplate, jsString(cfg.AcceptPattern)), &ok); err != nil {
		return mo.Err[string](fmt.Errorf("%w: %v", errConsentNotFound, err))
	}
	if !ok {
		return mo.Err[string](errConsentNotFound)
	}
	return clicked(textMatchStrategy)
}
