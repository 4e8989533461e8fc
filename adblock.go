package main

import (
	"encoding/json"
	"fmt"
)

// adBlockTemplate watches the DOM for ad iframes, scripts and media sources
// and removes them as they are inserted. %s is a JSON array of domains.
const adBlockTemplate = `(() => {
	const blockedDomains = %s;
	const isAd = (s) => !!s && blockedDomains.some(d => s.includes(d));
	const observer = new MutationObserver((mutations) => {
		for (const mutation of mutations) {
			for (const node of mutation.addedNodes) {
				if (node.nodeType !== 1) continue;
				if (node.tagName === 'IFRAME' && isAd(node.src)) {
					node.remove();
					continue;
				}
				if (node.tagName === 'SCRIPT' && (isAd(node.src) || isAd(node.innerHTML))) {
					node.remove();
					continue;
				}
				const sources = node.tagName === 'VIDEO' ? [node] : node.querySelectorAll('video, source, track');
				for (const source of sources) {
					const url = source.src || source.getAttribute('src');
					if (!url) continue;
					let host = '';
					try { host = new URL(url, window.location.href).hostname; } catch (e) {}
					if (isAd(host) || isAd(url)) {
						source.src = '';
						source.removeAttribute('src');
						if (source.parentNode) source.parentNode.removeChild(source);
					}
				}
			}
		}
	});
	observer.observe(document, { childList: true, subtree: true });
	document.querySelectorAll('video').forEach(v => v.pause());
})();`

// adBlockScript renders the page script for the given ad domains.
func adBlockScript(domains []string) string {
	if domains == nil {
		domains = []string{}
	}
	encoded, _ := json.Marshal(domains)
	return fmt.Sprintf(adBlockTemplate, encoded)
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	encoded, _ := json.Marshal(s)
	return string(encoded)
}
