package goquery

import (
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/presscut"
)

// MarkLinks replaces every anchor in src with its text. Anchors with a
// followable target get an [L<n>] marker after the text, where n is the
// 1-based position of the target in the returned links. Targets are
// resolved against baseURL with fragments stripped; non-HTTP and self
// links get no marker. Duplicates are kept so the n-th marker always
// matches the n-th link.
func MarkLinks(src string, baseURL string) (string, []string, error) {
	base, doc, err := load(src, baseURL)
	if err != nil {
		return "", nil, err
	}

	var links []string
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		text := html.EscapeString(sel.Text())
		if target := linkTarget(base, sel); target != "" {
			links = append(links, target)
			text += "[L" + strconv.Itoa(len(links)) + "]"
		}
		sel.ReplaceWithHtml(text)
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", nil, presscut.Errorf(presscut.EINVALID, "failed to render HTML: %v", err)
	}
	return out, links, nil
}

func load(src, baseURL string) (*url.URL, *goquery.Document, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, nil, presscut.Errorf(presscut.EINVALID, "invalid base URL: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, nil, presscut.Errorf(presscut.EINVALID, "failed to parse HTML: %v", err)
	}
	return base, doc, nil
}

// linkTarget returns the resolved target of an anchor, or "" when the
// anchor has none worth following.
func linkTarget(base *url.URL, sel *goquery.Selection) string {
	href, _ := sel.Attr("href")
	if href == "" || isNonHTTPLink(href) {
		return ""
	}
	return resolveURL(base, href)
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
