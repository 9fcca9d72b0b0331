package html

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/bytedance/sonic"
)

// Layout of the pubdate and lastupdated <meta> tags.
const metaDateLayout = "2006/01/02 15:04:05"

// Name of the <meta> tag holding the article summary. Matched case-sensitively.
const descriptionMetaName = "Description"

// Keys dropped from structured-data entries once the article fields have
// been taken from them.
var noisyMetadataKeys = []string{
	"@context", "@type", "articleSection", "hasPart", "image", "publisher",
	"isAccessibleForFree", "mainEntityOfPage", "itemListElement", "keywords",
}

// Structured-data types describing the article itself.
var articleTypes = []string{"NewsArticle", "Article"}

// structuredData stores a JSON-LD payload keyed by its declared type, or
// each entry of its @graph keyed by the entry type.
func (t *traversal) structuredData(raw string) {
	var payload any
	if err := sonic.UnmarshalString(raw, &payload); err != nil {
		t.logger.Error("malformed structured data", "err", err)
		return
	}

	var objects []map[string]any
	switch v := payload.(type) {
	case map[string]any:
		objects = append(objects, v)
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				objects = append(objects, m)
			}
		}
	}

	for _, obj := range objects {
		if typ, ok := typeName(obj["@type"]); ok {
			t.addMetadata(typ, obj)
			continue
		}
		graph, ok := obj["@graph"].([]any)
		if !ok {
			t.logger.Error("unknown structured data format", "keys", keys(obj))
			continue
		}
		for _, item := range graph {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if typ, ok := typeName(entry["@type"]); ok {
				t.addMetadata(typ, entry)
			}
		}
	}
}

func (t *traversal) addMetadata(typ string, entry map[string]any) {
	if _, ok := t.metadata[typ]; ok {
		t.logger.Error("duplicated structured data type", "type", typ)
	}
	t.metadata[typ] = entry
}

// meta reads facts from a <meta> element.
func (t *traversal) meta(n *Node) {
	if charset, ok := n.Attr("charset"); ok {
		t.article.Charset = strings.ToLower(charset)
	}
	if equiv, _ := n.Attr("http-equiv"); strings.EqualFold(equiv, "content-type") {
		content, _ := n.Attr("content")
		if _, charset, ok := strings.Cut(strings.ToLower(content), "charset="); ok {
			t.article.Charset = strings.TrimSpace(charset)
		}
	}

	name, _ := n.Attr("name")
	content, _ := n.Attr("content")
	switch name {
	case "pubdate":
		if d, ok := t.parseLayout("pubdate", metaDateLayout, content); ok {
			t.inline.published = d
		}
	case "lastupdated":
		if d, ok := t.parseLayout("lastupdated", metaDateLayout, content); ok {
			t.inline.modified = d
		}
	case descriptionMetaName:
		t.article.Description = content
	}

	if h := t.rules.hooks.meta; h != nil {
		h(t, n)
	}
}

// applyStructuredData copies article fields out of the collected JSON-LD.
// Structured values take precedence over those read from <meta> tags and
// page text, which remain as fallback.
func (t *traversal) applyStructuredData() {
	if person, ok := t.metadata["Person"]; ok {
		t.setAuthor(person)
	}
	if post, ok := t.metadata["BlogPosting"]; ok {
		t.setHeadline(post)
		t.setDates(post)
	}
	for _, typ := range articleTypes {
		entry, ok := t.metadata[typ]
		if !ok {
			continue
		}
		if author, ok := entry["author"]; ok {
			t.setAuthor(author)
		}
		t.setHeadline(entry)
		t.setDates(entry)
		if u := entryURL(entry); u != "" {
			t.article.URL = u
		}
	}

	t.article.PubDate = t.reconcile("published", t.structured.published, t.inline.published)
	t.article.LastUpdated = t.reconcile("modified", t.structured.modified, t.inline.modified)
}

func (t *traversal) setAuthor(v any) {
	name, ok := authorName(v)
	if !ok {
		t.logger.Error("unsupported author format", "author", v)
		return
	}
	if name != "" {
		t.article.Author = name
	}
}

func (t *traversal) setHeadline(entry map[string]any) {
	headline, _ := entry["headline"].(string)
	if headline == "" {
		return
	}
	headline = strings.Replace(headline, "&quot;", "„", 1)
	headline = strings.Replace(headline, "&quot;", "”", 1)
	t.article.Title = headline
}

func (t *traversal) setDates(entry map[string]any) {
	if s, ok := entry["datePublished"].(string); ok && s != "" {
		if d, ok := t.parseISO("datePublished", s); ok {
			t.structured.published = d
		}
	}
	if s, ok := entry["dateModified"].(string); ok && s != "" {
		if d, ok := t.parseISO("dateModified", s); ok {
			t.structured.modified = d
		}
	}
}

// reconcile picks the structured value when present and warns when the
// inline source disagrees about the day.
func (t *traversal) reconcile(field string, structured, inline time.Time) time.Time {
	switch {
	case structured.IsZero():
		return inline
	case !inline.IsZero() && structured.Format(time.DateOnly) != inline.Format(time.DateOnly):
		t.logger.Warn("date mismatch", "field", field, "structured", structured, "inline", inline)
	}
	return structured
}

func (t *traversal) parseISO(field, s string) (time.Time, bool) {
	d, err := dateparse.ParseIn(strings.TrimSpace(s), time.UTC)
	if err != nil {
		t.logger.Error("unparseable date", "field", field, "value", s, "err", err)
		return time.Time{}, false
	}
	return d, true
}

func (t *traversal) parseLayout(field, layout, s string) (time.Time, bool) {
	d, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		t.logger.Error("unparseable date", "field", field, "value", s, "err", err)
		return time.Time{}, false
	}
	return d, true
}

// removeNoisyMetadata drops bulky keys that carry nothing the article
// record needs.
func (t *traversal) removeNoisyMetadata() {
	for _, entry := range t.metadata {
		for _, key := range noisyMetadataKeys {
			delete(entry, key)
		}
	}
	for _, key := range noisyMetadataKeys {
		delete(t.metadata, key)
	}
}

func authorName(v any) (string, bool) {
	switch a := v.(type) {
	case string:
		return a, true
	case map[string]any:
		name, ok := a["name"].(string)
		return name, ok
	case []any:
		names := make([]string, 0, len(a))
		for _, item := range a {
			name, ok := authorName(item)
			if !ok {
				return "", false
			}
			names = append(names, name)
		}
		return strings.Join(names, " and "), true
	}
	return "", false
}

func entryURL(entry map[string]any) string {
	if u, ok := entry["url"].(string); ok && u != "" {
		return u
	}
	switch page := entry["mainEntityOfPage"].(type) {
	case string:
		if strings.Contains(page, "http") {
			return page
		}
	case map[string]any:
		if u, ok := page["url"].(string); ok {
			return u
		}
	}
	return ""
}

func typeName(v any) (string, bool) {
	switch typ := v.(type) {
	case string:
		return typ, typ != ""
	case []any:
		if len(typ) > 0 {
			s, ok := typ[0].(string)
			return s, ok && s != ""
		}
	}
	return "", false
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
