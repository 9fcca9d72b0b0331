package presscut

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FormatArticle renders the labelled text report of an article. The full
// form adds the charset and the residual metadata.
func FormatArticle(a *Article, full bool) string {
	pubDate := "?"
	if !a.PubDate.IsZero() {
		pubDate = a.PubDate.Format(time.DateOnly)
	}
	lastUpdate := "?"
	if !a.LastUpdated.IsZero() {
		lastUpdate = "--"
		if a.Updated() {
			lastUpdate = a.LastUpdated.Format(time.DateOnly)
		}
	}

	charset, metadata := "", ""
	if full {
		charset = "CHARSET: " + a.Charset
		metadata = "METADATA:\n" + formatMetadata(a.Metadata)
	}

	return strings.Join([]string{
		"TITLE: " + a.Title,
		"URL: " + a.URL,
		"AUTHOR(s): " + a.Author,
		"PUB_DATE: " + pubDate,
		"LAST_UPDATE: " + lastUpdate,
		"",
		charset,
		"DESCRIPTION: " + a.Description,
		metadata,
		"",
		"CONTENT:\n\n" + a.Content,
		"",
		"LINKS: \n" + formatLinks(a.Links),
	}, "\n")
}

// FormatErrors renders the data errors recorded for an article, one per
// line. Returns an empty string when there are none.
func FormatErrors(a *Article) string {
	if len(a.Errors) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("ERRORS:\n")
	for _, e := range a.Errors {
		b.WriteString("  ")
		b.WriteString(string(e))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatLinks(links []string) string {
	if len(links) == 0 {
		return "--"
	}
	var b strings.Builder
	for i, link := range links {
		b.WriteString("L" + strconv.Itoa(i+1) + " \t" + link + "\n")
	}
	return b.String()
}

func formatMetadata(m map[string]map[string]any) string {
	if len(m) == 0 {
		return "{}"
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
