package presscut

// Converter converts extracted HTML into article text.
type Converter interface {
	// Convert transforms HTML content into Markdown-flavoured text.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
