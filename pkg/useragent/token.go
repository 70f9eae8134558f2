package useragent

import (
	"regexp"
	"strings"
)

// Token is one PRODUCT/VERSION segment of a user agent string together with
// the details found in the comment that follows it.
type Token struct {
	Product string   `json:"product"`
	Version string   `json:"version"`
	Details []string `json:"details,omitempty"`
}

// tokenRegex matches "Product/Version" optionally followed by " (detail; detail)".
var tokenRegex = regexp.MustCompile(`([^ /]+)/([^ ]+)(?: \(([^)]+)\))?`)

// tokenize scans the raw string left to right and returns the tokens in the
// order they occur.
func tokenize(raw string) []Token {
	if raw == "" {
		return nil
	}

	matches := tokenRegex.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{
			Product: m[1],
			Version: m[2],
			Details: splitDetails(m[3]),
		})
	}
	return tokens
}

// splitDetails turns "MSIE 9.0; Windows NT 6.1" into ["MSIE 9.0", "Windows NT 6.1"].
// Only ";" separates details. Trailing empty fields are dropped.
func splitDetails(comment string) []string {
	parts := strings.Split(comment, ";")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return nil
	}

	details := make([]string, 0, len(parts))
	for _, p := range parts {
		details = append(details, strings.TrimSpace(p))
	}
	return details
}
