package useragent

import (
	"encoding/json"
	"slices"
	"strings"
)

// Product names the classifier looks for.
const (
	productMozilla = "Mozilla"
	productWebKit  = "AppleWebKit"
	productChrome  = "Chrome"
	productSafari  = "Safari"
	productMobile  = "Mobile"
	productGecko   = "Gecko"
	productOpera   = "Opera"
	productVersion = "Version"
)

// UserAgent is the immutable classification of a single user agent string.
// The zero value is a valid classification that matches nothing.
type UserAgent struct {
	raw    string
	tokens []Token
}

// Parse splits the raw user agent string into tokens. It never fails: input
// without any recognisable segment yields a classification with no tokens.
func Parse(raw string) UserAgent {
	return UserAgent{
		raw:    raw,
		tokens: tokenize(raw),
	}
}

// String returns the raw user agent string.
func (ua UserAgent) String() string { return ua.raw }

// Tokens returns a copy of the parsed tokens in order of occurrence.
func (ua UserAgent) Tokens() []Token {
	out := make([]Token, len(ua.tokens))
	for i, t := range ua.tokens {
		out[i] = Token{
			Product: t.Product,
			Version: t.Version,
			Details: slices.Clone(t.Details),
		}
	}
	return out
}

// IsEmpty reports whether no token was found in the user agent string.
func (ua UserAgent) IsEmpty() bool { return len(ua.tokens) == 0 }

// Product returns the first token whose product equals name (case-sensitive).
func (ua UserAgent) Product(name string) (Token, bool) {
	for _, t := range ua.tokens {
		if t.Product == name {
			return t, true
		}
	}
	return Token{}, false
}

// HasProduct reports whether any token carries the given product name.
func (ua UserAgent) HasProduct(name string) bool {
	_, ok := ua.Product(name)
	return ok
}

// HasDetail scans tokens in order and returns the first detail accepted by m.
// When product is not empty only tokens of that product are inspected.
func (ua UserAgent) HasDetail(m Matcher, product string) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, t := range ua.tokens {
		if product != "" && t.Product != product {
			continue
		}
		for _, d := range t.Details {
			if m.MatchString(d) {
				return d, true
			}
		}
	}
	return "", false
}

// mozillaDetail is the common lookup for OS and device flags, which are all
// carried in the comment of the leading Mozilla token.
func (ua UserAgent) mozillaDetail(m Matcher) bool {
	_, ok := ua.HasDetail(m, productMozilla)
	return ok
}

// Matcher tests a single detail string.
// *regexp.Regexp satisfies it.
type Matcher interface {
	MatchString(s string) bool
}

// MatchFunc adapts a plain function to the Matcher interface.
type MatchFunc func(s string) bool

// MatchString calls f(s).
func (f MatchFunc) MatchString(s string) bool { return f(s) }

// Prefix matches details starting with p.
func Prefix(p string) Matcher {
	return MatchFunc(func(s string) bool { return strings.HasPrefix(s, p) })
}

// Exact matches details equal to v.
func Exact(v string) Matcher {
	return MatchFunc(func(s string) bool { return s == v })
}

type jsonUserAgent struct {
	UserAgent string   `json:"user_agent"`
	Browser   Browser  `json:"browser"`
	Version   string   `json:"version,omitempty"`
	Classes   []string `json:"classes"`
	Tokens    []Token  `json:"tokens"`
}

// MarshalJSON encodes the raw string, the detected browser and class list,
// and the parsed tokens.
func (ua UserAgent) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonUserAgent{
		UserAgent: ua.raw,
		Browser:   ua.Browser(),
		Version:   ua.Version(),
		Classes:   ua.Classes(),
		Tokens:    ua.Tokens(),
	})
}
