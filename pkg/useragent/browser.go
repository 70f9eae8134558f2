package useragent

import "regexp"

// Browser name identifiers. They double as HTML class names.
const (
	BrowserChrome  = "chrome"
	BrowserIOS     = "ios"
	BrowserSafari  = "safari"
	BrowserGecko   = "gecko"
	BrowserOpera   = "opera"
	BrowserIE      = "ie"
	BrowserUnknown = "unknown"
)

// Browser represents the primary browser of a user agent.
type Browser struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

var (
	msiePrefix  = Prefix("MSIE")
	ie10Prefix  = Prefix("MSIE 10.0")
	ie9Prefix   = Prefix("MSIE 9.0")
	ie8Prefix   = Prefix("MSIE 8.0")
	ie7Prefix   = Prefix("MSIE 7.0")
	ie6Prefix   = Prefix("MSIE 6")
	msieVersion = regexp.MustCompile(`([0-9.]+)$`)
)

// IsWebKit reports any WebKit based browser.
func (ua UserAgent) IsWebKit() bool { return ua.HasProduct(productWebKit) }

// IsChrome reports Google Chrome (and Chromium derivatives that keep the Chrome token).
func (ua UserAgent) IsChrome() bool { return ua.HasProduct(productChrome) }

// IsIOS reports Mobile Safari.
func (ua UserAgent) IsIOS() bool {
	return ua.HasProduct(productSafari) && ua.HasProduct(productMobile)
}

// IsSafari reports desktop Safari only.
func (ua UserAgent) IsSafari() bool {
	return ua.HasProduct(productSafari) && !ua.IsChrome() && !ua.IsIOS()
}

func (ua UserAgent) IsGecko() bool { return ua.HasProduct(productGecko) }

func (ua UserAgent) IsOpera() bool { return ua.HasProduct(productOpera) }

// IsIE reports Internet Explorer, which hides itself in the Mozilla comment
// as "MSIE x.y".
func (ua UserAgent) IsIE() bool { return ua.mozillaDetail(msiePrefix) }

func (ua UserAgent) IsIE10() bool { return ua.mozillaDetail(ie10Prefix) }
func (ua UserAgent) IsIE9() bool  { return ua.mozillaDetail(ie9Prefix) }
func (ua UserAgent) IsIE8() bool  { return ua.mozillaDetail(ie8Prefix) }
func (ua UserAgent) IsIE7() bool  { return ua.mozillaDetail(ie7Prefix) }
func (ua UserAgent) IsIE6() bool  { return ua.mozillaDetail(ie6Prefix) }

// browserPriority is the fixed order used to pick the primary browser.
// Changing it changes Version() on user agents that carry several products.
var browserPriority = []struct {
	name    string
	match   func(UserAgent) bool
	product string
}{
	{BrowserChrome, UserAgent.IsChrome, productChrome},
	{BrowserIOS, UserAgent.IsIOS, productMobile},
	{BrowserSafari, UserAgent.IsSafari, productSafari},
	{BrowserGecko, UserAgent.IsGecko, productGecko},
	{BrowserOpera, UserAgent.IsOpera, productOpera},
	{BrowserIE, UserAgent.IsIE, productMozilla},
}

// browserToken returns the name and the token that carries the browser's info.
func (ua UserAgent) browserToken() (string, Token, bool) {
	for _, b := range browserPriority {
		if b.match(ua) {
			t, ok := ua.Product(b.product)
			return b.name, t, ok
		}
	}
	return "", Token{}, false
}

// Browser returns the primary browser name and version.
// Name is BrowserUnknown when no browser family matches.
func (ua UserAgent) Browser() Browser {
	name, _, _ := ua.browserToken()
	if name == "" {
		return Browser{Name: BrowserUnknown, Version: ua.Version()}
	}
	return Browser{Name: name, Version: ua.Version()}
}
