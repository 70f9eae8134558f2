// Package useragent classifies HTTP User-Agent strings for server-rendered views.
//
// A User-Agent header is split once, at construction time, into an ordered list
// of tokens. Each token is a PRODUCT/VERSION pair optionally followed by a
// parenthesised comment whose semicolon-separated parts become the token details:
//
//	Mozilla/5.0 (Macintosh; Intel Mac OS X 10_6_8) AppleWebKit/536.11 Chrome/20.0
//
//	→ {Mozilla 5.0 [Macintosh, Intel Mac OS X 10_6_8]}
//	  {AppleWebKit 536.11 []}
//	  {Chrome 20.0 []}
//
// Every predicate (IsChrome, IsIOS, IsWindows, IsIE9, …) is a pure function of
// that token list. The classifier is a best-effort heuristic: it never fails and
// never returns an error; input it does not understand simply matches nothing.
//
// # Usage
//
// Import the package:
//
//	import "github.com/dmitrymomot/uaclass/pkg/useragent"
//
// Classify a request and branch on the result:
//
//	ua := useragent.Parse(r.UserAgent())
//
//	if ua.IsIOS() {
//	    // suggest the mobile app
//	}
//
//	log.Printf("browser=%s version=%s", ua.Browser().Name, ua.Version())
//
// HTMLClass returns a sorted, space-separated list of every matching aspect,
// ready to be put on the <html> or <body> element:
//
//	<body class="chrome mac osx webkit">
//	<body class="ie ie9 windows">
//
// In templ views the same list can be spread with BodyAttributes:
//
//	<body { ua.BodyAttributes()... }>
//
// # Request integration
//
// Middleware parses the request's User-Agent once and stores the result in the
// request context. Handlers read it back with FromContext or FromRequest, and
// LoggerExtractor exposes the detected browser to the logger package.
//
// # Concurrency
//
// UserAgent is immutable after Parse and every method has a value receiver, so
// a single value may be shared between goroutines without locking.
package useragent
