package useragent

import (
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// aspects is the explicit list of class names rendered by HTMLClass.
var aspects = []struct {
	name  string
	check func(UserAgent) bool
}{
	{"webkit", UserAgent.IsWebKit},
	{"chrome", UserAgent.IsChrome},
	{"safari", UserAgent.IsSafari},
	{"ios", UserAgent.IsIOS},
	{"gecko", UserAgent.IsGecko},
	{"opera", UserAgent.IsOpera},
	{"ie", UserAgent.IsIE},
	{"linux", UserAgent.IsLinux},
	{"blackberry", UserAgent.IsBlackberry},
	{"nokia", UserAgent.IsNokia},
	{"android", UserAgent.IsAndroid},
	{"iphone", UserAgent.IsIPhone},
	{"ipod", UserAgent.IsIPod},
	{"ipad", UserAgent.IsIPad},
	{"windows", UserAgent.IsWindows},
	{"osx", UserAgent.IsOSX},
	{"mac", UserAgent.IsMac},
	{"ie6", UserAgent.IsIE6},
	{"ie7", UserAgent.IsIE7},
	{"ie8", UserAgent.IsIE8},
	{"ie9", UserAgent.IsIE9},
	{"ie10", UserAgent.IsIE10},
}

// Is reports whether the named aspect (any name returned by Classes) matches.
// Unknown names return false.
func (ua UserAgent) Is(name string) bool {
	for _, a := range aspects {
		if a.name == name {
			return a.check(ua)
		}
	}
	return false
}

// Classes returns the names of all matching aspects, sorted.
func (ua UserAgent) Classes() []string {
	out := make([]string, 0, 4)
	for _, a := range aspects {
		if a.check(ua) {
			out = append(out, a.name)
		}
	}
	sort.Strings(out)
	return out
}

// HTMLClass returns Classes joined with single spaces, e.g. "chrome mac osx webkit".
func (ua UserAgent) HTMLClass() string {
	return strings.Join(ua.Classes(), " ")
}

// BodyAttributes returns the class list as templ attributes, for spreading on
// the <html> or <body> element of a templ layout.
func (ua UserAgent) BodyAttributes() templ.Attributes {
	return templ.Attributes{"class": ua.HTMLClass()}
}
