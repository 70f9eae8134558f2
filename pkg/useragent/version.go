package useragent

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	iosCPUPattern    = regexp.MustCompile(`^CPU(?: iPhone)? OS`)
	iosVersionDigits = regexp.MustCompile(`[0-9_]+`)
	leadingNumber    = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?`)
)

// IOSVersion returns the iOS release from a "CPU OS 4_3_3" or
// "CPU iPhone OS 14_4" detail, with dots instead of underscores.
// It returns an empty string for anything that is not iOS.
func (ua UserAgent) IOSVersion() string {
	d, ok := ua.HasDetail(iosCPUPattern, productMozilla)
	if !ok {
		return ""
	}
	digits := iosVersionDigits.FindString(d)
	return strings.ReplaceAll(digits, "_", ".")
}

// Version returns the browser version string, or an empty string when it
// cannot be determined. Resolution order:
//
//  1. the iOS release (Mobile Safari reports the OS, not the browser);
//  2. the "Version/x" product, used by Safari and Opera;
//  3. the number in the "MSIE x.y" detail;
//  4. the version of the primary browser token.
func (ua UserAgent) Version() string {
	if v := ua.IOSVersion(); v != "" {
		return v
	}

	if t, ok := ua.Product(productVersion); ok {
		return t.Version
	}

	if d, ok := ua.HasDetail(msiePrefix, productMozilla); ok {
		return msieVersion.FindString(d)
	}

	if _, t, ok := ua.browserToken(); ok {
		return t.Version
	}

	return ""
}

// VersionNumber parses the leading "major" or "major.minor" of Version.
// The boolean is false when there is no version or it does not start with a digit.
func (ua UserAgent) VersionNumber() (float64, bool) {
	num := leadingNumber.FindString(ua.Version())
	if num == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
