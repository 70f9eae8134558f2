package useragent

import "regexp"

// OS and device detail matchers, applied to the Mozilla token's comment.
var (
	linuxPrefix      = Prefix("Linux")
	iPhonePrefix     = Prefix("iPhone")
	iPodPrefix       = Prefix("iPod")
	androidPrefix    = Prefix("Android")
	nokiaPrefix      = Prefix("Nokia")
	seriesPattern    = regexp.MustCompile(`^Series[38]0`)
	iPadPrefix       = Prefix("iPad")
	windowsPrefix    = Prefix("Windows")
	osxPattern       = regexp.MustCompile(`^(Intel )?Mac OS X`)
	macintoshPrefix  = Prefix("Macintosh")
	blackberryPrefix = Prefix("Blackberry")
)

func (ua UserAgent) IsLinux() bool   { return ua.mozillaDetail(linuxPrefix) }
func (ua UserAgent) IsIPhone() bool  { return ua.mozillaDetail(iPhonePrefix) }
func (ua UserAgent) IsIPod() bool    { return ua.mozillaDetail(iPodPrefix) }
func (ua UserAgent) IsAndroid() bool { return ua.mozillaDetail(androidPrefix) }
func (ua UserAgent) IsIPad() bool    { return ua.mozillaDetail(iPadPrefix) }
func (ua UserAgent) IsWindows() bool { return ua.mozillaDetail(windowsPrefix) }

// IsNokia also covers Symbian Series30/Series80 devices.
func (ua UserAgent) IsNokia() bool {
	return ua.mozillaDetail(nokiaPrefix) || ua.mozillaDetail(seriesPattern)
}

// IsOSX reports "Mac OS X" or "Intel Mac OS X". iOS devices say
// "like Mac OS X" and are not matched.
func (ua UserAgent) IsOSX() bool { return ua.mozillaDetail(osxPattern) }

// IsMac reports any Macintosh, with or without an OS X detail.
func (ua UserAgent) IsMac() bool {
	return ua.mozillaDetail(macintoshPrefix) || ua.IsOSX()
}

// IsBlackberry matching is case-sensitive: "BlackBerry" devices are not reported.
func (ua UserAgent) IsBlackberry() bool { return ua.mozillaDetail(blackberryPrefix) }
