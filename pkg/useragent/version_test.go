package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		version string
		number  float64
		ok      bool
	}{
		{"IE 9 from MSIE detail", ie9UA, "9.0", 9.0, true},
		{"IE 10", "Mozilla/5.0 (compatible; MSIE 10.0; Windows NT 6.2; Trident/6.0)", "10.0", 10.0, true},
		{"Chrome from primary token", chromeMacUA, "20.0.1132.47", 20.0, true},
		{"old iPhone from Version product", iPhoneUA, "3.0", 3.0, true},
		{"iPod from Version product", iPodUA, "3.0", 3.0, true},
		{"iPad from iOS release", iPadUA, "4.2.1", 4.2, true},
		{
			"iPhone OS release wins over Version product",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
			"14.4", 14.4, true,
		},
		{
			"Opera from Version product",
			"Opera/9.80 (Windows NT 6.1; U; en) Presto/2.10.229 Version/11.62",
			"11.62", 11.62, true,
		},
		{
			"Gecko build date for Firefox",
			"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0",
			"20100101", 20100101, true,
		},
		{"MSIE without number", "Mozilla/4.0 (compatible; MSIE)", "", 0, false},
		{"non-numeric primary version", "Mozilla/5.0 Chrome/beta", "beta", 0, false},
		{"unknown", "curl/8.4.0", "", 0, false},
		{"empty", "", "", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ua := useragent.Parse(tc.ua)
			assert.Equal(t, tc.version, ua.Version())

			n, ok := ua.VersionNumber()
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.number, n, 1e-9)
		})
	}
}

func TestIOSVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4.2.1", useragent.Parse(iPadUA).IOSVersion())
	assert.Empty(t, useragent.Parse(iPhoneUA).IOSVersion(), "\"CPU like Mac OS X\" carries no release")
	assert.Empty(t, useragent.Parse(chromeMacUA).IOSVersion())
}
