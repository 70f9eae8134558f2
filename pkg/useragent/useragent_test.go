package useragent_test

import (
	"encoding/json"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

const (
	ie9UA       = "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)"
	chromeMacUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_6_8) AppleWebKit/536.11 (KHTML, like Gecko) Chrome/20.0.1132.47 Safari/536.11"
	iPhoneUA    = "Mozilla/5.0 (iPhone; U; CPU like Mac OS X; en) AppleWebKit/420 (KHTML, like Gecko) Version/3.0 Mobile/1C28 Safari/419.3"
	iPadUA      = "Mozilla/5.0 (iPad; U; CPU OS 4_2_1 like Mac OS X; ja-jp) AppleWebKit/533.17.9 (KHTML, like Gecko) Version/5.0.2 Mobile/8C148 Safari/6533.18.5"
	iPodUA      = "Mozilla/5.0 (iPod; U; CPU like Mac OS X; en) AppleWebKit/420.1 (KHTML, like Geckto) Version/3.0 Mobile/3A101a Safari/419.3"
)

func TestParse_Tokens(t *testing.T) {
	t.Parallel()

	ua := useragent.Parse(iPadUA)
	tokens := ua.Tokens()

	require.Len(t, tokens, 5)
	assert.Equal(t, useragent.Token{
		Product: "Mozilla",
		Version: "5.0",
		Details: []string{"iPad", "U", "CPU OS 4_2_1 like Mac OS X", "ja-jp"},
	}, tokens[0])
	assert.Equal(t, useragent.Token{
		Product: "AppleWebKit",
		Version: "533.17.9",
		Details: []string{"KHTML, like Gecko"},
	}, tokens[1])

	products := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		products = append(products, tok.Product)
	}
	assert.Equal(t, []string{"Mozilla", "AppleWebKit", "Version", "Mobile", "Safari"}, products)
	assert.Empty(t, tokens[4].Details)
	assert.Equal(t, iPadUA, ua.String())
}

func TestParse_Details(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		details []string
	}{
		{
			name:    "comma stays inside a detail",
			ua:      "Mozilla/5.0 (X11; Linux x86_64, en-US; rv:1.0)",
			details: []string{"X11", "Linux x86_64, en-US", "rv:1.0"},
		},
		{
			name:    "trailing separator",
			ua:      "Mozilla/5.0 (Windows NT 6.1; WOW64;)",
			details: []string{"Windows NT 6.1", "WOW64"},
		},
		{
			name:    "trailing separators only",
			ua:      "Mozilla/5.0 (;;;)",
			details: nil,
		},
		{
			name:    "inner empty field kept",
			ua:      "Mozilla/5.0 (Windows NT 6.1;; WOW64)",
			details: []string{"Windows NT 6.1", "", "WOW64"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := useragent.Parse(tt.ua).Tokens()
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.details, tokens[0].Details)
		})
	}

	_, ok := useragent.Parse("Mozilla/5.0 (Windows NT 6.1; WOW64;)").HasDetail(regexp.MustCompile(`^$`), "")
	assert.False(t, ok)
}

func TestParse_NeverFails(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		" ",
		"not a user agent",
		"/////",
		"Mozilla/",
		"Mozilla/5.0 (",
		"Mozilla/5.0 ()",
		"Mozilla/5.0 (;;;)",
		"((()))//",
		"\x00\xff/\xfe",
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			ua := useragent.Parse(in)
			_ = ua.HTMLClass()
			_ = ua.Version()
			_, _ = ua.VersionNumber()
			_ = ua.Browser()
		}, "input %q", in)
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	for _, ua := range []useragent.UserAgent{useragent.Parse(""), {}} {
		assert.True(t, ua.IsEmpty())
		assert.Empty(t, ua.Tokens())
		assert.Empty(t, ua.HTMLClass())
		assert.Empty(t, ua.Classes())
		assert.Empty(t, ua.Version())
		assert.False(t, ua.IsIE())
		assert.False(t, ua.IsWebKit())

		_, ok := ua.VersionNumber()
		assert.False(t, ok)
		assert.Equal(t, useragent.Browser{Name: useragent.BrowserUnknown}, ua.Browser())
	}
}

func TestParse_UnterminatedComment(t *testing.T) {
	t.Parallel()

	ua := useragent.Parse("Mozilla/5.0 (Windows NT 6.1 AppleWebKit/536.11")
	tokens := ua.Tokens()

	require.Len(t, tokens, 2)
	assert.Equal(t, "Mozilla", tokens[0].Product)
	assert.Empty(t, tokens[0].Details)
	assert.Equal(t, "AppleWebKit", tokens[1].Product)
	assert.False(t, ua.IsWindows())
}

func TestTokens_ReturnsCopy(t *testing.T) {
	t.Parallel()

	ua := useragent.Parse(ie9UA)
	tokens := ua.Tokens()
	tokens[0].Product = "Changed"
	tokens[0].Details[1] = "changed"

	assert.True(t, ua.IsIE())
	assert.True(t, ua.HasProduct("Mozilla"))
	assert.Equal(t, "MSIE 9.0", ua.Tokens()[0].Details[1])
}

func TestHasProduct(t *testing.T) {
	t.Parallel()

	ua := useragent.Parse(chromeMacUA)

	assert.True(t, ua.HasProduct("Chrome"))
	assert.True(t, ua.HasProduct("AppleWebKit"))
	assert.False(t, ua.HasProduct("chrome"), "product lookup is case-sensitive")
	assert.False(t, ua.HasProduct("Gecko"), "'like Gecko' is a detail, not a product")

	tok, ok := ua.Product("Safari")
	require.True(t, ok)
	assert.Equal(t, "536.11", tok.Version)
}

func TestHasDetail(t *testing.T) {
	t.Parallel()

	ua := useragent.Parse(ie9UA)

	t.Run("prefix with product filter", func(t *testing.T) {
		d, ok := ua.HasDetail(useragent.Prefix("MSIE"), "Mozilla")
		require.True(t, ok)
		assert.Equal(t, "MSIE 9.0", d)
	})

	t.Run("regexp without product filter", func(t *testing.T) {
		d, ok := ua.HasDetail(regexp.MustCompile(`^Windows NT \d`), "")
		require.True(t, ok)
		assert.Equal(t, "Windows NT 6.1", d)
	})

	t.Run("exact", func(t *testing.T) {
		d, ok := ua.HasDetail(useragent.Exact("compatible"), "Mozilla")
		require.True(t, ok)
		assert.Equal(t, "compatible", d)

		_, ok = ua.HasDetail(useragent.Exact("MSIE"), "Mozilla")
		assert.False(t, ok)
	})

	t.Run("product filter matching no token", func(t *testing.T) {
		d, ok := ua.HasDetail(useragent.Prefix("MSIE"), "Opera")
		assert.False(t, ok)
		assert.Empty(t, d)
	})

	t.Run("nil matcher", func(t *testing.T) {
		_, ok := ua.HasDetail(nil, "")
		assert.False(t, ok)
	})

	t.Run("first match wins", func(t *testing.T) {
		ua := useragent.Parse("Mozilla/5.0 (Linux; Linux x86_64) Other/1.0 (Linux armv7)")
		d, ok := ua.HasDetail(useragent.Prefix("Linux"), "")
		require.True(t, ok)
		assert.Equal(t, "Linux", d)

		d, ok = ua.HasDetail(useragent.Prefix("Linux a"), "")
		require.True(t, ok)
		assert.Equal(t, "Linux armv7", d)
	})
}

func TestUserAgent_Idempotent(t *testing.T) {
	t.Parallel()

	ua := useragent.Parse(chromeMacUA)
	first := []any{ua.HTMLClass(), ua.Version(), ua.Browser(), ua.IsChrome(), ua.IsMac()}
	second := []any{ua.HTMLClass(), ua.Version(), ua.Browser(), ua.IsChrome(), ua.IsMac()}
	assert.Equal(t, first, second)
}

func TestUserAgent_ConcurrentReads(t *testing.T) {
	t.Parallel()

	ua := useragent.Parse(iPadUA)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "ios ipad webkit", ua.HTMLClass())
			assert.Equal(t, "4.2.1", ua.Version())
		}()
	}
	wg.Wait()
}

func TestUserAgent_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("ie9", func(t *testing.T) {
		data, err := json.Marshal(useragent.Parse(ie9UA))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"user_agent": "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)",
			"browser": {"name": "ie", "version": "9.0"},
			"version": "9.0",
			"classes": ["ie", "ie9", "windows"],
			"tokens": [{
				"product": "Mozilla",
				"version": "5.0",
				"details": ["compatible", "MSIE 9.0", "Windows NT 6.1", "Trident/5.0"]
			}]
		}`, string(data))
	})

	t.Run("empty", func(t *testing.T) {
		data, err := json.Marshal(useragent.Parse(""))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"user_agent": "",
			"browser": {"name": "unknown"},
			"classes": [],
			"tokens": []
		}`, string(data))
	})
}
