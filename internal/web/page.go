package web

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>uaclass</title>
</head>
`

// IndexPage renders a page whose <body> carries the visitor's class list,
// followed by a summary of what was detected.
func IndexPage(ua useragent.UserAgent) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(w, pageHead+"<body"); err != nil {
			return err
		}
		if err := templ.RenderAttributes(ctx, w, ua.BodyAttributes()); err != nil {
			return err
		}

		b := ua.Browser()
		for _, s := range []string{
			">\n<h1>", templ.EscapeString(b.Name), " ", templ.EscapeString(b.Version), "</h1>\n",
			"<p><code>", templ.EscapeString(ua.String()), "</code></p>\n",
			"</body>\n</html>\n",
		} {
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		}
		return nil
	})
}
