package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

// Output fields accepted by --field.
const (
	fieldClass   = "class"
	fieldBrowser = "browser"
	fieldVersion = "version"
)

func newClassifyCmd() *cobra.Command {
	var (
		asJSON bool
		field  string
	)

	cmd := &cobra.Command{
		Use:   "classify [user-agent...]",
		Short: "Print the classification of each user agent",
		Long: `Classify user agent strings given as arguments, or one per line on stdin
when no arguments are given. By default the HTML class list is printed.`,
		Example: `  uaclass classify "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)"
  cut -d'"' -f6 access.log | uaclass classify --field browser`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch field {
			case fieldClass, fieldBrowser, fieldVersion:
			default:
				return fmt.Errorf("unknown field %q: must be %s, %s or %s", field, fieldClass, fieldBrowser, fieldVersion)
			}

			log := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)

			emit := func(raw string) error {
				ua := useragent.Parse(raw)
				log.Debug("classified", useragent.Attr(ua))
				if asJSON {
					return enc.Encode(ua)
				}
				_, err := fmt.Fprintln(out, render(ua, field))
				return err
			}

			if len(args) > 0 {
				for _, raw := range args {
					if err := emit(raw); err != nil {
						return err
					}
				}
				return nil
			}
			return eachLine(cmd.InOrStdin(), emit)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full classification as JSON lines")
	cmd.Flags().StringVarP(&field, "field", "f", fieldClass, "field to print: class, browser or version")

	return cmd
}

func render(ua useragent.UserAgent, field string) string {
	switch field {
	case fieldBrowser:
		b := ua.Browser()
		if b.Version == "" {
			return b.Name
		}
		return b.Name + " " + b.Version
	case fieldVersion:
		return ua.Version()
	default:
		return ua.HTMLClass()
	}
}

// eachLine calls fn for every non-blank line of r.
func eachLine(r io.Reader, fn func(string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}
