package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaclass/internal/web"
	"github.com/dmitrymomot/uaclass/pkg/config"
	"github.com/dmitrymomot/uaclass/pkg/environment"
	"github.com/dmitrymomot/uaclass/pkg/httpserver"
	"github.com/dmitrymomot/uaclass/pkg/logger"
	"github.com/dmitrymomot/uaclass/pkg/requestid"
	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

// ServeConfig is read from the environment (and .env) by the serve command.
type ServeConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"uaclass"`
	HTTP    httpserver.Config
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the classification HTTP service",
		Long: `Run the HTTP service. Configuration comes from environment variables
(APP_ENV, APP_NAME, HTTP_ADDR, HTTP_*_TIMEOUT); a .env file is read if present.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load[ServeConfig]()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			env := environment.Parse(cfg.Env)
			log := logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithEnvironment(cfg.Env, cfg.Service),
				logger.WithContextExtractors(
					requestid.LoggerExtractor(),
					useragent.LoggerExtractor(),
				),
			)
			logger.SetAsDefault(log)

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), web.NewRouter(log, env))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")

	return cmd
}
