// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown driven by context cancellation.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled or Shutdown is called, then drains
// in-flight requests for at most the configured shutdown timeout.
package httpserver
