// Package logger builds *slog.Logger instances for the uaclass service and CLI.
//
// New creates a logger from functional options: output format (json or text),
// minimum level, static attributes and ContextExtractor callbacks. Extractors
// run on every record and pull request-scoped values out of the context, for
// example the request id or the browser detected by the useragent middleware:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "uaclass"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        useragent.LoggerExtractor(),
//	    ),
//	)
//
//	log.InfoContext(r.Context(), "classified", useragent.Attr(ua))
//
// Attribute helpers in attr.go keep key names consistent; Error and Errors
// return an empty attribute for nil errors so callers need no nil checks.
package logger
