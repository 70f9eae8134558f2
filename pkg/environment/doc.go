// Package environment names the deployment environment (development, staging,
// production) and carries it through context.Context and structured logs.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" → Production
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(ctx) {
//	    // ...
//	}
//
// LoggerExtractor adds an "env" attribute to records logged with a request context.
package environment
