// Package environment names the deployment environment the landing service
// runs in and propagates it through context.Context and structured logs.
//
// Parse normalises the APP_ENV value ("prod", "stage", "dev" and their long
// forms) into an Environment. The value can be attached to request contexts
// with Middleware and read back with FromContext; LoggerExtractor turns it into
// a slog attribute for the logger's context extractors.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
//	if environment.FromContext(ctx).IsProduction() {
//		// production-only behaviour
//	}
package environment
