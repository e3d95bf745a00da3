// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Headers are examined in order and the first one carrying a valid address
// wins; RemoteAddr is the fallback. The default order covers Cloudflare,
// DigitalOcean App Platform, X-Forwarded-For and X-Real-IP. Pass a custom
// list to Resolver when only some proxies are trusted.
//
//	r.Use(clientip.Middleware(clientip.DefaultHeaders...))
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
