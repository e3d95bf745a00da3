package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders is the lookup order used when no headers are given.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver returns a function that extracts the client address of r.
// It returns an empty string when nothing valid is found.
func Resolver(headers ...string) func(r *http.Request) string {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	return func(r *http.Request) string {
		for _, h := range headers {
			v := r.Header.Get(h)
			if v == "" {
				continue
			}
			// X-Forwarded-For and friends may carry a list; the first hop is the client.
			for part := range strings.SplitSeq(v, ",") {
				if ip := normalize(part); ip != "" {
					return ip
				}
			}
		}
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return normalize(r.RemoteAddr)
		}
		return normalize(host)
	}
}

// GetIP resolves the client address using DefaultHeaders.
func GetIP(r *http.Request) string {
	return Resolver()(r)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
