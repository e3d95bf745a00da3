package logger

import (
	"log/slog"
	"strings"
)

// RedactEmail masks the local part of an address for logging.
// "john.doe@example.com" becomes "jo***@example.com"; local parts of two
// characters or fewer are masked entirely. Values without exactly one "@"
// become "***".
func RedactEmail(addr string) string {
	local, domain, ok := strings.Cut(addr, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + domain
	}
	return "***@" + domain
}

// redactEmailAttr is a slog ReplaceAttr hook masking "email" string attributes.
func redactEmailAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == KeyEmail && a.Value.Kind() == slog.KindString {
		a.Value = slog.StringValue(RedactEmail(a.Value.String()))
	}
	return a
}
