package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders lists, in lower case, the request headers whose values
// never reach a log line.
var sensitiveHeaders = map[string]struct{}{
	"authorization":        {},
	"cookie":               {},
	"x-api-key":            {},
	"x-taskflow-signature": {},
}

// IsSensitiveHeader reports whether the named header carries credentials.
// The lookup ignores case.
func IsSensitiveHeader(name string) bool {
	_, ok := sensitiveHeaders[strings.ToLower(name)]
	return ok
}

// Attribute keys redacted wherever they appear. email covers user
// addresses; the rest are credentials or signing material.
var (
	sensitiveFields   = []string{"password", "secret", "token", "email", "signature", "secret_file"}
	sensitivePrefixes = []string{"secret_", "api_key"}
)

// Value patterns that slip past key-based redaction, for example a token
// embedded in an error message.
var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three dot-separated segments of 10+ chars keeps version strings out.
	jwtPattern       = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	hmacPattern      = regexp.MustCompile(`sha256=[0-9a-fA-F]{16,}`)
	inlineKeyPattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr builds the masq ReplaceAttr hook installed on every handler.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+4)
	for name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(hmacPattern),
		masq.WithRegex(inlineKeyPattern),
	)
	return masq.New(opts...)
}
