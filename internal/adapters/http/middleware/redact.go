package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders turns headers into log attributes. Credential headers, as
// decided by logging.IsSensitiveHeader, are replaced with "[REDACTED]".
// Repeated values are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		value := strings.Join(vals, ",")
		if logging.IsSensitiveHeader(key) {
			value = redacted
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
