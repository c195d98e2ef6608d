package webhook

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 64 << 10

// problemDetail is the subset of an RFC 7807 body the receiver may send back.
type problemDetail struct {
	Detail string `json:"detail"`
}

// translateHTTPError maps a rejected delivery to a domain error. 4xx answers
// other than 408/429 mean the receiver will never accept the payload as sent;
// everything else is treated as the receiver being unavailable.
func translateHTTPError(resp *http.Response) error {
	detail := parseProblemDetail(resp).Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("webhook rejected delivery (%d %s): %w", resp.StatusCode, detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("webhook throttled delivery (%d %s): %w", resp.StatusCode, detail, domain.ErrUnavailable)

	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		return fmt.Errorf("webhook rejected delivery (%d %s): %w", resp.StatusCode, detail, domain.ErrValidation)

	default:
		return fmt.Errorf("webhook unavailable (%d %s): %w", resp.StatusCode, detail, domain.ErrUnavailable)
	}
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}
