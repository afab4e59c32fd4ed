// Package downstream wraps outbound calls to the helper services. The
// adapter never surfaces a transport error: every call resolves to an
// HTTP status and a body the gateway can relay as-is.
package downstream

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Adapter issues single HTTP calls bounded by a fixed timeout. There
// is no retry and no circuit breaking; a timed-out call is reported
// the same way as a refused connection.
type Adapter struct {
	client *resty.Client
}

// New returns an adapter whose every call is bounded by timeout.
func New(timeout time.Duration) *Adapter {
	return &Adapter{client: resty.New().SetTimeout(timeout)}
}

// Call performs one request and reports (status, body). A response
// declaring a JSON content type is decoded; anything else comes back
// as raw text. Transport failures (refused, DNS, timeout) synthesize
// a 503 with the target attached so the caller can surface which
// service was down.
func (a *Adapter) Call(ctx context.Context, method, url string, body interface{}) (int, interface{}) {
	req := a.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	resp, err := req.Execute(method, url)
	if err != nil {
		return http.StatusServiceUnavailable, map[string]interface{}{
			"error":  "service_unavailable",
			"detail": err.Error(),
			"target": url,
		}
	}
	return resp.StatusCode(), decodeBody(resp)
}

func decodeBody(resp *resty.Response) interface{} {
	raw := resp.Body()
	if strings.Contains(resp.Header().Get("Content-Type"), "application/json") {
		var v interface{}
		if err := json.Unmarshal(raw, &v); err == nil {
			return v
		}
		// declared JSON but undecodable: fall through to raw text
	}
	return string(raw)
}
