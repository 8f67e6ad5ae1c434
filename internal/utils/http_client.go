package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. All resty methods are available directly.
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("https://generativelanguage.googleapis.com")
//	resp, err := client.R().SetBody(body).Post("/v1/models/m:generateContent")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool. Automatic
// retries are left disabled: callers substitute fallbacks instead.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetRetryCount(0)}
}
