package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

type outcome int

const (
	outcomeSuppressed outcome = iota
	outcomeDelivered
	outcomeClientRejected
	outcomeServerError
	outcomeTransportError
)

func (o outcome) String() string {
	switch o {
	case outcomeSuppressed:
		return "suppressed"
	case outcomeDelivered:
		return "delivered"
	case outcomeClientRejected:
		return "client-rejected"
	case outcomeServerError:
		return "server-error"
	case outcomeTransportError:
		return "transport-error"
	}
	return "unknown"
}

var errServerError = errors.New("server error when processing message")

// delivery is the result of one webhook POST.
type delivery struct {
	Outcome    outcome
	StatusCode int
	Status     string
	Body       string
	BodyErr    error
}

type webhookClient struct {
	url    string
	client *retryablehttp.Client
}

// newWebhookClient returns a client that makes exactly one attempt per post.
// Redelivery is left to the Lambda async retry policy.
func newWebhookClient(url string, timeout time.Duration) *webhookClient {
	rC := retryablehttp.NewClient()
	rC.Logger = retryLogger{}
	rC.RetryMax = 0
	rC.CheckRetry = noRetry
	rC.HTTPClient.Timeout = timeout
	// a 3xx is graded as is; following it would be a second request
	rC.HTTPClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &webhookClient{url: url, client: rC}
}

func noRetry(ctx context.Context, _ *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	return false, err
}

func (w *webhookClient) post(ctx context.Context, body []byte) (delivery, error) {
	req, err := retryablehttp.NewRequest(http.MethodPost, w.url, body)
	if err != nil {
		return delivery{Outcome: outcomeTransportError}, fmt.Errorf("failed to create POST req: %w", err)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return delivery{Outcome: outcomeTransportError}, fmt.Errorf("failed to post message: %w", err)
	}
	defer resp.Body.Close()
	b, readErr := io.ReadAll(resp.Body)

	d := delivery{
		StatusCode: resp.StatusCode,
		Status:     statusText(resp),
		Body:       string(b),
		BodyErr:    readErr,
	}

	switch {
	case resp.StatusCode < 400:
		d.Outcome = outcomeDelivered
		return d, nil
	case resp.StatusCode < 500:
		d.Outcome = outcomeClientRejected
		return d, nil
	default:
		d.Outcome = outcomeServerError
		return d, fmt.Errorf("%w: %d - %s", errServerError, d.StatusCode, d.Status)
	}
}

// statusText is the server's reason phrase, or Go's text for the code when
// the server sent none.
func statusText(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		return http.StatusText(resp.StatusCode)
	}
	return reason
}
