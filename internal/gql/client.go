package gql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"loyalty_admin/internal/config"
	"loyalty_admin/internal/session"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const graphQLPath = "/graphql"

var (
	ErrUnauthorized = errors.New("loyalty api unauthorized")
	ErrRateLimited  = errors.New("loyalty api rate limited")
)

type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("loyalty api error: %s", e.Status)
	}
	return fmt.Sprintf("loyalty api error: %s: %s", e.Status, e.Body)
}

// Client posts GraphQL documents to the single backend endpoint. The
// session store is consulted before every request; a bearer credential is
// attached only when an access token is present.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(cfg config.Config, store *session.Store, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.APIURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(1).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp != nil && resp.StatusCode() == http.StatusTooManyRequests
		}).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if token := store.AccessToken(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
			return nil
		})

	return &Client{
		http:   httpClient,
		logger: logger.Named("gql"),
	}
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Do executes one GraphQL document and returns the raw payload for the
// named operation field, still carrying its __typename tag.
func (c *Client) Do(ctx context.Context, document string, variables map[string]any, operation string) (json.RawMessage, error) {
	// The response is JSON regardless of what content type a proxy in
	// front of the backend reports.
	var out response
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request{Query: document, Variables: variables}).
		SetResult(&out).
		ForceContentType("application/json").
		Post(graphQLPath)
	if err != nil {
		return nil, fmt.Errorf("loyalty request: %w", err)
	}
	if resp.IsError() {
		return nil, apiErrorFromResponse(resp)
	}

	if len(out.Errors) > 0 {
		messages := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			messages = append(messages, e.Message)
		}
		c.logger.Warn("graphql errors", zap.Strings("messages", messages))
		return nil, fmt.Errorf("graphql: %s", strings.Join(messages, "; "))
	}

	raw, ok := out.Data[operation]
	if !ok {
		return nil, fmt.Errorf("graphql: missing %q in response", operation)
	}
	return raw, nil
}

func apiErrorFromResponse(resp *resty.Response) error {
	body := strings.TrimSpace(resp.String())
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       body,
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Error())
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Error())
	default:
		return apiErr
	}
}
