package dummyjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://dummyjson.com"

	EndpointProducts = "products"
	EndpointProduct  = "product"

	defaultTimeout = 10 * time.Second
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrInvalidBaseURL   = errors.New("invalid base url")
)

var _ port.ProductsFetcher = (*Client)(nil)

// An Observer receives every upstream call outcome. statusCode is 0 when
// no response was received.
type Observer interface {
	ObserveUpstream(endpoint string, statusCode int, d time.Duration)
}

type ClientOpt func(*clientOpts) error

type clientOpts struct {
	timeout  time.Duration
	limiter  *rate.Limiter
	observer Observer
}

func TimeoutOpt(d time.Duration) ClientOpt {
	return func(opts *clientOpts) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		opts.timeout = d
		return nil
	}
}

// RateLimitOpt throttles outbound calls to rps with the given burst.
// Zero rps disables throttling.
func RateLimitOpt(rps float64, burst int) ClientOpt {
	return func(opts *clientOpts) error {
		if rps < 0 || burst < 0 {
			return errors.New("rate limit and burst must not be negative")
		}
		if rps == 0 {
			opts.limiter = nil
			return nil
		}
		if burst == 0 {
			burst = 1
		}
		opts.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		return nil
	}
}

func ObserverOpt(o Observer) ClientOpt {
	return func(opts *clientOpts) error {
		if o == nil {
			return errors.New("observer is nil")
		}
		opts.observer = o
		return nil
	}
}

// A Client fetches the catalog from the dummyjson API. Every call is a
// single attempt.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	observer   Observer
}

func NewClient(baseURL string, opts ...ClientOpt) (Client, error) {
	const op = "NewClient"

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Client{}, fmt.Errorf("%s: %w: %q", op, ErrInvalidBaseURL, baseURL)
	}

	options := clientOpts{timeout: defaultTimeout}
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return Client{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: options.timeout},
		limiter:    options.limiter,
		observer:   options.observer,
	}, nil
}

func (c Client) FetchProducts(
	ctx context.Context,
) (domain.ProductCollection, error) {
	const op = "Client.FetchProducts"

	var res productCollection
	err := c.get(ctx, EndpointProducts, c.baseURL+"/products", &res)
	if err != nil {
		return domain.ProductCollection{}, fmt.Errorf("%s: %w", op, err)
	}
	return res.toDomain(), nil
}

func (c Client) FetchProduct(
	ctx context.Context, id int,
) (domain.Product, error) {
	const op = "Client.FetchProduct"

	var res product
	target := c.baseURL + "/products/" + strconv.Itoa(id)
	if err := c.get(ctx, EndpointProduct, target, &res); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return res.toDomain(), nil
}

func (c Client) get(
	ctx context.Context, endpoint, target string, v any,
) error {
	var statusCode int
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveUpstream(endpoint, statusCode, time.Since(start))
		}
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	statusCode = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
