package servicecatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging interface used by the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client is an HTTP client for the service-type catalog
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a service catalog client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetServiceType fetches one service type by ID
func (c *Client) GetServiceType(ctx context.Context, id int64) (*ServiceType, error) {
	url := fmt.Sprintf("%s/internal/service-types/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid service type ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrServiceTypeNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var serviceType ServiceType
	if err := json.NewDecoder(resp.Body).Decode(&serviceType); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &serviceType, nil
}

// GetServiceTypeWithGracefulDegradation fetches a service type, returning
// ErrServiceDegraded instead of a hard failure when the catalog is
// unreachable. Callers treat that as "use the default duration".
func (c *Client) GetServiceTypeWithGracefulDegradation(ctx context.Context, id int64) (*ServiceType, error) {
	c.log.Info("Fetching service type id=%d", id)

	serviceType, err := c.GetServiceType(ctx, id)
	if err != nil {
		// A missing service type is a real business error and is passed through.
		if err == ErrServiceTypeNotFound {
			c.log.Info("Service type id=%d not found in catalog", id)
			return nil, err
		}

		c.log.Error("ServiceCatalog unavailable, applying graceful degradation for service_type_id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: service_type_id=%d, error=%v", ErrServiceDegraded, id, err)
	}

	c.log.Info("Successfully fetched service type id=%d, duration=%d min", id, serviceType.DurationMinutes)
	return serviceType, nil
}
