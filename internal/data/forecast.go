package data

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"lotsize-planner/internal/model"
)

// ForecastClient provides methods to fetch demand series from a forecast feed.
type ForecastClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewForecastClient creates a new forecast feed client.
// If baseURL is empty, defaults to "https://api.demandcast.io".
func NewForecastClient(apiKey string, baseURL string) *ForecastClient {
	if baseURL == "" {
		baseURL = "https://api.demandcast.io"
	}
	return &ForecastClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// QueryItemParams defines parameters for querying an item's demand series.
type QueryItemParams struct {
	SeriesID  string    // e.g., "weekly_demand_forecast"
	ItemID    string    // e.g., "WIDGET-A"
	StartTime time.Time // Start of time range
	EndTime   time.Time // End of time range
	Location  string    // optional warehouse/site filter
}

// ForecastError represents an error from the forecast feed
type ForecastError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // For rate limit errors
}

func (e *ForecastError) Error() string {
	return e.Message
}

// QueryItem fetches a demand series for a specific item from the forecast feed.
//
// WARNING: If caching is enabled (ENABLE_FORECAST_CACHE=true), responses may be
// cached. Caching is intended for LOCAL DEVELOPMENT only; it is automatically
// disabled when API_ENV=production.
func (c *ForecastClient) QueryItem(params QueryItemParams) (*model.ForecastResponse, error) {
	if err := c.validateAPIKey(); err != nil {
		return nil, err
	}

	// Check cache first (only if enabled for development)
	cache := GetCache()
	if cache != nil {
		cacheKey := GenerateCacheKey(params)
		if cached, found := cache.Get(cacheKey); found {
			dataCount := 0
			if cached.Data != nil {
				dataCount = len(cached.Data)
			}
			log.Printf("[Forecast] Cache hit: Using cached response with %d periods (series=%s, item=%s, start=%s, end=%s)",
				dataCount, params.SeriesID, params.ItemID,
				params.StartTime.Format("2006-01-02"), params.EndTime.Format("2006-01-02"))
			return cached, nil
		}
	}
	if params.SeriesID == "" {
		return nil, fmt.Errorf("series_id is required")
	}
	if params.ItemID == "" {
		return nil, fmt.Errorf("item_id is required")
	}
	if params.StartTime.IsZero() || params.EndTime.IsZero() {
		return nil, fmt.Errorf("start_time and end_time are required")
	}
	if params.StartTime.After(params.EndTime) {
		return nil, fmt.Errorf("start_time must be before end_time")
	}

	// Build URL: /v1/series/{series_id}/query/item/{item_id}
	path := fmt.Sprintf("/v1/series/%s/query/item/%s", params.SeriesID, params.ItemID)
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("start_time", params.StartTime.Format("2006-01-02"))
	q.Set("end_time", params.EndTime.Format("2006-01-02"))
	if params.Location != "" {
		q.Set("location", params.Location)
	}
	u.RawQuery = q.Encode()

	log.Printf("[Forecast] Request: GET %s (series=%s, item=%s, start=%s, end=%s)",
		u.Path,
		params.SeriesID,
		params.ItemID,
		params.StartTime.Format("2006-01-02"),
		params.EndTime.Format("2006-01-02"))

	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("[Forecast] Request failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[Forecast] Response: %d %s (duration: %v, series=%s, item=%s)",
		resp.StatusCode,
		resp.Status,
		duration,
		params.SeriesID,
		params.ItemID)

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusForbidden:
		return nil, &ForecastError{
			StatusCode: resp.StatusCode,
			Code:       "INVALID_API_KEY",
			Message:    "Invalid API key or insufficient permissions",
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		return nil, &ForecastError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	case http.StatusUnauthorized:
		return nil, &ForecastError{
			StatusCode: resp.StatusCode,
			Code:       "UNAUTHORIZED",
			Message:    "Unauthorized: Invalid API key",
		}
	default:
		return nil, &ForecastError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var result model.ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	dataCount := 0
	if result.Data != nil {
		dataCount = len(result.Data)
	}
	log.Printf("[Forecast] Success: Received %d periods (series=%s, item=%s)",
		dataCount, params.SeriesID, params.ItemID)

	if cache := GetCache(); cache != nil {
		cacheKey := GenerateCacheKey(params)
		cache.Set(cacheKey, &result)
	}

	return &result, nil
}

// validateAPIKey validates that the API key is present and not obviously invalid
func (c *ForecastClient) validateAPIKey() error {
	if c.APIKey == "" {
		return &ForecastError{
			StatusCode: 0,
			Code:       "MISSING_API_KEY",
			Message:    "API key is required",
		}
	}
	if len(c.APIKey) < 10 {
		return &ForecastError{
			StatusCode: 0,
			Code:       "INVALID_API_KEY_FORMAT",
			Message:    "API key appears to be invalid (too short)",
		}
	}
	return nil
}

// QueryItemByString is a convenience method that parses date strings.
// startDate and endDate should be in "YYYY-MM-DD" format.
func (c *ForecastClient) QueryItemByString(seriesID, itemID, startDate, endDate string) (*model.ForecastResponse, error) {
	startTime, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date format (expected YYYY-MM-DD): %w", err)
	}
	endTime, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date format (expected YYYY-MM-DD): %w", err)
	}

	return c.QueryItem(QueryItemParams{
		SeriesID:  seriesID,
		ItemID:    itemID,
		StartTime: startTime,
		EndTime:   endTime,
	})
}
