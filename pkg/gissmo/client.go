// Package gissmo provides a read-only client for the Gissmo seismic-network
// inventory API.
//
// The API exposes one REST resource per inventory entity (sites, channels,
// equipments, documents, ...) and hyperlinks related records by absolute
// URL. Every fetcher issues a single GET and decodes the JSON body; there
// are no retries and no pooling knobs beyond the request timeout.
package gissmo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mbdb/rlbp-gissmo-check/models"
)

const (
	// DefaultBaseURL is the production Gissmo API endpoint.
	DefaultBaseURL = "https://gissmo.unistra.fr/api/v1"

	defaultTimeout = 30 * time.Second
)

// Doer abstracts HTTP request execution so tests can inject their own
// client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is returned for any non-2xx response. It carries the status code
// so callers can distinguish a missing resource from a server failure.
type APIError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("gissmo: %s %s returned status %d",
		http.MethodGet, e.URL, e.StatusCode)
}

// ClientConfig holds configuration for the API client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use. If nil, a default client with
	// Timeout is created.
	HTTPClient Doer

	// Timeout for individual requests (default: 30s). Ignored when
	// HTTPClient is set.
	Timeout time.Duration
}

// Client is a Gissmo API client.
type Client struct {
	baseURL    string
	httpClient Doer
}

// NewClient creates a new Gissmo client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the configured API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SiteURL returns the canonical URL of a station record. Hyperlinked
// fields such as Document.Station hold this form.
func (c *Client) SiteURL(id int) string {
	return fmt.Sprintf("%s/sites/%d/", c.baseURL, id)
}

// get fetches an absolute URL and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return nil
}

// getResource fetches a resource path with optional query filters.
func (c *Client) getResource(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "/?" + query.Encode()
	}
	return c.get(ctx, u, out)
}

// StationsByCode returns the station records matching a station code. The
// API returns a list; an unknown code yields an empty one.
func (c *Client) StationsByCode(ctx context.Context, code string) ([]models.Station, error) {
	var stations []models.Station
	query := url.Values{"code": {code}}
	if err := c.getResource(ctx, "sites", query, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// Documents returns every document in the inventory. The documents
// resource has no station filter, so callers match Document.Station
// against SiteURL themselves.
func (c *Client) Documents(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := c.get(ctx, c.baseURL+"/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// DocumentsForStation returns the documents attached to the station with
// the given database id.
func (c *Client) DocumentsForStation(ctx context.Context, stationID int) ([]models.Document, error) {
	all, err := c.Documents(ctx)
	if err != nil {
		return nil, err
	}

	siteURL := c.SiteURL(stationID)
	var docs []models.Document
	for _, d := range all {
		if d.Station == siteURL {
			docs = append(docs, d)
		}
	}
	return docs, nil
}

// EquipmentsByStation returns the equipment installed at a station.
func (c *Client) EquipmentsByStation(ctx context.Context, code string) ([]models.Equipment, error) {
	var equipments []models.Equipment
	query := url.Values{"station": {code}}
	if err := c.getResource(ctx, "equipments", query, &equipments); err != nil {
		return nil, err
	}
	return equipments, nil
}

// ChannelsByStation returns every channel ever declared at a station,
// open or closed.
func (c *Client) ChannelsByStation(ctx context.Context, code string) ([]models.Channel, error) {
	var channels []models.Channel
	query := url.Values{"station": {code}}
	if err := c.getResource(ctx, "channels", query, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// ParametersByChannel returns the instrument parameters configured on a
// channel.
func (c *Client) ParametersByChannel(ctx context.Context, channelID int) ([]models.ChannelParameter, error) {
	var params []models.ChannelParameter
	query := url.Values{"channel": {strconv.Itoa(channelID)}}
	if err := c.getResource(ctx, "channel_parameters", query, &params); err != nil {
		return nil, err
	}
	return params, nil
}

// IPAddressesByEquipment returns the addresses configured on a piece of
// equipment.
func (c *Client) IPAddressesByEquipment(ctx context.Context, equipmentID int) ([]models.IPAddress, error) {
	var ips []models.IPAddress
	query := url.Values{"equipment": {strconv.Itoa(equipmentID)}}
	if err := c.getResource(ctx, "ipaddresses", query, &ips); err != nil {
		return nil, err
	}
	return ips, nil
}

// ServicesByEquipment returns the network services exposed by a piece of
// equipment.
func (c *Client) ServicesByEquipment(ctx context.Context, equipmentID int) ([]models.Service, error) {
	var services []models.Service
	query := url.Values{"equipment": {strconv.Itoa(equipmentID)}}
	if err := c.getResource(ctx, "services", query, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// OperatorByURL resolves a hyperlinked operator record.
func (c *Client) OperatorByURL(ctx context.Context, rawURL string) (*models.Operator, error) {
	var op models.Operator
	if err := c.get(ctx, rawURL, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// NetworkByURL resolves a hyperlinked network record.
func (c *Client) NetworkByURL(ctx context.Context, rawURL string) (*models.Network, error) {
	var net models.Network
	if err := c.get(ctx, rawURL, &net); err != nil {
		return nil, err
	}
	return &net, nil
}

// EquipmentByURL resolves a hyperlinked equipment record.
func (c *Client) EquipmentByURL(ctx context.Context, rawURL string) (*models.Equipment, error) {
	var eq models.Equipment
	if err := c.get(ctx, rawURL, &eq); err != nil {
		return nil, err
	}
	return &eq, nil
}
