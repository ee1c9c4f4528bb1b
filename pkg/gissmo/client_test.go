package gissmo_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbdb/rlbp-gissmo-check/pkg/gissmo"
)

func TestClient_StationsByCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sites/", r.URL.Path)
		assert.Equal(t, "CHMF", r.URL.Query().Get("code"))

		response := []map[string]interface{}{
			{
				"id":        42,
				"code":      "CHMF",
				"name":      "Chambon-la-Foret",
				"latitude":  "48.0186",
				"longitude": "2.2660",
				"elevation": "125.0",
				"status":    "Running",
				"type":      "Measuring site",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := gissmo.NewClient(gissmo.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	stations, err := client.StationsByCode(context.Background(), "CHMF")
	require.NoError(t, err)
	require.Len(t, stations, 1)

	assert.Equal(t, 42, stations[0].ID)
	assert.Equal(t, "CHMF", stations[0].Code)
	require.NotNil(t, stations[0].Latitude)
	assert.Equal(t, "48.0186", *stations[0].Latitude)
}

func TestClient_StationsByCode_Unknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := gissmo.NewClient(gissmo.ClientConfig{BaseURL: server.URL, HTTPClient: http.DefaultClient})

	stations, err := client.StationsByCode(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := gissmo.NewClient(gissmo.ClientConfig{BaseURL: server.URL, HTTPClient: http.DefaultClient})

	_, err := client.StationsByCode(context.Background(), "CHMF")
	require.Error(t, err)

	var apiErr *gissmo.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "500")
}

func TestClient_DocumentsForStation(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents", r.URL.Path)

		response := []map[string]interface{}{
			{
				"doctype": "Lease",
				"title":   "Bail CHMF",
				"link":    "https://example.org/bail.pdf",
				"station": server.URL + "/sites/42/",
			},
			{
				"doctype": "Picture",
				"title":   "Autre station",
				"link":    "https://example.org/photo.jpg",
				"station": server.URL + "/sites/7/",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := gissmo.NewClient(gissmo.ClientConfig{BaseURL: server.URL, HTTPClient: http.DefaultClient})

	docs, err := client.DocumentsForStation(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Lease", docs[0].Doctype)
}

func TestClient_ParametersByChannel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/channel_parameters/", r.URL.Path)
		assert.Equal(t, "17", r.URL.Query().Get("channel"))

		response := []map[string]interface{}{
			{"channel": "c/17/", "model": "Trillium 120", "parameter": "gain", "value": "1202"},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := gissmo.NewClient(gissmo.ClientConfig{BaseURL: server.URL, HTTPClient: http.DefaultClient})

	params, err := client.ParametersByChannel(context.Background(), 17)
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "gain", params[0].Parameter)
	assert.Equal(t, "1202", params[0].Value)
}

func TestClient_EquipmentsByStation_Query(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/equipments/", r.URL.Path)
		assert.Equal(t, "CHMF", r.URL.Query().Get("station"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 3, "type": "Datalogger", "name": "Q330", "serial_number": "1234", "status": "Running"}]`))
	}))
	defer server.Close()

	client := gissmo.NewClient(gissmo.ClientConfig{BaseURL: server.URL, HTTPClient: http.DefaultClient})

	equipments, err := client.EquipmentsByStation(context.Background(), "CHMF")
	require.NoError(t, err)
	require.Len(t, equipments, 1)
	assert.Equal(t, "Datalogger", equipments[0].Type)
}

func TestClient_NetworkByURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/networks/1/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": "FR"}`))
	}))
	defer server.Close()

	client := gissmo.NewClient(gissmo.ClientConfig{BaseURL: server.URL, HTTPClient: http.DefaultClient})

	network, err := client.NetworkByURL(context.Background(), server.URL+"/networks/1/")
	require.NoError(t, err)
	assert.Equal(t, "FR", network.Code)
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := gissmo.NewClient(gissmo.ClientConfig{BaseURL: server.URL, HTTPClient: http.DefaultClient})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.StationsByCode(ctx, "CHMF")
	require.Error(t, err)
}

func TestClient_SiteURL(t *testing.T) {
	client := gissmo.NewClient(gissmo.ClientConfig{BaseURL: "https://gissmo.example.org/api/v1/"})
	assert.Equal(t, "https://gissmo.example.org/api/v1/sites/42/", client.SiteURL(42))
	assert.Equal(t, "https://gissmo.example.org/api/v1", client.BaseURL())
}
