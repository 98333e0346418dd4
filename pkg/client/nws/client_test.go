package nws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(server *httptest.Server) *Client {
	client := NewClient()
	client.BaseURL = server.URL
	return client
}

func TestGet_SetsRequiredHeaders(t *testing.T) {
	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	var out map[string]interface{}
	if !client.Get(context.Background(), server.URL+"/anything", &out) {
		t.Fatal("Get should succeed")
	}

	if gotUserAgent != "weather-app/1.0" {
		t.Errorf("Expected User-Agent 'weather-app/1.0', got '%s'", gotUserAgent)
	}
	if gotAccept != "application/geo+json" {
		t.Errorf("Expected Accept 'application/geo+json', got '%s'", gotAccept)
	}
}

func TestGet_FailuresReturnAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status":
			w.WriteHeader(http.StatusInternalServerError)
		case "/badbody":
			w.Write([]byte("not json"))
		}
	}))
	defer server.Close()

	client := newTestClient(server)
	var out map[string]interface{}

	if client.Get(context.Background(), server.URL+"/status", &out) {
		t.Error("non-2xx status should report absence")
	}
	if client.Get(context.Background(), server.URL+"/badbody", &out) {
		t.Error("malformed body should report absence")
	}

	// Unreachable endpoint
	server.Close()
	if client.Get(context.Background(), server.URL+"/gone", &out) {
		t.Error("transport failure should report absence")
	}
}

func TestActiveAlerts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/alerts/active/area/CA" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"features":[{"properties":{"event":"Red Flag Warning","areaDesc":"Sacramento Valley","severity":"Severe"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	alerts, ok := client.ActiveAlerts(context.Background(), "CA")
	if !ok {
		t.Fatal("ActiveAlerts should succeed")
	}
	if alerts.Features == nil {
		t.Fatal("Features should be present")
	}
	features := *alerts.Features
	if len(features) != 1 {
		t.Fatalf("Expected 1 feature, got %d", len(features))
	}
	if features[0].Properties.Event != "Red Flag Warning" {
		t.Errorf("Unexpected event: %s", features[0].Properties.Event)
	}
}

func TestActiveAlerts_MissingFeaturesKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"title":"Service degraded"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	alerts, ok := client.ActiveAlerts(context.Background(), "CA")
	if !ok {
		t.Fatal("A decodable body should not report absence")
	}
	if alerts.Features != nil {
		t.Error("A body without a features key should leave Features nil")
	}
}

func TestPoints_CoordinateFormatting(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"properties":{"forecast":"https://example.test/forecast"}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	points, ok := client.Points(context.Background(), 38.8894, -77.0352)
	if !ok {
		t.Fatal("Points should succeed")
	}
	if gotPath != "/points/38.8894,-77.0352" {
		t.Errorf("Unexpected points path: %s", gotPath)
	}
	if points.Properties.Forecast != "https://example.test/forecast" {
		t.Errorf("Unexpected forecast URL: %s", points.Properties.Forecast)
	}
}

func TestForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties":{"periods":[{"name":"Tonight","temperature":58,"temperatureUnit":"F","windSpeed":"5 mph","windDirection":"NW","detailedForecast":"Clear."}]}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	forecast, ok := client.Forecast(context.Background(), server.URL+"/gridpoints/LWX/96,70/forecast")
	if !ok {
		t.Fatal("Forecast should succeed")
	}
	if len(forecast.Properties.Periods) != 1 {
		t.Fatalf("Expected 1 period, got %d", len(forecast.Properties.Periods))
	}
	if forecast.Properties.Periods[0].Temperature != 58 {
		t.Errorf("Unexpected temperature: %d", forecast.Properties.Periods[0].Temperature)
	}
}
