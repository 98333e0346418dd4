package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aksops/aks-mcp-server/pkg/client/nws"
	"github.com/aksops/aks-mcp-server/pkg/toolset"
)

func newTestClient(handler http.Handler) (*httptest.Server, *toolset.CombinedClient) {
	server := httptest.NewServer(handler)
	client := nws.NewClient()
	client.BaseURL = server.URL
	return server, &toolset.CombinedClient{Weather: client}
}

func TestAlertsHandler(t *testing.T) {
	server, client := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/alerts/active/area/CA" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"features":[{"properties":{"event":"Red Flag Warning","areaDesc":"Northern California","severity":"Severe","description":"Gusty winds and low humidity.","instruction":""}}]}`)
	}))
	defer server.Close()

	result, err := alertsHandler(context.Background(), client, map[string]interface{}{
		"area": "CA",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, line := range []string{
		"Event: Red Flag Warning",
		"Area: Northern California",
		"Severity: Severe",
		"Description: Gusty winds and low humidity.",
		"Instructions: No specific instructions provided",
	} {
		if !strings.Contains(result, line) {
			t.Errorf("Missing line %q in %q", line, result)
		}
	}
}

func TestAlertsHandlerNoAlerts(t *testing.T) {
	server, client := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"features":[]}`)
	}))
	defer server.Close()

	result, err := alertsHandler(context.Background(), client, map[string]interface{}{
		"area": "WY",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "No active alerts for this state." {
		t.Errorf("Unexpected result: %q", result)
	}
}

func TestAlertsHandlerMissingFeaturesKey(t *testing.T) {
	server, client := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"title":"Service degraded"}`)
	}))
	defer server.Close()

	result, err := alertsHandler(context.Background(), client, map[string]interface{}{
		"area": "CA",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// A body without a features key is a degraded response, not a clean
	// "no alerts" answer.
	if result != "Unable to fetch alerts or no alerts found." {
		t.Errorf("Unexpected result: %q", result)
	}
}

func TestAlertsHandlerFetchFailure(t *testing.T) {
	server, client := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	result, err := alertsHandler(context.Background(), client, map[string]interface{}{
		"area": "CA",
	})
	if err != nil {
		t.Fatalf("Fetch failure must not surface as an error, got %v", err)
	}
	if result != "Unable to fetch alerts or no alerts found." {
		t.Errorf("Unexpected result: %q", result)
	}
}

func TestForecastHandlerFollowsPointsURL(t *testing.T) {
	mux := http.NewServeMux()
	server, client := newTestClient(mux)
	defer server.Close()

	mux.HandleFunc("/points/38.8894,-77.0352", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"properties":{"forecast":"%s/gridpoints/LWX/97,71/forecast"}}`, server.URL)
	})

	periods := make([]string, 0, 14)
	for i := 0; i < 14; i++ {
		periods = append(periods, fmt.Sprintf(
			`{"name":"Period %d","temperature":70,"temperatureUnit":"F","windSpeed":"5 mph","windDirection":"NW","detailedForecast":"Sunny."}`, i))
	}
	mux.HandleFunc("/gridpoints/LWX/97,71/forecast", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"properties":{"periods":[%s]}}`, strings.Join(periods, ","))
	})

	result, err := forecastHandler(context.Background(), client, map[string]interface{}{
		"latitude":  38.8894,
		"longitude": -77.0352,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := strings.Count(result, "Temperature: 70°F"); got != 5 {
		t.Errorf("Expected forecast capped at 5 periods, got %d", got)
	}
	if !strings.Contains(result, "Wind: 5 mph NW") {
		t.Errorf("Missing wind line in %q", result)
	}
	if strings.Contains(result, "Period 5") {
		t.Errorf("Periods beyond the cap should be dropped, got %q", result)
	}
}

func TestForecastHandlerPointsFailure(t *testing.T) {
	server, client := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := forecastHandler(context.Background(), client, map[string]interface{}{
		"latitude":  0.0,
		"longitude": 0.0,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "Unable to fetch forecast data for this location." {
		t.Errorf("Unexpected result: %q", result)
	}
}

func TestForecastHandlerForecastFailure(t *testing.T) {
	mux := http.NewServeMux()
	server, client := newTestClient(mux)
	defer server.Close()

	mux.HandleFunc("/points/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"properties":{"forecast":"%s/gridpoints/broken"}}`, server.URL)
	})
	mux.HandleFunc("/gridpoints/broken", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "not json")
	})

	result, err := forecastHandler(context.Background(), client, map[string]interface{}{
		"latitude":  38.8894,
		"longitude": -77.0352,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "Unable to fetch detailed forecast." {
		t.Errorf("Unexpected result: %q", result)
	}
}

func TestToolsetCatalog(t *testing.T) {
	ts := &Toolset{}
	tools := ts.GetTools()

	if len(tools) != 2 {
		t.Errorf("Expected 2 tools, got %d", len(tools))
	}
	for _, tool := range tools {
		if tool.Annotations.ReadOnlyHint == nil || !*tool.Annotations.ReadOnlyHint {
			t.Errorf("Tool %q should be read-only", tool.Tool.Name)
		}
	}
}
