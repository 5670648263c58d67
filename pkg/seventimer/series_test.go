package seventimer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const astroBody = `{
	"product": "astro",
	"init": "2023032606",
	"dataseries": [
		{
			"timepoint": 3,
			"cloudcover": 1,
			"seeing": 6,
			"transparency": 2,
			"lifted_index": 10,
			"rh2m": 6,
			"wind10m": {"direction": "SW", "speed": 3},
			"temp2m": 9,
			"prec_type": "none"
		},
		{
			"timepoint": 6,
			"cloudcover": 4,
			"seeing": 5,
			"transparency": 3,
			"lifted_index": 6,
			"rh2m": 8,
			"wind10m": {"direction": "W", "speed": 2},
			"temp2m": 6,
			"prec_type": "rain"
		}
	]
}`

func TestAstroForecast_Decode(t *testing.T) {
	var forecast AstroForecast
	if err := json.Unmarshal([]byte(astroBody), &forecast); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if forecast.Product != "astro" {
		t.Errorf("Expected product astro, got %q", forecast.Product)
	}
	if len(forecast.Dataseries) != 2 {
		t.Fatalf("Expected 2 timepoints, got %d", len(forecast.Dataseries))
	}

	first := forecast.Dataseries[0]
	if first.Timepoint != 3 || first.Seeing != 6 || first.Transparency != 2 {
		t.Errorf("Unexpected first timepoint: %+v", first)
	}
	if first.Wind10m.Direction != "SW" || first.Wind10m.Speed != 3 {
		t.Errorf("Unexpected wind: %+v", first.Wind10m)
	}
	if forecast.Dataseries[1].PrecType != "rain" {
		t.Errorf("Expected prec_type rain, got %q", forecast.Dataseries[1].PrecType)
	}
}

func TestCivilLightForecast_Decode(t *testing.T) {
	body := `{
		"product": "civillight",
		"init": "2023032600",
		"dataseries": [
			{
				"date": 20230326,
				"weather": "cloudy",
				"temp2m": {"max": 12, "min": 4},
				"wind10m_max": 3,
				"prec_type": "none",
				"prec_amount": 0
			}
		]
	}`

	var forecast CivilLightForecast
	if err := json.Unmarshal([]byte(body), &forecast); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	day := forecast.Dataseries[0]
	if day.Date != 20230326 {
		t.Errorf("Expected date 20230326, got %d", day.Date)
	}
	if day.Temp2m.Max != 12 || day.Temp2m.Min != 4 {
		t.Errorf("Unexpected temperature range: %+v", day.Temp2m)
	}
	if day.Weather != "cloudy" {
		t.Errorf("Expected weather cloudy, got %q", day.Weather)
	}
}

func TestMeteoForecast_DecodeProfiles(t *testing.T) {
	body := `{
		"product": "meteo",
		"init": "2023032612",
		"dataseries": [
			{
				"timepoint": 3,
				"cloudcover": 9,
				"highcloud": 3,
				"midcloud": 5,
				"lowcloud": 9,
				"rh_profile": [{"layer": "950mb", "rh": 10}],
				"wind_profile": [{"layer": "950mb", "direction": 240, "speed": 4}],
				"temp2m": 8,
				"lifted_index": 2,
				"rh2m": 12,
				"wind10m": {"direction": "SW", "speed": 3},
				"msl_pressure": 1013,
				"prec_type": "rain",
				"prec_amount": 4,
				"snow_depth": 0
			}
		]
	}`

	var forecast MeteoForecast
	if err := json.Unmarshal([]byte(body), &forecast); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	point := forecast.Dataseries[0]
	if len(point.RHProfile) != 1 || point.RHProfile[0].Layer != "950mb" {
		t.Errorf("Unexpected rh_profile: %+v", point.RHProfile)
	}
	if len(point.WindProfile) != 1 || point.WindProfile[0].Direction != 240 {
		t.Errorf("Unexpected wind_profile: %+v", point.WindProfile)
	}
	if point.MSLPressure != 1013 {
		t.Errorf("Expected msl_pressure 1013, got %d", point.MSLPressure)
	}
}

func TestForecastHeader_InitTime(t *testing.T) {
	var forecast AstroForecast
	if err := json.Unmarshal([]byte(astroBody), &forecast); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	got, err := forecast.InitTime()
	if err != nil {
		t.Fatalf("InitTime error: %v", err)
	}
	if got.Year() != 2023 || got.Hour() != 6 {
		t.Errorf("Unexpected init time %v", got)
	}
}

func TestClient_Astro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bin/astro.php" {
			t.Errorf("Expected path /bin/astro.php, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("output") != "json" {
			t.Errorf("Expected output=json, got %q", r.URL.Query().Get("output"))
		}
		w.Write([]byte(astroBody))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	forecast, err := client.Astro(context.Background(), 51.2, -1.8)
	if err != nil {
		t.Fatalf("Astro() error: %v", err)
	}
	if len(forecast.Dataseries) != 2 {
		t.Errorf("Expected 2 timepoints, got %d", len(forecast.Dataseries))
	}
}

func TestClient_CivilLight(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bin/civillight.php" {
			t.Errorf("Expected path /bin/civillight.php, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"product":"civillight","init":"2023032600","dataseries":[]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	forecast, err := client.CivilLight(context.Background(), 48.8, 2.3)
	if err != nil {
		t.Fatalf("CivilLight() error: %v", err)
	}
	if forecast.Product != "civillight" {
		t.Errorf("Expected product civillight, got %q", forecast.Product)
	}
}

func TestClient_TypedFetchPropagatesRequestFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.Meteo(context.Background(), 0, 0)
	if err == nil {
		t.Fatal("Expected error for failure status")
	}
}
