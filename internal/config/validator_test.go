package config

import (
	"strings"
	"testing"
)

func intPtr(i int) *int { return &i }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "Valid config",
			cfg: Config{
				Locations: map[string]Location{"home": {Lat: 51.2, Lon: -1.8}},
				Defaults:  Defaults{Unit: "british", Lang: "de", Tzshift: intPtr(-2)},
			},
		},
		{
			name: "Empty config",
			cfg:  Config{},
		},
		{
			name:    "Latitude out of range",
			cfg:     Config{Locations: map[string]Location{"bad": {Lat: 91, Lon: 0}}},
			wantErr: "latitude",
		},
		{
			name:    "Longitude out of range",
			cfg:     Config{Locations: map[string]Location{"bad": {Lat: 0, Lon: -200}}},
			wantErr: "longitude",
		},
		{
			name:    "Unknown unit",
			cfg:     Config{Defaults: Defaults{Unit: "imperial"}},
			wantErr: "unit",
		},
		{
			name:    "Tzshift out of range",
			cfg:     Config{Defaults: Defaults{Tzshift: intPtr(30)}},
			wantErr: "tzshift",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}
