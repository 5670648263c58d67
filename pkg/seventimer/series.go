package seventimer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// ForecastHeader carries the top-level keys shared by every product.
type ForecastHeader struct {
	Product string `json:"product"`
	Init    string `json:"init"`
}

// InitTime parses the forecast initialization timestamp as a UTC time.
func (h ForecastHeader) InitTime() (time.Time, error) {
	return ParseInitTime(h.Init)
}

// Wind10m is the wind vector at 10m above ground. Direction is a compass
// point ("N", "SW", ...) and Speed an index on the 7timer wind scale.
type Wind10m struct {
	Direction string `json:"direction"`
	Speed     int    `json:"speed"`
}

// TempRange is a daily min/max temperature pair.
type TempRange struct {
	Max int `json:"max"`
	Min int `json:"min"`
}

// AstroPoint is one timepoint of the astro product, tuned for
// astronomical observers: cloud cover, seeing and transparency indexes.
type AstroPoint struct {
	Timepoint    int     `json:"timepoint"`
	Cloudcover   int     `json:"cloudcover"`
	Seeing       int     `json:"seeing"`
	Transparency int     `json:"transparency"`
	LiftedIndex  int     `json:"lifted_index"`
	RH2m         int     `json:"rh2m"`
	Wind10m      Wind10m `json:"wind10m"`
	Temp2m       int     `json:"temp2m"`
	PrecType     string  `json:"prec_type"`
}

// AstroForecast is the decoded astro payload.
type AstroForecast struct {
	ForecastHeader
	Dataseries []AstroPoint `json:"dataseries"`
}

// CivilPoint is one timepoint of the civil product.
type CivilPoint struct {
	Timepoint   int     `json:"timepoint"`
	Cloudcover  int     `json:"cloudcover"`
	LiftedIndex int     `json:"lifted_index"`
	PrecType    string  `json:"prec_type"`
	PrecAmount  int     `json:"prec_amount"`
	Temp2m      int     `json:"temp2m"`
	RH2m        string  `json:"rh2m"`
	Wind10m     Wind10m `json:"wind10m"`
	Weather     string  `json:"weather"`
}

// CivilForecast is the decoded civil payload.
type CivilForecast struct {
	ForecastHeader
	Dataseries []CivilPoint `json:"dataseries"`
}

// CivilLightPoint is one day of the condensed civillight product.
type CivilLightPoint struct {
	Date       int       `json:"date"`
	Weather    string    `json:"weather"`
	Temp2m     TempRange `json:"temp2m"`
	Wind10mMax int       `json:"wind10m_max"`
	PrecType   string    `json:"prec_type"`
	PrecAmount int       `json:"prec_amount"`
}

// CivilLightForecast is the decoded civillight payload.
type CivilLightForecast struct {
	ForecastHeader
	Dataseries []CivilLightPoint `json:"dataseries"`
}

// RHLayer is the relative humidity at one pressure layer.
type RHLayer struct {
	Layer string `json:"layer"`
	RH    int    `json:"rh"`
}

// WindLayer is the wind vector at one pressure layer.
type WindLayer struct {
	Layer     string `json:"layer"`
	Direction int    `json:"direction"`
	Speed     int    `json:"speed"`
}

// MeteoPoint is one timepoint of the meteo product, the full
// meteorological forecast including humidity and wind profiles.
type MeteoPoint struct {
	Timepoint   int         `json:"timepoint"`
	Cloudcover  int         `json:"cloudcover"`
	HighCloud   int         `json:"highcloud"`
	MidCloud    int         `json:"midcloud"`
	LowCloud    int         `json:"lowcloud"`
	RHProfile   []RHLayer   `json:"rh_profile"`
	WindProfile []WindLayer `json:"wind_profile"`
	Temp2m      int         `json:"temp2m"`
	LiftedIndex int         `json:"lifted_index"`
	RH2m        int         `json:"rh2m"`
	Wind10m     Wind10m     `json:"wind10m"`
	MSLPressure int         `json:"msl_pressure"`
	PrecType    string      `json:"prec_type"`
	PrecAmount  int         `json:"prec_amount"`
	SnowDepth   int         `json:"snow_depth"`
}

// MeteoForecast is the decoded meteo payload.
type MeteoForecast struct {
	ForecastHeader
	Dataseries []MeteoPoint `json:"dataseries"`
}

// TwoWeekPoint is one day of the two-week overview product.
type TwoWeekPoint struct {
	Date       int       `json:"date"`
	Weather    string    `json:"weather"`
	Temp2m     TempRange `json:"temp2m"`
	Wind10mMax int       `json:"wind10m_max"`
	PrecType   string    `json:"prec_type"`
}

// TwoWeekForecast is the decoded two payload.
type TwoWeekForecast struct {
	ForecastHeader
	Dataseries []TwoWeekPoint `json:"dataseries"`
}

// Astro fetches the astro forecast for the given coordinates and decodes
// it into its typed model.
func (c *Client) Astro(ctx context.Context, lat, lon float64) (*AstroForecast, error) {
	var forecast AstroForecast
	if err := c.fetchInto(ctx, NewParams(ProductAstro, lat, lon), &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

// Civil fetches the civil forecast for the given coordinates.
func (c *Client) Civil(ctx context.Context, lat, lon float64) (*CivilForecast, error) {
	var forecast CivilForecast
	if err := c.fetchInto(ctx, NewParams(ProductCivil, lat, lon), &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

// CivilLight fetches the condensed civillight forecast for the given
// coordinates.
func (c *Client) CivilLight(ctx context.Context, lat, lon float64) (*CivilLightForecast, error) {
	var forecast CivilLightForecast
	if err := c.fetchInto(ctx, NewParams(ProductCivilLight, lat, lon), &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

// Meteo fetches the full meteorological forecast for the given
// coordinates.
func (c *Client) Meteo(ctx context.Context, lat, lon float64) (*MeteoForecast, error) {
	var forecast MeteoForecast
	if err := c.fetchInto(ctx, NewParams(ProductMeteo, lat, lon), &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

// TwoWeek fetches the two-week overview forecast for the given
// coordinates.
func (c *Client) TwoWeek(ctx context.Context, lat, lon float64) (*TwoWeekForecast, error) {
	var forecast TwoWeekForecast
	if err := c.fetchInto(ctx, NewParams(ProductTwo, lat, lon), &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

// fetchInto requests the JSON rendering of the given parameters and
// unmarshals it into the typed forecast model.
func (c *Client) fetchInto(ctx context.Context, p *Params, v interface{}) error {
	body, err := c.FetchRaw(ctx, p.WithOutput(OutputJSON))
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("decoding %s response: %w", p.Product, err)
	}
	return nil
}
