package seventimer

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// Product identifies one of the forecast report types served by 7timer.
type Product string

const (
	// ProductAstro is the astronomical seeing forecast (3-day, 3-hour steps).
	ProductAstro Product = "astro"
	// ProductCivil is the general-purpose civil forecast.
	ProductCivil Product = "civil"
	// ProductCivilLight is the condensed per-day civil forecast.
	ProductCivilLight Product = "civillight"
	// ProductMeteo is the full meteorological forecast with profile data.
	ProductMeteo Product = "meteo"
	// ProductTwo is the two-week overview forecast.
	ProductTwo Product = "two"
)

// Products returns the fixed set of supported product codes. It does not
// depend on a Client instance.
func Products() []Product {
	return []Product{ProductAstro, ProductTwo, ProductCivil, ProductCivilLight, ProductMeteo}
}

// Output selects the response body format.
type Output string

const (
	OutputJSON Output = "json"
	OutputXML  Output = "xml"
	// OutputInternal asks the server for its native rendering, a PNG
	// meteogram. The body is returned undecoded.
	OutputInternal Output = "internal"
)

// Unit selects the measurement system used in the forecast values.
type Unit string

const (
	UnitMetric  Unit = "metric"
	UnitBritish Unit = "british"
)

// Params describes one forecast request. Product, latitude and longitude
// are required; the remaining parameters are optional and appear in the
// request URL only when explicitly set through the With* methods.
type Params struct {
	Product Product
	Lat     float64
	Lon     float64

	output  *Output
	unit    *Unit
	lang    *string
	tzshift *int
	ac      *int
}

// NewParams creates request parameters for the given product and
// coordinates. No validation happens until the request is issued.
func NewParams(product Product, lat, lon float64) *Params {
	return &Params{Product: product, Lat: lat, Lon: lon}
}

// WithOutput sets the response format (json, xml or internal).
func (p *Params) WithOutput(o Output) *Params {
	p.output = &o
	return p
}

// WithUnit sets the measurement system (metric or british).
func (p *Params) WithUnit(u Unit) *Params {
	p.unit = &u
	return p
}

// WithLang sets the report language code, e.g. "en" or "zh-CN".
func (p *Params) WithLang(lang string) *Params {
	p.lang = &lang
	return p
}

// WithTimezoneShift sets the timezone offset in hours, between -23 and 23.
func (p *Params) WithTimezoneShift(hours int) *Params {
	p.tzshift = &hours
	return p
}

// WithAltitudeCorrection sets the observing-site altitude correction in
// kilometers (0, 2 or 7). Only valid for the astro product.
func (p *Params) WithAltitudeCorrection(km int) *Params {
	p.ac = &km
	return p
}

// OutputFormat returns the effective output format: the explicitly set
// one, or json when unset.
func (p *Params) OutputFormat() Output {
	if p.output != nil {
		return *p.output
	}
	return OutputJSON
}

// Validate checks the parameter set against the constraints of the
// upstream API. It returns a *ValidationError describing the first
// violation found, or nil.
func (p *Params) Validate() error {
	switch p.Product {
	case ProductAstro, ProductCivil, ProductCivilLight, ProductMeteo, ProductTwo:
	case "":
		return &ValidationError{Field: "product", Message: "product is required"}
	default:
		return &ValidationError{Field: "product", Message: fmt.Sprintf("unknown product %q", p.Product)}
	}

	// NaN slips past range comparisons, so finiteness is checked first.
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
		return &ValidationError{Field: "lat", Message: fmt.Sprintf("latitude must be a finite number, got %v", p.Lat)}
	}
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return &ValidationError{Field: "lon", Message: fmt.Sprintf("longitude must be a finite number, got %v", p.Lon)}
	}
	if p.Lat < -90 || p.Lat > 90 {
		return &ValidationError{Field: "lat", Message: fmt.Sprintf("latitude must be between -90 and 90, got %v", p.Lat)}
	}
	if p.Lon < -180 || p.Lon > 180 {
		return &ValidationError{Field: "lon", Message: fmt.Sprintf("longitude must be between -180 and 180, got %v", p.Lon)}
	}

	if p.output != nil {
		switch *p.output {
		case OutputJSON, OutputXML, OutputInternal:
		default:
			return &ValidationError{Field: "output", Message: fmt.Sprintf("unknown output format %q", *p.output)}
		}
	}
	if p.unit != nil && *p.unit != UnitMetric && *p.unit != UnitBritish {
		return &ValidationError{Field: "unit", Message: fmt.Sprintf("unknown unit %q", *p.unit)}
	}
	if p.tzshift != nil && (*p.tzshift < -23 || *p.tzshift > 23) {
		return &ValidationError{Field: "tzshift", Message: fmt.Sprintf("timezone shift must be between -23 and 23, got %d", *p.tzshift)}
	}
	if p.ac != nil {
		if p.Product != ProductAstro {
			return &ValidationError{Field: "ac", Message: "altitude correction is only valid for the astro product"}
		}
		if *p.ac != 0 && *p.ac != 2 && *p.ac != 7 {
			return &ValidationError{Field: "ac", Message: fmt.Sprintf("altitude correction must be 0, 2 or 7, got %d", *p.ac)}
		}
	}

	return nil
}

// Query serializes the parameter set, excluding product, as URL query
// values. Optional parameters appear only when explicitly set.
func (p *Params) Query() url.Values {
	q := make(url.Values)
	q.Set("lat", formatCoord(p.Lat))
	q.Set("lon", formatCoord(p.Lon))
	if p.ac != nil {
		q.Set("ac", strconv.Itoa(*p.ac))
	}
	if p.unit != nil {
		q.Set("unit", string(*p.unit))
	}
	if p.output != nil {
		q.Set("output", string(*p.output))
	}
	if p.tzshift != nil {
		q.Set("tzshift", strconv.Itoa(*p.tzshift))
	}
	if p.lang != nil {
		q.Set("lang", *p.lang)
	}
	return q
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
