package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wesleyorama2/skycast/pkg/seventimer"
)

// Formatter renders requests, responses and forecasts for the terminal.
type Formatter struct {
	Verbose bool
	NoColor bool

	scheme *ColorScheme
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{Verbose: verbose, NoColor: noColor, scheme: scheme}
}

// FormatRequest formats the outgoing request line.
func (f *Formatter) FormatRequest(url string) string {
	return fmt.Sprintf("▶ REQUEST: %s %s\n", f.scheme.Method.Sprint("GET"), f.scheme.URL.Sprint(url))
}

// FormatResponse formats the response status line, plus headers when
// verbose.
func (f *Formatter) FormatResponse(resp *seventimer.Response) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusOK
	if !resp.IsSuccess() {
		statusColor = f.scheme.StatusError
	}
	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%dms)\n",
		statusColor.Sprint(resp.Status), resp.GetResponseTimeMillis()))

	if f.Verbose {
		buf.WriteString("  Headers:\n")
		for key, values := range resp.Headers {
			for _, value := range values {
				buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), value))
			}
		}
	}

	return buf.String()
}

// FormatForecast renders a JSON forecast body for humans. Known
// products get a compact per-timepoint listing; anything else falls
// back to pretty-printed JSON.
func (f *Formatter) FormatForecast(product seventimer.Product, body string) string {
	var buf strings.Builder

	switch product {
	case seventimer.ProductAstro:
		var fc seventimer.AstroForecast
		if json.Unmarshal([]byte(body), &fc) != nil {
			return prettyJSON(body)
		}
		f.writeHeader(&buf, fc.ForecastHeader)
		for _, p := range fc.Dataseries {
			buf.WriteString(fmt.Sprintf("  %s  %s  cloud %d/9  seeing %d/8  transparency %d/8  wind %s %d\n",
				f.scheme.Timepoint.Sprintf("+%3dh", p.Timepoint),
				f.temp(p.Temp2m), p.Cloudcover, p.Seeing, p.Transparency,
				p.Wind10m.Direction, p.Wind10m.Speed))
		}
	case seventimer.ProductCivil:
		var fc seventimer.CivilForecast
		if json.Unmarshal([]byte(body), &fc) != nil {
			return prettyJSON(body)
		}
		f.writeHeader(&buf, fc.ForecastHeader)
		for _, p := range fc.Dataseries {
			buf.WriteString(fmt.Sprintf("  %s  %s  %-14s  cloud %d/9  wind %s %d\n",
				f.scheme.Timepoint.Sprintf("+%3dh", p.Timepoint),
				f.temp(p.Temp2m), p.Weather, p.Cloudcover,
				p.Wind10m.Direction, p.Wind10m.Speed))
		}
	case seventimer.ProductCivilLight:
		var fc seventimer.CivilLightForecast
		if json.Unmarshal([]byte(body), &fc) != nil {
			return prettyJSON(body)
		}
		f.writeHeader(&buf, fc.ForecastHeader)
		for _, p := range fc.Dataseries {
			buf.WriteString(fmt.Sprintf("  %s  %-14s  max %s  min %s  wind %d\n",
				f.scheme.Timepoint.Sprint(p.Date), p.Weather,
				f.temp(p.Temp2m.Max), f.temp(p.Temp2m.Min), p.Wind10mMax))
		}
	case seventimer.ProductTwo:
		var fc seventimer.TwoWeekForecast
		if json.Unmarshal([]byte(body), &fc) != nil {
			return prettyJSON(body)
		}
		f.writeHeader(&buf, fc.ForecastHeader)
		for _, p := range fc.Dataseries {
			buf.WriteString(fmt.Sprintf("  %s  %-14s  max %s  min %s\n",
				f.scheme.Timepoint.Sprint(p.Date), p.Weather,
				f.temp(p.Temp2m.Max), f.temp(p.Temp2m.Min)))
		}
	default:
		return prettyJSON(body)
	}

	return buf.String()
}

// FormatProducts renders the product registry.
func (f *Formatter) FormatProducts(products []seventimer.Product) string {
	var buf strings.Builder
	buf.WriteString("Supported products:\n")
	for _, p := range products {
		buf.WriteString(fmt.Sprintf("  %s\n", f.scheme.Product.Sprint(string(p))))
	}
	return buf.String()
}

func (f *Formatter) writeHeader(buf *strings.Builder, h seventimer.ForecastHeader) {
	buf.WriteString(fmt.Sprintf("%s forecast, init %s\n", f.scheme.Product.Sprint(h.Product), h.Init))
}

// temp colors a temperature value by sign.
func (f *Formatter) temp(t int) string {
	c := f.scheme.Cold
	if t > 0 {
		c = f.scheme.Warm
	}
	return c.Sprintf("%3d°", t)
}

// prettyJSON indents a JSON string, returning it unchanged when it does
// not parse.
func prettyJSON(s string) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(s), "", "  "); err != nil {
		return s
	}
	return pretty.String()
}
