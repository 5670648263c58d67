package seventimer

import (
	"fmt"
	"time"
)

// InitTimeLayout is the format of the forecast initialization timestamp,
// the model run the forecast is based on.
const InitTimeLayout = "2006010215"

// Document is a loosely-typed decoded response body. The five products
// return structurally different payloads, so the tree is left exactly as
// the decoder produced it: nested map[string]interface{},
// []interface{}, float64, string, bool and nil values. The accessors
// below cover the top-level keys shared by every product.
type Document map[string]interface{}

// Product returns the top-level product key, or "" when absent.
func (d Document) Product() string {
	s, _ := d["product"].(string)
	return s
}

// Init returns the forecast initialization timestamp string
// (YYYYMMDDHH), or "" when absent.
func (d Document) Init() string {
	s, _ := d["init"].(string)
	return s
}

// InitTime parses the initialization timestamp as a UTC time.
func (d Document) InitTime() (time.Time, error) {
	return ParseInitTime(d.Init())
}

// Dataseries returns the ordered per-timepoint records, or nil when the
// payload has none.
func (d Document) Dataseries() []interface{} {
	s, _ := d["dataseries"].([]interface{})
	return s
}

// ParseInitTime parses a YYYYMMDDHH initialization timestamp as UTC.
func ParseInitTime(init string) (time.Time, error) {
	t, err := time.ParseInLocation(InitTimeLayout, init, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing init timestamp %q: %w", init, err)
	}
	return t, nil
}
