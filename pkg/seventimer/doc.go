// Package seventimer provides a Go client for the 7timer.info weather
// forecast API.
//
// 7timer is a public, keyless service exposing five forecast products
// (astro, civil, civillight, meteo, two), each with its own payload shape.
// The client builds a request URL from validated parameters, performs a
// single HTTP GET per call, and leaves error handling and decoding under
// the caller's control.
//
// Basic usage:
//
//	client := seventimer.NewClient()
//
//	forecast, err := client.Astro(ctx, 51.2, -1.8)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, point := range forecast.Dataseries {
//		fmt.Printf("+%dh: cloudcover %d, seeing %d\n",
//			point.Timepoint, point.Cloudcover, point.Seeing)
//	}
//
// Callers that want to handle HTTP failures themselves use Do, which
// returns the response untouched:
//
//	resp, err := client.Do(ctx, seventimer.NewParams(seventimer.ProductCivil, 51.2, -1.8))
//
// Fetch decodes the body into a loosely-typed Document according to the
// requested output format, and FetchRaw returns the exact body string.
// Both fail with RequestFailedError when the response status is not a
// success; neither retries.
package seventimer
