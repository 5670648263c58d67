package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/skycast/internal/config"
	"github.com/wesleyorama2/skycast/internal/output"
	"github.com/wesleyorama2/skycast/pkg/jsonpath"
	"github.com/wesleyorama2/skycast/pkg/seventimer"
)

var getCmd = &cobra.Command{
	Use:   "get PRODUCT",
	Short: "Fetch a forecast for the given product and coordinates",
	Long: `Fetch a forecast from 7timer.info. PRODUCT is one of astro, civil,
civillight, meteo or two. Coordinates come from --lat/--lon or from a
named --location defined in the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	product := seventimer.Product(args[0])

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	lat, lon, err := resolveCoordinates(cmd, cfg)
	if err != nil {
		return err
	}

	params := seventimer.NewParams(product, lat, lon)
	applyParamFlags(cmd, cfg, params)

	timeout, _ := cmd.Flags().GetDuration("timeout")
	baseURL, _ := cmd.Flags().GetString("base-url")
	options := []seventimer.ClientOption{
		seventimer.WithTimeout(timeout),
		seventimer.WithUserAgent("skycast/" + version),
	}
	if baseURL != "" {
		options = append(options, seventimer.WithBaseURL(baseURL))
	}
	client := seventimer.NewClient(options...)

	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	formatter := output.NewFormatter(verbose, noColor || !output.ShouldColor(noColor))

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	// The raw entry point is used here so the CLI owns the failure
	// handling and can show the status line before giving up.
	resp, err := client.Do(ctx, params)
	if err != nil {
		return err
	}
	if verbose {
		cmd.Print(formatter.FormatResponse(resp))
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("request failed: %s", resp.Status)
	}

	body, err := resp.GetBodyAsString()
	if err != nil {
		return err
	}

	return printBody(cmd, formatter, params, body)
}

// printBody renders the response body according to the presentation
// flags, most specific first.
func printBody(cmd *cobra.Command, formatter *output.Formatter, params *seventimer.Params, body string) error {
	if query, _ := cmd.Flags().GetString("query"); query != "" {
		value, err := jsonpath.Extract(body, query)
		if err != nil {
			return err
		}
		cmd.Println(value)
		return nil
	}

	if validate, _ := cmd.Flags().GetBool("validate"); validate {
		if err := seventimer.ValidateBody(params.Product, []byte(body)); err != nil {
			return err
		}
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		cmd.Println(body)
		return nil
	}

	formatName, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}
	if format != output.FormatText {
		rendered, err := output.RenderBody(format, body)
		if err != nil {
			return err
		}
		cmd.Print(rendered)
		return nil
	}

	// Human rendering only understands the JSON output format; other
	// formats pass through as-is.
	if params.OutputFormat() != seventimer.OutputJSON {
		cmd.Println(body)
		return nil
	}
	cmd.Print(formatter.FormatForecast(params.Product, body))
	return nil
}

// resolveCoordinates picks coordinates from the flags or from a named
// config location. Explicit flags win.
func resolveCoordinates(cmd *cobra.Command, cfg *config.Config) (float64, float64, error) {
	location, _ := cmd.Flags().GetString("location")
	latSet := cmd.Flags().Changed("lat")
	lonSet := cmd.Flags().Changed("lon")

	if location != "" {
		if latSet || lonSet {
			return 0, 0, fmt.Errorf("--location cannot be combined with --lat/--lon")
		}
		loc, ok := cfg.Lookup(location)
		if !ok {
			return 0, 0, fmt.Errorf("unknown location %q (not in config file)", location)
		}
		return loc.Lat, loc.Lon, nil
	}

	if !latSet || !lonSet {
		return 0, 0, fmt.Errorf("coordinates required: pass --lat and --lon, or --location")
	}
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	return lat, lon, nil
}

// applyParamFlags sets the optional request parameters that were given
// on the command line, falling back to config defaults. Parameters left
// unset stay out of the request URL.
func applyParamFlags(cmd *cobra.Command, cfg *config.Config, params *seventimer.Params) {
	if cmd.Flags().Changed("output") {
		v, _ := cmd.Flags().GetString("output")
		params.WithOutput(seventimer.Output(v))
	}

	switch {
	case cmd.Flags().Changed("unit"):
		v, _ := cmd.Flags().GetString("unit")
		params.WithUnit(seventimer.Unit(v))
	case cfg.Defaults.Unit != "":
		params.WithUnit(seventimer.Unit(cfg.Defaults.Unit))
	}

	switch {
	case cmd.Flags().Changed("lang"):
		v, _ := cmd.Flags().GetString("lang")
		params.WithLang(v)
	case cfg.Defaults.Lang != "":
		params.WithLang(cfg.Defaults.Lang)
	}

	switch {
	case cmd.Flags().Changed("tzshift"):
		v, _ := cmd.Flags().GetInt("tzshift")
		params.WithTimezoneShift(v)
	case cfg.Defaults.Tzshift != nil:
		params.WithTimezoneShift(*cfg.Defaults.Tzshift)
	}

	if cmd.Flags().Changed("ac") {
		v, _ := cmd.Flags().GetInt("ac")
		params.WithAltitudeCorrection(v)
	}
}

func init() {
	getCmd.Flags().Float64("lat", 0, "Latitude in decimal degrees (-90 to 90)")
	getCmd.Flags().Float64("lon", 0, "Longitude in decimal degrees (-180 to 180)")
	getCmd.Flags().String("location", "", "Named location from the config file")
	getCmd.Flags().String("config", "", "Config file path (default ./skycast.yaml)")
	getCmd.Flags().String("output", "", "Response format requested from the API (json, xml, internal)")
	getCmd.Flags().String("unit", "", "Measurement system (metric, british)")
	getCmd.Flags().String("lang", "", "Report language code")
	getCmd.Flags().Int("tzshift", 0, "Timezone offset in hours (-23 to 23)")
	getCmd.Flags().Int("ac", 0, "Altitude correction in km (0, 2 or 7; astro only)")
	getCmd.Flags().Bool("raw", false, "Print the exact response body")
	getCmd.Flags().String("query", "", "Extract a single value by JSON path")
	getCmd.Flags().Bool("validate", false, "Validate the payload against the product schema")
	getCmd.Flags().String("format", "text", "Output format (text, json, yaml)")
	getCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	getCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	getCmd.Flags().Bool("no-color", false, "Disable colored output")
	getCmd.Flags().String("base-url", "", "Override the API base URL (testing)")
}
