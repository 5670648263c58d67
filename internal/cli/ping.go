package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/skycast/pkg/seventimer"
)

var pingCmd = &cobra.Command{
	Use:   "ping PRODUCT",
	Short: "Measure API latency with sequential requests",
	Long: `Issue a number of sequential requests for the given product and
report latency percentiles. Requests are strictly one at a time; this
is a reachability check, not a load generator.`,
	Args: cobra.ExactArgs(1),
	RunE: runPing,
}

func runPing(cmd *cobra.Command, args []string) error {
	product := seventimer.Product(args[0])
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	count, _ := cmd.Flags().GetInt("count")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	baseURL, _ := cmd.Flags().GetString("base-url")

	if count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	options := []seventimer.ClientOption{
		seventimer.WithTimeout(timeout),
		seventimer.WithUserAgent("skycast/" + version),
	}
	if baseURL != "" {
		options = append(options, seventimer.WithBaseURL(baseURL))
	}
	client := seventimer.NewClient(options...)

	// Latencies in microseconds, up to one minute.
	hist := hdrhistogram.New(1, time.Minute.Microseconds(), 3)
	failures := 0

	for i := 0; i < count; i++ {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		resp, err := client.Do(ctx, seventimer.NewParams(product, lat, lon))
		cancel()
		if err != nil {
			return err
		}
		if _, err := resp.GetBody(); err != nil {
			return err
		}
		if !resp.IsSuccess() {
			failures++
		}
		if err := hist.RecordValue(resp.ResponseTime.Microseconds()); err != nil {
			return err
		}
	}

	cmd.Printf("%d requests, %d failed\n", count, failures)
	cmd.Printf("  min    %s\n", microsDuration(hist.Min()))
	cmd.Printf("  p50    %s\n", microsDuration(hist.ValueAtQuantile(50)))
	cmd.Printf("  p90    %s\n", microsDuration(hist.ValueAtQuantile(90)))
	cmd.Printf("  p99    %s\n", microsDuration(hist.ValueAtQuantile(99)))
	cmd.Printf("  max    %s\n", microsDuration(hist.Max()))

	if failures > 0 {
		return fmt.Errorf("%d of %d requests failed", failures, count)
	}
	return nil
}

func microsDuration(us int64) time.Duration {
	return time.Duration(us) * time.Microsecond
}

func init() {
	pingCmd.Flags().Float64("lat", 0, "Latitude in decimal degrees")
	pingCmd.Flags().Float64("lon", 0, "Longitude in decimal degrees")
	pingCmd.Flags().Int("count", 5, "Number of sequential requests")
	pingCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Per-request timeout")
	pingCmd.Flags().String("base-url", "", "Override the API base URL (testing)")
}
