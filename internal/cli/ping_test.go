package cli

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	out, err := executeCommand(t, "ping", "civil",
		"--lat", "51.2", "--lon", "-1.8",
		"--base-url", server.URL, "--count", "3")

	require.NoError(t, err)
	assert.Equal(t, int64(3), requests.Load())
	assert.Contains(t, out, "3 requests, 0 failed")
	assert.Contains(t, out, "p50")
	assert.Contains(t, out, "p99")
}

func TestPing_CountsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	out, err := executeCommand(t, "ping", "civil",
		"--lat", "0", "--lon", "0",
		"--base-url", server.URL, "--count", "2")

	require.Error(t, err)
	assert.Contains(t, out, "2 requests, 2 failed")
}

func TestPing_RejectsInvalidCount(t *testing.T) {
	_, err := executeCommand(t, "ping", "civil",
		"--lat", "0", "--lon", "0", "--count", "0")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--count")
}

func TestPing_ValidatesParams(t *testing.T) {
	_, err := executeCommand(t, "ping", "marine", "--lat", "0", "--lon", "0")

	require.Error(t, err)
}
