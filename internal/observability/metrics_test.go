package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()
	metrics.RecordRequest("/auth", "POST", 200, 5*time.Millisecond)
	metrics.RecordRequest("/auth", "POST", 200, 7*time.Millisecond)
	metrics.RecordRequest("/auth/refresh", "GET", 401, time.Millisecond)
	metrics.RecordError("/auth/refresh", "GET", "UNAUTHORIZED")

	assert.Equal(t, int64(2), metrics.RequestTotal("/auth", "POST", 200))
	assert.Equal(t, int64(1), metrics.RequestTotal("/auth/refresh", "GET", 401))
	assert.Equal(t, int64(0), metrics.RequestTotal("/auth", "POST", 500))
	assert.Equal(t, int64(1), metrics.ErrorTotal("/auth/refresh", "GET", "UNAUTHORIZED"))
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var metrics *Metrics
	metrics.RecordRequest("/auth", "POST", 200, 0)
	metrics.RecordError("/auth", "POST", "INTERNAL_ERROR")
	assert.Equal(t, int64(0), metrics.RequestTotal("/auth", "POST", 200))
}
