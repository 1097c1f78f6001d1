package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := New()
	r.RecordRender("AAPL", "Monthly")
	r.RecordRender("AAPL", "Monthly")
	r.RecordSkippedChart("correlation")
	r.RecordLatency("render", 0.01)
	r.RecordLoadedRecords("AAPL", 1259)

	require.Equal(t, 2.0, testutil.ToFloat64(r.renders.WithLabelValues("AAPL", "Monthly")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.skippedCharts.WithLabelValues("correlation")))
	require.Equal(t, 1259.0, testutil.ToFloat64(r.loadedRecords.WithLabelValues("AAPL")))

	// a second recorder must not collide with the first
	require.NotPanics(t, func() { New() })

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "stockdash_renders_total"))
}
