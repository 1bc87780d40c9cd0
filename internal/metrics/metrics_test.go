package metrics

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/montgomery"
)

func TestObserveOperation(t *testing.T) {
	t.Parallel()
	m := New()

	m.ObserveOperation("scalarmult", 3*time.Millisecond, nil)
	m.ObserveOperation("scalarmult", time.Millisecond, nil)
	m.ObserveOperation("inverse", time.Microsecond, errors.New("not invertible"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("scalarmult", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("inverse", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.operations.WithLabelValues("inverse", "ok")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.durations))
}

func TestCacheObserver(t *testing.T) {
	t.Parallel()
	m := New()
	var _ montgomery.CacheObserver = m

	cache := montgomery.NewCache(montgomery.WithObserver(m))
	for i := 0; i < 3; i++ {
		_, err := cache.Get(bignum.NatFromDigit(23))
		require.NoError(t, err)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
}

func TestWriteText(t *testing.T) {
	t.Parallel()
	m := New()
	m.ObserveOperation("modexp", time.Millisecond, nil)
	m.CacheMiss()

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	out := buf.String()
	for _, want := range []string{
		`ecccalc_operations_total{op="modexp",status="ok"} 1`,
		`ecccalc_montgomery_cache_lookups_total{result="miss"} 1`,
		"ecccalc_operation_duration_seconds_bucket",
		"ecccalc_heap_alloc_bytes",
	} {
		assert.Contains(t, out, want)
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()
	m := New()
	m.ObserveOperation("add", time.Microsecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `ecccalc_operations_total{op="add",status="ok"} 1`))
}

func TestInstancesAreIndependent(t *testing.T) {
	t.Parallel()
	a, b := New(), New()
	a.CacheHit()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.cacheLookups.WithLabelValues("hit")))
}
