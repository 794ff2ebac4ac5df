package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PROFILE_EXPLORER_BACK-END/internal/store"
)

func TestObserveOpCountsByResult(t *testing.T) {
	m := New()
	m.ObserveOp(store.OpList, 800*time.Millisecond, nil)
	m.ObserveOp(store.OpGet, time.Millisecond, fmt.Errorf("get profile 9: %w", store.ErrNotFound))
	m.ObserveOp(store.OpGet, time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("list", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("get", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("get", "error")))
}

func TestInFlightGauge(t *testing.T) {
	m := New()
	m.InFlightInc()
	m.InFlightInc()
	m.InFlightDec()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.ObserveOp(store.OpCreate, time.Millisecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `profiles_store_operations_total{op="create",result="ok"} 1`)
}
