package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antmst/aco"
)

func TestRecorder_Observer(t *testing.T) {
	r := NewRecorder("")

	r.TourCompleted(1, 5)
	r.BestImproved(1, 5)
	r.TourCompleted(2, 3)
	r.BestImproved(2, 3)
	r.RunFinished(&aco.Result{Weight: 3, TargetWeight: 3, Iterations: 2, Converged: true})

	r.TourCompleted(1, 4)
	r.BestImproved(1, 4)
	r.RunFinished(&aco.Result{Weight: 4, TargetWeight: 2, Iterations: 1})
	r.RunFinished(nil)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.tours))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.improvements))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues(OutcomeConverged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues(OutcomeExhausted)))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.bestWeight))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.targetWeight))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.gap))
}

func TestRecorder_Registry(t *testing.T) {
	r := NewRecorder("test")
	r.TourCompleted(1, 2)
	r.RunFinished(&aco.Result{Weight: 2, TargetWeight: 2, Iterations: 1, Converged: true})

	n, err := testutil.GatherAndCount(r.Registry(), "test_aco_tours_total", "test_aco_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// independent registries do not collide
	other := NewRecorder("test")
	assert.Equal(t, 0.0, testutil.ToFloat64(other.tours))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder("antmst")
	r.TourCompleted(1, 3)
	r.RunFinished(&aco.Result{Weight: 3, TargetWeight: 3, Iterations: 1, Converged: true})

	path := filepath.Join(t.TempDir(), "antmst.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "antmst_aco_tours_total 1")
	assert.Contains(t, string(data), `antmst_aco_runs_total{outcome="converged"} 1`)

	err = r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.Error(t, err)
}
