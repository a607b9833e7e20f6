package Bench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/go-succ/Workloads"
)

// Every registered configuration must answer every workload identically
// to the recorded reference.
func TestAlgorithmsAgree(t *testing.T) {
	for _, n := range []int{2, 5, 33, 130, 1000} {
		logs := []*Workloads.Log[int]{
			Workloads.QueryOne(n),
			Workloads.WorstCase(n, 0.5),
			Workloads.WorstCase(n, 4),
			Workloads.Random(n, 1, 3),
		}
		for _, lg := range logs {
			for _, alg := range Algorithms() {
				k := lg.Replay(alg.New(lg.N))
				assert.Equal(t, -1, k, "%s disagrees on %q n=%d at operation %d", alg.Name, lg.Name, lg.N, k)
			}
		}
	}
}

// alwaysZero answers 0 to everything; Measure must refuse to time it.
type alwaysZero struct{}

func (alwaysZero) Init(int)          {}
func (alwaysZero) Delete(int)        {}
func (alwaysZero) Successor(int) int { return 0 }

func TestMeasureRejectsWrongAnswers(t *testing.T) {
	lg := Workloads.WorstCase(8, 1)
	_, err := Measure(alwaysZero{}, lg, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong answer")
}

func TestMeasure(t *testing.T) {
	lg := Workloads.Random(64, 1, 1)
	o := Options{MinTime: time.Microsecond, MinRepeats: 1, BestOf: 2}
	for _, alg := range Algorithms() {
		sec, err := Measure(alg.New(lg.N), lg, o)
		require.NoError(t, err, alg.Name)
		assert.Positive(t, sec, alg.Name)
	}
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Result{
		Algorithm: "successor, 2-pass",
		Workload:  "random 1.000",
		N:         1024,
		Seconds:   1.23,
	})
	require.NoError(t, err)
	// encoding/csv only quotes the fields that need it
	assert.Equal(t, "\"successor, 2-pass\",random 1.000,1024,1.2300000000e+00\n", buf.String())
}

func TestAppendAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	r := Result{Algorithm: "quick find", Workload: "query_one", N: 2, Seconds: 1e-9}
	require.NoError(t, Append(path, r))
	require.NoError(t, Append(path, r, r))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(raw), "\n"))
}
