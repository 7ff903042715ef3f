package Zone1D

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	r := newResults(2)
	r.append(0, 293, 0, 0, 0, 0, 0)
	r.append(60, 350, 0.5, 0.00375, 1000, 5000, 0)
	r.CharDepth = []float64{0, 0.5}

	var buf bytes.Buffer
	require.NoError(t, r.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time_min,gas_temp_c,char_depth_mm,charring_rate_mm_min,mlr_kg_m2_s,hrr_wood_w,hrr_total_w,hrr_external_w",
		strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "0,20,0,"))
	assert.True(t, strings.HasPrefix(lines[2], "1,77,0.5,"))
}

func TestWriteCSVIncomplete(t *testing.T) {
	// Char depth series must match the step series before export
	r := newResults(1)
	r.append(0, 293, 0, 0, 0, 0, 0)
	assert.Error(t, r.WriteCSV(&bytes.Buffer{}))
}

func TestReadHRRTable(t *testing.T) {
	in := strings.NewReader("time_s,hrr_kw\n0,0\n60,500\n600,500\n1200,0\n")
	times, hrr, err := ReadHRRTable(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 60, 600, 1200}, times)
	assert.Equal(t, []float64{0, 500, 500, 0}, hrr)

	// Ragged rows are rejected
	_, _, err = ReadHRRTable(strings.NewReader("time_s,hrr_kw\n1\n"))
	assert.Error(t, err)
}
