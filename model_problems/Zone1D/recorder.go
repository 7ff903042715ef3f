package Zone1D

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Results holds the output of one run as parallel series, one entry per time
// step including the initial state. All slices share the same length and
// TimeMin is strictly increasing. Consumers (plotting, CSV export) treat this
// as read-only.
type Results struct {
	TimeMin      []float64 // min
	GasTemp      []float64 // degC
	CharDepth    []float64 // mm, smoothed
	CharringRate []float64 // mm/min
	MLR          []float64 // kg/(m^2 s)
	HRRWood      []float64 // W
	HRRTotal     []float64 // W, capped internal total
	HRRExternal  []float64 // W, burning outside the openings

	// The content design fire the run consumed, for reference plotting.
	CurveTimeMin []float64 // min
	CurveHRR     []float64 // W
}

func newResults(capacity int) *Results {
	return &Results{
		TimeMin:      make([]float64, 0, capacity),
		GasTemp:      make([]float64, 0, capacity),
		CharringRate: make([]float64, 0, capacity),
		MLR:          make([]float64, 0, capacity),
		HRRWood:      make([]float64, 0, capacity),
		HRRTotal:     make([]float64, 0, capacity),
		HRRExternal:  make([]float64, 0, capacity),
	}
}

func (r *Results) append(timeS, gasTempK, rate, mlr, wood, total, ext float64) {
	r.TimeMin = append(r.TimeMin, timeS/60)
	r.GasTemp = append(r.GasTemp, gasTempK-273)
	r.CharringRate = append(r.CharringRate, rate)
	r.MLR = append(r.MLR, mlr)
	r.HRRWood = append(r.HRRWood, wood)
	r.HRRTotal = append(r.HRRTotal, total)
	r.HRRExternal = append(r.HRRExternal, ext)
}

// Len returns the number of recorded steps.
func (r *Results) Len() int {
	return len(r.TimeMin)
}

// resultRow is the CSV projection of one step.
type resultRow struct {
	TimeMin      float64 `csv:"time_min"`
	GasTemp      float64 `csv:"gas_temp_c"`
	CharDepth    float64 `csv:"char_depth_mm"`
	CharringRate float64 `csv:"charring_rate_mm_min"`
	MLR          float64 `csv:"mlr_kg_m2_s"`
	HRRWood      float64 `csv:"hrr_wood_w"`
	HRRTotal     float64 `csv:"hrr_total_w"`
	HRRExternal  float64 `csv:"hrr_external_w"`
}

// WriteCSV streams the per-step series as CSV.
func (r *Results) WriteCSV(w io.Writer) error {
	if len(r.CharDepth) != r.Len() {
		return fmt.Errorf("results incomplete: %d char depths for %d steps", len(r.CharDepth), r.Len())
	}
	rows := make([]*resultRow, r.Len())
	for i := range rows {
		rows[i] = &resultRow{
			TimeMin:      r.TimeMin[i],
			GasTemp:      r.GasTemp[i],
			CharDepth:    r.CharDepth[i],
			CharringRate: r.CharringRate[i],
			MLR:          r.MLR[i],
			HRRWood:      r.HRRWood[i],
			HRRTotal:     r.HRRTotal[i],
			HRRExternal:  r.HRRExternal[i],
		}
	}
	return gocsv.Marshal(rows, w)
}

// HRRTableRow is one row of a prescribed heat release rate table.
type HRRTableRow struct {
	TimeS float64 `csv:"time_s"`
	HRRKW float64 `csv:"hrr_kw"`
}

// ReadHRRTable loads a two-column prescribed HRR table from CSV.
func ReadHRRTable(rd io.Reader) (times, hrrKW []float64, err error) {
	var rows []*HRRTableRow
	if err = gocsv.Unmarshal(rd, &rows); err != nil {
		return nil, nil, fmt.Errorf("reading HRR table: %w", err)
	}
	times = make([]float64, len(rows))
	hrrKW = make([]float64, len(rows))
	for i, row := range rows {
		times[i] = row.TimeS
		hrrKW[i] = row.HRRKW
	}
	return times, hrrKW, nil
}
