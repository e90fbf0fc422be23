package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/flowlab/maxflow"
)

// Setting identifies one point of a family's parameter grid; the
// family-specific columns stay unset (-1) where they do not apply, so
// settings compare cleanly as map keys.
type Setting struct {
	Family     string
	N          int
	P          float64
	Layers     int
	Width      int
	BipartiteN int
}

func (t Trial) setting() Setting {
	return Setting{Family: t.Family, N: t.N, P: t.P, Layers: t.Layers, Width: t.Width, BipartiteN: t.BipartiteN}
}

// SeedSummary reduces one (setting, seed, algo) group of repeats to its
// median runtime.
type SeedSummary struct {
	Setting
	Seed            int64
	Algo            string
	Repeats         int
	RuntimeNSMedian float64
	FlowValue       float64
}

// Speedup is the per-setting paired comparison: the median across seeds
// of (edmonds_karp median runtime / dinic median runtime), with a
// bootstrap CI95.
type Speedup struct {
	Setting
	NumSeeds      int
	SpeedupMedian float64
	CI95Low       float64
	CI95High      float64
}

// Report bundles the raw trials with their reductions.
type Report struct {
	Trials        []Trial
	SeedSummaries []SeedSummary
	Speedups      []Speedup
}

type seedGroupKey struct {
	Setting
	Seed int64
	Algo string
}

// summarize fills SeedSummaries and Speedups from Trials, preserving
// first-seen order so output is deterministic.
func (r *Report) summarize() {
	groups := make(map[seedGroupKey][]Trial)
	var order []seedGroupKey
	for _, t := range r.Trials {
		k := seedGroupKey{Setting: t.setting(), Seed: t.Seed, Algo: t.Algo}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], t)
	}

	medianBySeed := make(map[seedGroupKey]float64, len(groups))
	for _, k := range order {
		runtimes := make([]float64, 0, len(groups[k]))
		for _, t := range groups[k] {
			runtimes = append(runtimes, float64(t.RuntimeNS))
		}
		med := Median(runtimes)
		medianBySeed[k] = med
		r.SeedSummaries = append(r.SeedSummaries, SeedSummary{
			Setting: k.Setting, Seed: k.Seed, Algo: k.Algo,
			Repeats:         len(groups[k]),
			RuntimeNSMedian: med,
			FlowValue:       groups[k][0].FlowValue,
		})
	}

	// Paired speedups need both engines at the same (setting, seed).
	type pairKey struct {
		Setting
		Seed int64
	}
	speedups := make(map[Setting][]float64)
	var settingOrder []Setting
	seenPair := make(map[pairKey]bool)
	for _, k := range order {
		pk := pairKey{Setting: k.Setting, Seed: k.Seed}
		if seenPair[pk] {
			continue
		}
		seenPair[pk] = true

		ek, okEK := medianBySeed[seedGroupKey{Setting: k.Setting, Seed: k.Seed, Algo: maxflow.NameEdmondsKarp}]
		di, okDI := medianBySeed[seedGroupKey{Setting: k.Setting, Seed: k.Seed, Algo: maxflow.NameDinic}]
		if !okEK || !okDI || di == 0 {
			continue
		}
		if _, seen := speedups[k.Setting]; !seen {
			settingOrder = append(settingOrder, k.Setting)
		}
		speedups[k.Setting] = append(speedups[k.Setting], ek/di)
	}

	for _, s := range settingOrder {
		values := speedups[s]
		low, high := BootstrapCI95Median(values, 0)
		r.Speedups = append(r.Speedups, Speedup{
			Setting: s, NumSeeds: len(values),
			SpeedupMedian: Median(values),
			CI95Low:       low, CI95High: high,
		})
	}
}

// counterColumns fixes the counter column order in trials.csv; the
// names match Counters.AsMap keys.
var counterColumns = []string{
	"bfs_count", "augment_count", "phase_count", "dfs_calls",
	"bfs_edge_scans", "dfs_edge_scans", "edge_scans",
}

// WriteCSV writes trials.csv, seed_summary.csv, and summary.csv into
// dir, creating it if needed.
func (r *Report) WriteCSV(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("bench: create output dir: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"trials.csv", r.writeTrials},
		{"seed_summary.csv", r.writeSeedSummaries},
		{"summary.csv", r.writeSpeedups},
	}
	for _, f := range files {
		fh, err := os.Create(filepath.Join(dir, f.name))
		if err != nil {
			return fmt.Errorf("bench: create %s: %w", f.name, err)
		}
		if err = f.write(fh); err != nil {
			fh.Close()
			return fmt.Errorf("bench: write %s: %w", f.name, err)
		}
		if err = fh.Close(); err != nil {
			return fmt.Errorf("bench: close %s: %w", f.name, err)
		}
	}
	return nil
}

func (r *Report) writeTrials(out io.Writer) error {
	w := csv.NewWriter(out)
	header := []string{
		"exp", "graph_family", "n", "m", "p", "seed", "algo", "repeat",
		"layers", "width", "bipartite_n",
		"flow_value", "cut_capacity", "matching_size", "runtime_ns",
	}
	header = append(header, counterColumns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, t := range r.Trials {
		counters := t.Counters.AsMap()
		row := []string{
			t.Exp, t.Family,
			strconv.Itoa(t.N), strconv.Itoa(t.M),
			formatFloat(t.P),
			strconv.FormatInt(t.Seed, 10),
			t.Algo, strconv.Itoa(t.Repeat),
			formatOptionalInt(t.Layers), formatOptionalInt(t.Width), formatOptionalInt(t.BipartiteN),
			formatFloat(t.FlowValue), formatFloat(t.CutCapacity),
			formatOptionalInt(t.MatchingSize),
			strconv.FormatInt(t.RuntimeNS, 10),
		}
		for _, col := range counterColumns {
			row = append(row, strconv.Itoa(counters[col]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (r *Report) writeSeedSummaries(out io.Writer) error {
	w := csv.NewWriter(out)
	header := []string{
		"graph_family", "n", "p", "layers", "width", "bipartite_n",
		"seed", "algo", "repeats", "runtime_ns_median", "flow_value",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range r.SeedSummaries {
		row := append(settingColumns(s.Setting),
			strconv.FormatInt(s.Seed, 10), s.Algo, strconv.Itoa(s.Repeats),
			formatFloat(s.RuntimeNSMedian), formatFloat(s.FlowValue))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (r *Report) writeSpeedups(out io.Writer) error {
	w := csv.NewWriter(out)
	header := []string{
		"graph_family", "n", "p", "layers", "width", "bipartite_n",
		"num_seeds", "speedup_median", "ci95_low", "ci95_high",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range r.Speedups {
		row := append(settingColumns(s.Setting),
			strconv.Itoa(s.NumSeeds), formatFloat(s.SpeedupMedian),
			formatFloat(s.CI95Low), formatFloat(s.CI95High))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func settingColumns(s Setting) []string {
	return []string{
		s.Family, strconv.Itoa(s.N), formatFloat(s.P),
		formatOptionalInt(s.Layers), formatOptionalInt(s.Width), formatOptionalInt(s.BipartiteN),
	}
}

// formatFloat renders a float column; NaN (not applicable) is empty.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatOptionalInt renders an int column; unset (-1) is empty.
func formatOptionalInt(v int) string {
	if v == unset {
		return ""
	}
	return strconv.Itoa(v)
}
