package bench

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/flowlab/matching"
	"github.com/katalvlaran/flowlab/maxflow"
	"github.com/katalvlaran/flowlab/mincut"
	"github.com/katalvlaran/flowlab/netgen"
)

// ErrDualityViolation reports a trial whose derived cut capacity did
// not equal the engine's flow value. It should never fire; it is the
// harness's correctness oracle, and a single violation aborts the run.
var ErrDualityViolation = errors.New("bench: max-flow != min-cut")

// unset marks a parameter column that does not apply to a trial's
// family (layers for erdos_renyi, and so on).
const unset = -1

// Trial is one engine invocation on one generated graph: the grid
// coordinates, the outcome, and the run's counters.
type Trial struct {
	Exp    string
	Family string
	N      int // node count of the network actually run
	M      int // arc count handed to the builder
	P      float64
	Seed   int64
	Algo   string
	Repeat int

	// Family-specific coordinates; unset (-1) when not applicable.
	Layers     int
	Width      int
	BipartiteN int

	FlowValue float64
	// CutCapacity is NaN for bipartite trials, where the reduction owns
	// its network and consistency is checked via MatchingSize instead.
	CutCapacity  float64
	MatchingSize int // unset (-1) for non-bipartite families

	RuntimeNS int64
	Counters  maxflow.Counters
}

// Runner executes one experiment configuration sequentially.
type Runner struct {
	cfg Config
	log zerolog.Logger
}

// NewRunner wires a validated config with a logger.
func NewRunner(cfg Config, log zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Run walks the whole parameter grid and returns the trials together
// with their summaries. The first duality violation or engine error
// aborts the run.
func (r *Runner) Run() (*Report, error) {
	var trials []Trial
	for _, fam := range r.cfg.Families {
		r.log.Info().Str("family", fam.Name).Msg("running graph family")

		var (
			rows []Trial
			err  error
		)
		switch fam.Name {
		case FamilyErdosRenyi:
			rows, err = r.runErdosRenyi(fam.Params)
		case FamilyLayered:
			rows, err = r.runLayered(fam.Params)
		case FamilyBipartite:
			rows, err = r.runBipartite(fam.Params)
		default:
			err = fmt.Errorf("bench: unknown graph family %q", fam.Name)
		}
		if err != nil {
			return nil, err
		}
		trials = append(trials, rows...)
	}

	r.log.Info().Int("trials", len(trials)).Msg("experiment complete")
	report := &Report{Trials: trials}
	report.summarize()
	return report, nil
}

func (r *Runner) runErdosRenyi(p FamilyParams) ([]Trial, error) {
	var trials []Trial
	for _, n := range p.NValues {
		for _, prob := range p.PValues {
			for _, seed := range r.cfg.Seeds {
				edges, err := netgen.ErdosRenyi(rand.New(rand.NewSource(seed)), n, prob, p.capMax())
				if err != nil {
					return nil, err
				}
				base := Trial{
					Exp: r.cfg.Name, Family: FamilyErdosRenyi,
					N: n, M: len(edges), P: prob, Seed: seed,
					Layers: unset, Width: unset, BipartiteN: unset,
					MatchingSize: unset,
				}
				rows, err := r.flowTrials(base, n, edges, 0, n-1)
				if err != nil {
					return nil, err
				}
				trials = append(trials, rows...)
			}
		}
	}
	return trials, nil
}

func (r *Runner) runLayered(p FamilyParams) ([]Trial, error) {
	var trials []Trial
	for _, layers := range p.LayersValues {
		for _, width := range p.WidthValues {
			for _, seed := range r.cfg.Seeds {
				numNodes, edges, err := netgen.Layered(
					rand.New(rand.NewSource(seed)), layers, width, p.interLayerP(), p.capMax())
				if err != nil {
					return nil, err
				}
				base := Trial{
					Exp: r.cfg.Name, Family: FamilyLayered,
					N: numNodes, M: len(edges), P: p.interLayerP(), Seed: seed,
					Layers: layers, Width: width, BipartiteN: unset,
					MatchingSize: unset,
				}
				rows, err := r.flowTrials(base, numNodes, edges, 0, numNodes-1)
				if err != nil {
					return nil, err
				}
				trials = append(trials, rows...)
			}
		}
	}
	return trials, nil
}

// flowTrials runs every configured algorithm × repeat on fresh builds
// of the same edge list, cross-checking duality on every trial.
func (r *Runner) flowTrials(base Trial, numNodes int, edges []netgen.Edge, source, sink int) ([]Trial, error) {
	var trials []Trial
	for _, algoName := range r.cfg.Algorithms {
		algo, err := maxflow.ByName(algoName)
		if err != nil {
			return nil, err
		}
		for repeat := 0; repeat < r.cfg.Repeats; repeat++ {
			net, err := netgen.Build(numNodes, edges)
			if err != nil {
				return nil, err
			}

			start := time.Now()
			res, err := algo(net, source, sink)
			elapsed := time.Since(start)
			if err != nil {
				return nil, err
			}

			cut, err := mincut.MinCut(net, source)
			if err != nil {
				return nil, err
			}
			if cut.CutCapacity != res.FlowValue {
				return nil, fmt.Errorf("%w: family=%s seed=%d algo=%s flow=%g cut=%g",
					ErrDualityViolation, base.Family, base.Seed, algoName, res.FlowValue, cut.CutCapacity)
			}

			t := base
			t.Algo = algoName
			t.Repeat = repeat
			t.FlowValue = res.FlowValue
			t.CutCapacity = cut.CutCapacity
			t.RuntimeNS = elapsed.Nanoseconds()
			t.Counters = res.Counters
			trials = append(trials, t)

			r.log.Debug().
				Str("family", base.Family).Int64("seed", base.Seed).
				Str("algo", algoName).Int("repeat", repeat).
				Float64("flow", res.FlowValue).Dur("runtime", elapsed).
				Msg("trial")
		}
	}
	return trials, nil
}

func (r *Runner) runBipartite(p FamilyParams) ([]Trial, error) {
	var trials []Trial
	for _, n := range p.NValues {
		for _, prob := range p.PValues {
			for _, seed := range r.cfg.Seeds {
				pairs, err := netgen.Bipartite(rand.New(rand.NewSource(seed)), n, n, prob)
				if err != nil {
					return nil, err
				}

				for _, algoName := range r.cfg.Algorithms {
					algo, err := maxflow.ByName(algoName)
					if err != nil {
						return nil, err
					}
					for repeat := 0; repeat < r.cfg.Repeats; repeat++ {
						start := time.Now()
						res, err := matching.MaximumMatching(n, n, pairs, algo)
						elapsed := time.Since(start)
						if err != nil {
							return nil, err
						}
						// Unit capacities make flow == matching size the
						// consistency check for this family.
						if res.Flow.FlowValue != float64(res.Size) {
							return nil, fmt.Errorf("%w: bipartite seed=%d algo=%s flow=%g size=%d",
								ErrDualityViolation, seed, algoName, res.Flow.FlowValue, res.Size)
						}

						trials = append(trials, Trial{
							Exp: r.cfg.Name, Family: FamilyBipartite,
							N: 2*n + 2, M: 2*n + len(pairs), P: prob, Seed: seed,
							Algo: algoName, Repeat: repeat,
							Layers: unset, Width: unset, BipartiteN: n,
							FlowValue:    res.Flow.FlowValue,
							CutCapacity:  math.NaN(),
							MatchingSize: res.Size,
							RuntimeNS:    elapsed.Nanoseconds(),
							Counters:     res.Flow.Counters,
						})

						r.log.Debug().
							Int64("seed", seed).Str("algo", algoName).Int("repeat", repeat).
							Int("matching", res.Size).Dur("runtime", elapsed).
							Msg("bipartite trial")
					}
				}
			}
		}
	}
	return trials, nil
}
