// Package memory wires dataset loading, hebbian training, corruption and storage together.
package memory

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/drakos74/hopfield/internal/math/ml"
	"github.com/drakos74/hopfield/internal/metrics"
	"github.com/drakos74/hopfield/internal/model"
	"github.com/drakos74/hopfield/internal/storage"
	"github.com/drakos74/hopfield/internal/storage/file/json"
	"github.com/drakos74/hopfield/internal/storage/file/pbm"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// Run describes a training without the weights.
type Run struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Time     time.Time  `json:"time"`
	Dataset  string     `json:"dataset"`
	Sources  []string   `json:"sources"`
	Patterns int        `json:"patterns"`
	Summary  ml.Summary `json:"summary"`
}

// Record is the stored result of a training.
type Record struct {
	Run
	Weights model.WeightMatrix `json:"weights"`
}

// Memory trains and stores weight matrices and generates probes.
type Memory struct {
	store   storage.Persistence
	runs    *json.Logger
	metrics *metrics.Metrics
	seed    int64
	workers int
}

// New creates a memory on top of the given storage.
func New(store storage.Persistence) *Memory {
	return &Memory{
		store:   store,
		metrics: metrics.Observer,
		seed:    time.Now().UnixNano(),
		workers: runtime.NumCPU(),
	}
}

// WithHistory keeps a log of all training runs.
func (m *Memory) WithHistory(runs *json.Logger) *Memory {
	m.runs = runs
	return m
}

// WithMetrics overrides the process wide metrics.
func (m *Memory) WithMetrics(mm *metrics.Metrics) *Memory {
	m.metrics = mm
	return m
}

// WithSeed fixes the random source of the corruptions, 0 keeps the time based seed.
func (m *Memory) WithSeed(seed int64) *Memory {
	if seed != 0 {
		m.seed = seed
	}
	return m
}

// WithWorkers sets the parallelism of the bulk operations.
func (m *Memory) WithWorkers(n int) *Memory {
	if n > 0 {
		m.workers = n
	}
	return m
}

// Seed returns the seed used for the corruptions.
func (m *Memory) Seed() int64 {
	return m.seed
}

// Learn trains a weight matrix on all patterns of the directory and stores it under the key.
func (m *Memory) Learn(ctx context.Context, key storage.Key, dir string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if err := key.Validate(); err != nil {
		return Record{}, err
	}

	samples, err := pbm.LoadDir(dir)
	if err != nil {
		m.metrics.Failed("load")
		log.Error().Err(err).Str("dataset", dir).Msg("could not load dataset")
		return Record{}, fmt.Errorf("could not load dataset: %w", err)
	}
	m.metrics.Loaded(len(samples))

	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	start := time.Now()
	weights, err := ml.Train(pbm.Patterns(samples))
	if err != nil {
		m.metrics.Failed("train")
		log.Error().Err(err).Str("dataset", dir).Int("patterns", len(samples)).Msg("could not train")
		return Record{}, fmt.Errorf("could not train on '%s': %w", dir, err)
	}
	m.metrics.Trained(time.Since(start))

	sources := make([]string, len(samples))
	for i, s := range samples {
		sources[i] = filepath.Base(s.Path)
	}

	record := Record{
		Run: Run{
			ID:       uuid.New().String(),
			Label:    key.Label,
			Time:     time.Now(),
			Dataset:  dir,
			Sources:  sources,
			Patterns: len(samples),
			Summary:  ml.Summarize(weights),
		},
		Weights: weights,
	}

	if err := m.store.Store(key, record); err != nil {
		m.metrics.Failed("store")
		log.Error().Err(err).Str("label", key.Label).Str("run", record.ID).Msg("could not store weights")
		return Record{}, fmt.Errorf("could not store weights: %w", err)
	}
	if m.runs != nil {
		if err := m.runs.Append(key, record.Run); err != nil {
			m.metrics.Failed("history")
			return Record{}, fmt.Errorf("could not log run: %w", err)
		}
	}

	log.Info().
		Str("label", key.Label).
		Str("run", record.ID).
		Str("dataset", dir).
		Int("patterns", record.Patterns).
		Int("neurons", weights.Size()).
		Float64("duration", time.Since(start).Seconds()).
		Msg("trained weights")
	return record, nil
}

// Recall loads the stored record for the key.
func (m *Memory) Recall(ctx context.Context, key storage.Key) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	var record Record
	if err := m.store.Load(key, &record); err != nil {
		return Record{}, fmt.Errorf("could not recall '%s': %w", key.Label, err)
	}
	return record, nil
}

// History returns all training runs of the key.
func (m *Memory) History(key storage.Key) ([]Run, error) {
	if m.runs == nil {
		return nil, fmt.Errorf("no history configured: %w", storage.NotFoundErr)
	}
	var runs []Run
	if err := m.runs.GetAll(key, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// Probe reads the pattern file in, corrupts it and writes the result to out.
func (m *Memory) Probe(ctx context.Context, in, out string, policy model.Policy) (model.Pattern, error) {
	return m.probe(ctx, in, out, policy, rand.New(rand.NewSource(m.seed)))
}

func (m *Memory) probe(ctx context.Context, in, out string, policy model.Policy, rnd *rand.Rand) (model.Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := pbm.Read(in)
	if err != nil {
		m.metrics.Failed("probe")
		return nil, err
	}
	corrupted, err := ml.Corrupt(p, policy, rnd)
	if err != nil {
		m.metrics.Failed("probe")
		return nil, fmt.Errorf("could not corrupt '%s': %w", in, err)
	}
	if err := pbm.Write(out, corrupted.Bipolar()); err != nil {
		m.metrics.Failed("probe")
		return nil, fmt.Errorf("could not write probe: %w", err)
	}

	changed := p.Hamming(corrupted)
	m.metrics.Corrupted(policy.Method, changed)
	log.Debug().
		Str("in", in).
		Str("out", out).
		Str("policy", policy.String()).
		Int("changed", changed).
		Msg("wrote probe")
	return corrupted, nil
}

// ProbeAll corrupts every pattern file of dir into outDir.
// Every file gets its own random source seeded from its position, so the output does not
// depend on the scheduling of the workers.
func (m *Memory) ProbeAll(ctx context.Context, dir, outDir string, policy model.Policy) ([]string, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	files, err := pbm.List(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not create output directory '%s': %w", outDir, err)
	}

	outs := make([]string, len(files))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(m.workers).WithCancelOnError()
	for i, in := range files {
		i, in := i, in
		outs[i] = filepath.Join(outDir, ProbeName(in, policy.Method))
		p.Go(func(ctx context.Context) error {
			rnd := rand.New(rand.NewSource(m.seed + int64(i)))
			_, err := m.probe(ctx, in, outs[i], policy, rnd)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Str("dataset", dir).
		Str("out", outDir).
		Str("policy", policy.String()).
		Int("probes", len(outs)).
		Msg("generated probes")
	return outs, nil
}

// ProbeName is the file name of the probe generated from the given pattern file.
func ProbeName(path string, method model.Method) string {
	base := strings.TrimSuffix(filepath.Base(path), pbm.Ext)
	return fmt.Sprintf("%s_%s%s", base, method, pbm.Ext)
}
