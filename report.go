package boundarybench

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Config controls one report run.
type Config struct {
	ListLength int         // N: nodes per list
	Iterations int         // M: timed invocations per benchmark
	Out        io.Writer   // report stream (default os.Stdout)
	Log        *slog.Logger // optional phase-level logging; report text never goes here
}

// DefaultConfig returns the canonical configuration: 1000 nodes, 100000
// iterations, report to stdout.
func DefaultConfig() Config {
	return Config{
		ListLength: 1000,
		Iterations: 100_000,
		Out:        os.Stdout,
	}
}

// Runner executes the full 3×2 benchmark matrix and writes the report.
// Provider fields are exported so tests can substitute stubs.
type Runner struct {
	Config  Config
	Native  Provider
	Foreign Provider
	Managed Provider
}

// NewRunner wires the three real providers.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		Config:  cfg,
		Native:  NewNativeProvider(),
		Foreign: NewForeignProvider(),
		Managed: NewManagedProvider(),
	}
}

// Run orchestrates one complete report: environment header, list
// construction, correctness verification, the six timings, ratios against
// the Go-native baseline, and the falsification check.
//
// Verification gates the timings: on any mismatch Run returns the error
// immediately and writes nothing further; timings over an incorrect list
// must never be reported.
func (r *Runner) Run() error {
	cfg := r.Config
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	log := cfg.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ListLength <= 0 {
		return fmt.Errorf("list length must be positive, got %d: %w", cfg.ListLength, ErrInvalidArgument)
	}
	if cfg.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d: %w", cfg.Iterations, ErrInvalidArgument)
	}

	w := cfg.Out
	n := cfg.ListLength
	m := cfg.Iterations

	// Environment. Informational only; probes fail soft to "unknown".
	log.Debug("probing environment", "gomaxprocs", runtime.GOMAXPROCS(0), "numcpu", runtime.NumCPU())
	banner := strings.Repeat("=", 60)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "Boundary Crossing Benchmark")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Go:       %s\n", runtime.Version())
	fmt.Fprintf(w, "Platform: %s\n", PlatformString())
	fmt.Fprintf(w, "Go tool:  %s\n", GoToolchainVersion())
	fmt.Fprintf(w, "CC:       %s\n", CCompilerVersion())
	fmt.Fprintln(w)

	// One list per provider, reused across all timings for that provider.
	log.Debug("building lists", "nodes", n)
	goList, err := BuildList(r.Native, n)
	if err != nil {
		return fmt.Errorf("building %s list: %w", r.Native.Name(), err)
	}
	defer r.Native.Release(goList)

	cList, err := BuildList(r.Foreign, n)
	if err != nil {
		return fmt.Errorf("building %s list: %w", r.Foreign.Name(), err)
	}
	defer r.Foreign.Release(cList)

	dynList, err := BuildList(r.Managed, n)
	if err != nil {
		return fmt.Errorf("building %s list: %w", r.Managed.Name(), err)
	}
	defer r.Managed.Release(dynList)

	// Correctness gates everything below.
	log.Debug("verifying correctness", "expected", ExpectedSum(n))
	for _, pl := range []struct {
		p    Provider
		head Node
	}{
		{r.Native, goList},
		{r.Foreign, cList},
		{r.Managed, dynList},
	} {
		if err := VerifyProvider(pl.p, pl.head, n); err != nil {
			return fmt.Errorf("correctness: %w", err)
		}
	}
	fmt.Fprintf(w, "Correctness: all implementations produce %d (sum 0..%d)\n", ExpectedSum(n), n-1)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Linked list traversal: %d nodes, %s iterations\n", n, commas(m))
	fmt.Fprintf(w, "%-40s  %14s\n", "Benchmark", "ns/traversal")
	fmt.Fprintln(w, strings.Repeat("-", 56))

	// Native implementations: loop and data in the same language.
	fmt.Fprintln(w, "\n--- Native (loop + data in same language) ---")
	dynNative, err := Bench(w, "Dyn loop, dyn nodes", r.Managed.NativeSum, dynList, m)
	if err != nil {
		return err
	}
	goNative, err := Bench(w, "Go loop, Go nodes", r.Native.NativeSum, goList, m)
	if err != nil {
		return err
	}
	cNative, err := Bench(w, "C loop, C nodes", r.Foreign.NativeSum, cList, m)
	if err != nil {
		return err
	}

	// Cross: one generic loop, per-read boundary cost varies by node type.
	fmt.Fprintln(w, "\n--- Interface loop, different node types ---")
	dynCross, err := Bench(w, "Interface loop, dyn nodes", ManagedSum, dynList, m)
	if err != nil {
		return err
	}
	goCross, err := Bench(w, "Interface loop, Go nodes", ManagedSum, goList, m)
	if err != nil {
		return err
	}
	cCross, err := Bench(w, "Interface loop, C nodes", ManagedSum, cList, m)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\n--- Ratios (relative to Go native) ---")
	fmt.Fprintf(w, "  Dyn native / Go native:  %6.2fx\n", dynNative/goNative)
	fmt.Fprintf(w, "  C native / Go native:    %6.2fx\n", cNative/goNative)
	fmt.Fprintf(w, "  Dyn cross / Go native:   %6.2fx\n", dynCross/goNative)
	fmt.Fprintf(w, "  Go cross / Go native:    %6.2fx\n", goCross/goNative)
	fmt.Fprintf(w, "  C cross / Go native:     %6.2fx\n", cCross/goNative)

	// The hypothesis under test: entering C costs something, so the C-owned
	// chain's own-native sum should not beat the all-Go baseline.
	fmt.Fprintln(w, "\n--- Falsification ---")
	if cNative < goNative {
		fmt.Fprintln(w, "UNEXPECTED: C native FASTER than Go native.")
		fmt.Fprintln(w, "The cgo boundary-crossing hypothesis is WRONG for this workload.")
	} else {
		fmt.Fprintf(w, "C native slower than Go native by %.0f ns/traversal (%.1f ns/node).\n",
			cNative-goNative, (cNative-goNative)/float64(n))
		fmt.Fprintln(w, "Consistent with cgo call overhead amortized per node.")
	}

	log.Info("benchmark complete", "nodes", n, "iterations", m)
	return nil
}

// commas formats an integer with thousands separators, e.g. 100000 →
// "100,000".
func commas(n int) string {
	if n < 0 {
		return "-" + commas(-n)
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
