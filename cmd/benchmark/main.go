package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/orblocks/pkg/instance"
	"github.com/limaJavier/orblocks/pkg/model"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type EngineType int

const (
	sequential EngineType = iota
	parallel
)

var engineTypes = map[EngineType]string{
	sequential: "sequential",
	parallel:   "parallel",
}

type BenchmarkResult struct {
	Engine           EngineType
	Workers          int
	Scenario         instance.Dimensions
	Duration         int64 // Microseconds, best of all repetitions
	FeasiblePatients int
	Verified         bool
}

func main() {
	scenariosPtr := flag.String("scenarios", "224x30x5x10,1000x100x10x20,10000x400x40x60", "Comma-separated scenarios as patients x surgeons x rooms x days")
	repetitionsPtr := flag.Int("repetitions", 5, "Number of runs per engine and scenario")
	densityPtr := flag.Float64("density", 0.6, "Probability that a block or surgeon slot is open")
	seedPtr := flag.Uint64("seed", 1, "Random seed for instance generation")
	outFilePtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	scenarios, err := parseScenarios(*scenariosPtr)
	if err != nil {
		log.Fatalf("invalid scenarios: %v", err)
	} else if *repetitionsPtr <= 0 {
		log.Fatalf("repetitions must be greater than 0: %v", *repetitionsPtr)
	}

	rng := rand.New(rand.NewPCG(*seedPtr, *seedPtr))
	results := make([]BenchmarkResult, 0, len(scenarios)*len(engineTypes))

	for _, scenario := range scenarios {
		input := instance.Generate(scenario, *densityPtr, model.DefaultCapacityMinutes, rng)
		problem, err := model.Build(input, model.DefaultConfig())
		if err != nil {
			log.Fatalf("cannot build problem for scenario %v: %v", scenario, err)
		}

		for _, engineType := range []EngineType{sequential, parallel} {
			fmt.Printf("Benchmarking scenario %v with engine \"%v\"\n", formatScenario(scenario), engineTypes[engineType])
			results = append(results, measure(engineType, problem, scenario, *repetitionsPtr))
		}
	}

	toCsv(*outFilePtr, results)
}

func measure(engineType EngineType, problem model.Problem, scenario instance.Dimensions, repetitions int) BenchmarkResult {
	workers := 1
	var engine model.FeasibilityEngine
	switch engineType {
	case sequential:
		engine = model.NewSequentialEngine(zerolog.Nop())
	case parallel:
		workers = runtime.NumCPU()
		engine = model.NewParallelEngine(workers, zerolog.Nop())
	}

	var best time.Duration
	var counts map[int]int
	for i := range repetitions {
		start := time.Now()
		counts = engine.FeasibleBlocks(problem)
		if elapsed := time.Since(start); i == 0 || elapsed < best {
			best = elapsed
		}
	}

	return BenchmarkResult{
		Engine:           engineType,
		Workers:          workers,
		Scenario:         scenario,
		Duration:         best.Microseconds(),
		FeasiblePatients: len(counts),
		Verified:         model.Verify(problem, counts),
	}
}

func toCsv(path string, results []BenchmarkResult) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Engine", "Workers", "Patients", "Surgeons", "Rooms", "Days", "Duration(us)", "FeasiblePatients", "Verified"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			engineTypes[result.Engine],
			fmt.Sprintf("%d", result.Workers),
			fmt.Sprintf("%d", result.Scenario.Patients),
			fmt.Sprintf("%d", result.Scenario.Surgeons),
			fmt.Sprintf("%d", result.Scenario.Rooms),
			fmt.Sprintf("%d", result.Scenario.Days),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%d", result.FeasiblePatients),
			fmt.Sprintf("%v", result.Verified),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func parseScenarios(value string) ([]instance.Dimensions, error) {
	scenarios := make([]instance.Dimensions, 0)
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		scenario, err := parseScenario(part)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenario was given")
	}
	return scenarios, nil
}

// parseScenario reads "patients x surgeons x rooms x days", e.g. "224x30x5x10"
func parseScenario(value string) (instance.Dimensions, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(value)), "x")
	if len(parts) != 4 {
		return instance.Dimensions{}, fmt.Errorf("scenario %q must have 4 dimensions", value)
	}

	dimensions := make([]int, len(parts))
	for i, part := range parts {
		dimension, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || dimension <= 0 {
			return instance.Dimensions{}, fmt.Errorf("scenario %q has an invalid dimension %q", value, part)
		}
		dimensions[i] = dimension
	}

	return instance.Dimensions{
		Patients: dimensions[0],
		Surgeons: dimensions[1],
		Rooms:    dimensions[2],
		Days:     dimensions[3],
	}, nil
}

func formatScenario(scenario instance.Dimensions) string {
	return strings.Join(lo.Map(
		[]int{scenario.Patients, scenario.Surgeons, scenario.Rooms, scenario.Days},
		func(dimension int, _ int) string { return strconv.Itoa(dimension) },
	), "x")
}
