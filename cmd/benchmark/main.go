package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/limaJavier/tablebuilder/pkg/model"
	"github.com/samber/lo"
)

const (
	resultsFile = "benchmark_results.csv"
	seed        = 2025
)

type BuilderType int

const (
	combinational BuilderType = iota
	parallel
)

var builderTypes = map[BuilderType]string{
	combinational: "combinational",
	parallel:      "parallel",
}

type TestMetadata struct {
	Name        string
	Subjects    int
	Groups      int // Groups per subject
	MinSubjects int
	MaxSubjects int
	Tables      int
}

type BenchmarkResult struct {
	Builder    BuilderType
	Workers    int
	Test       TestMetadata
	Duration   int64 // Milliseconds
	Candidates uint64
	Found      int
}

func main() {
	tests := getTests()
	workers := []int{1, 2, 4, 8}
	results := make([]BenchmarkResult, 0, len(tests)*(1+len(workers)))

	for _, test := range tests {
		catalog := generateCatalog(rand.New(rand.NewPCG(seed, uint64(test.Subjects))), test.Subjects, test.Groups)
		params := model.Params{
			MinSubjects:    test.MinSubjects,
			MaxSubjects:    test.MaxSubjects,
			MinCreditHours: 0,
			MaxCreditHours: 4 * test.MaxSubjects,
			Tables:         test.Tables,
		}

		fmt.Printf("Benchmarking test \"%v\" with builder \"%v\"\n", test.Name, builderTypes[combinational])
		results = append(results, measure(combinational, 1, test, catalog, params))

		for _, workerCount := range workers {
			fmt.Printf("Benchmarking test \"%v\" with builder \"%v\" and %v workers\n", test.Name, builderTypes[parallel], workerCount)
			results = append(results, measure(parallel, workerCount, test, catalog, params))
		}
	}

	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	toCsv(file, results)
}

func getTests() []TestMetadata {
	tests := make([]TestMetadata, 0)
	for _, tuple := range lo.Zip2([]int{8, 12, 16, 20}, []int{2, 3, 3, 4}) {
		subjects, groups := tuple.A, tuple.B
		for _, tables := range []int{1, 50, 1000} {
			tests = append(tests, TestMetadata{
				Name:        fmt.Sprintf("%v subjects, %v groups, %v tables", subjects, groups, tables),
				Subjects:    subjects,
				Groups:      groups,
				MinSubjects: 3,
				MaxSubjects: 5,
				Tables:      tables,
			})
		}
	}
	return tests
}

// Builds a random catalog where every group holds one or two events of one to three periods
func generateCatalog(random *rand.Rand, subjects, groups int) []*model.Subject {
	days := model.Days()
	return lo.Map(lo.Range(subjects), func(i int, _ int) *model.Subject {
		subjectGroups := lo.Map(lo.Range(groups), func(j int, _ int) model.Group {
			events := lo.Map(lo.Range(1+random.IntN(2)), func(k int, _ int) model.Event {
				start := random.IntN(model.DefaultPeriods - 2)
				periods := lo.RangeFrom(start, 1+random.IntN(3))
				return lo.Must(model.NewEvent(fmt.Sprintf("Event%d", k), days[random.IntN(len(days))], periods...))
			})
			return lo.Must(model.NewGroup(fmt.Sprintf("G%d", j), events...))
		})
		return lo.Must(model.NewSubject(fmt.Sprintf("Subject%02d", i), 1+random.IntN(4), subjectGroups...))
	})
}

func measure(builderType BuilderType, workers int, test TestMetadata, catalog []*model.Subject, params model.Params) BenchmarkResult {
	logger := log.New(io.Discard, "", 0)
	var builder model.TableBuilder
	if builderType == combinational {
		builder = model.NewCombinationalTableBuilder(logger)
	} else {
		builder = model.NewParallelTableBuilder(logger, workers)
	}

	start := time.Now()
	tables, candidates, err := builder.Build(catalog, params)
	duration := time.Since(start)
	if err != nil {
		log.Fatalf("an error occurred during the execution of test \"%v\" using builder \"%v\": %v", test.Name, builderTypes[builderType], err)
	}

	return BenchmarkResult{
		Builder:    builderType,
		Workers:    workers,
		Test:       test,
		Duration:   duration.Milliseconds(),
		Candidates: candidates,
		Found:      len(tables),
	}
}

func toCsv(writer io.Writer, results []BenchmarkResult) {
	csvWriter := csv.NewWriter(writer)
	defer csvWriter.Flush()

	header := []string{"Builder", "Workers", "Test", "Subjects", "Groups", "Min-Subjects", "Max-Subjects", "Tables", "Duration(ms)", "Candidates", "Found"}
	if err := csvWriter.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			builderTypes[result.Builder],
			fmt.Sprintf("%d", result.Workers),
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Subjects),
			fmt.Sprintf("%d", result.Test.Groups),
			fmt.Sprintf("%d", result.Test.MinSubjects),
			fmt.Sprintf("%d", result.Test.MaxSubjects),
			fmt.Sprintf("%d", result.Test.Tables),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%d", result.Candidates),
			fmt.Sprintf("%d", result.Found),
		}
		if err := csvWriter.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
