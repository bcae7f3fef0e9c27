package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/limaJavier/tablebuilder/pkg/config"
	"github.com/limaJavier/tablebuilder/pkg/model"
	"github.com/limaJavier/tablebuilder/pkg/render"
	"github.com/samber/lo"
)

// Exit codes: every requested table was built, or fewer tables were found
const (
	exitComplete  = 10
	exitShortfall = 20
)

type cellOutput struct {
	Day     string `json:"day"`
	Period  int    `json:"period"`
	Subject string `json:"subject"`
	Group   string `json:"group"`
	Event   string `json:"event"`
}

type tableOutput struct {
	Subjects    []string     `json:"subjects"`
	CreditHours int          `json:"creditHours"`
	Cells       []cellOutput `json:"cells"`
}

func main() {
	// Define arguments
	configPathPtr := flag.String("config", defaultConfigPath(), "Path to the JSON config file holding the default search parameters; it's skipped if it does not exist")
	filePathPtr := flag.String("file", "", "Path to the catalog file (.json, .yaml or .yml)")
	minSubjectsPtr := flag.Int("min-subjects", -1, "Minimum number of subjects per table (overrides the config)")
	maxSubjectsPtr := flag.Int("max-subjects", -1, "Maximum number of subjects per table (overrides the config)")
	minHoursPtr := flag.Int("min-hours", -1, "Minimum total credit hours per table (overrides the config)")
	maxHoursPtr := flag.Int("max-hours", -1, "Maximum total credit hours per table (overrides the config)")
	priorityPtr := flag.String("priority", "", "Comma separated names of the subjects every table must contain")
	tablesPtr := flag.Int("tables", -1, "Number of tables to generate (overrides the config)")
	sizePtr := flag.Int("size", -1, "Number of periods per day (overrides the config)")
	workersPtr := flag.Int("workers", -1, "Number of workers; 1 searches sequentially and 0 uses every CPU (overrides the config)")
	formatPtr := flag.String("format", "", `Output format. Allowed values are "text", "json", "png" and "xlsx" (overrides the config)`)
	outPathPtr := flag.String("out", "", "Path where the output will be written; if empty, text and json are written into the Standard Output. For png it's a directory")
	flag.Parse()

	// Load defaults and apply explicit flags on top
	cfg, err := config.Load(*configPathPtr)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	overrides := map[*int]int{
		&cfg.MinSubjects:    *minSubjectsPtr,
		&cfg.MaxSubjects:    *maxSubjectsPtr,
		&cfg.MinCreditHours: *minHoursPtr,
		&cfg.MaxCreditHours: *maxHoursPtr,
		&cfg.Tables:         *tablesPtr,
		&cfg.GridSize:       *sizePtr,
		&cfg.Workers:        *workersPtr,
	}
	for field, value := range overrides {
		if value >= 0 {
			*field = value
		}
	}
	if *formatPtr != "" {
		cfg.Format = strings.ToLower(*formatPtr)
	}
	outPath := *outPathPtr

	// Validate arguments
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	} else if *filePathPtr == "" {
		log.Fatal("a catalog file must be specified")
	} else if (cfg.Format == "png" || cfg.Format == "xlsx") && outPath == "" {
		log.Fatalf("an output path must be specified for the %v format", cfg.Format)
	}

	// Extract catalog
	catalog, err := model.CatalogFromFile(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot parse catalog file: %v", err)
	}

	priorityNames := lo.Compact(lo.Map(strings.Split(*priorityPtr, ","), func(name string, _ int) string { return strings.TrimSpace(name) }))
	priority, missing := catalog.Lookup(priorityNames...)
	if len(missing) > 0 {
		log.Printf("priority subjects not found in the catalog were ignored: %v", missing)
	}

	// Initialize builder
	var builder model.TableBuilder
	if cfg.Workers == 1 {
		builder = model.NewCombinationalTableBuilder(nil)
	} else {
		builder = model.NewParallelTableBuilder(nil, cfg.Workers)
	}

	// Build tables
	tables, candidates, err := builder.Build(catalog.Subjects, model.Params{
		MinSubjects:    cfg.MinSubjects,
		MaxSubjects:    cfg.MaxSubjects,
		MinCreditHours: cfg.MinCreditHours,
		MaxCreditHours: cfg.MaxCreditHours,
		Priority:       priority,
		Tables:         cfg.Tables,
		GridSize:       cfg.GridSize,
	})
	if err != nil {
		log.Fatalf("an error occurred during table construction: %v", err)
	}

	// Verify tables correctness
	for i, table := range tables {
		if !builder.Verify(table) {
			log.Fatalf("verification failed for table %d", i+1)
		}
	}

	if err := write(tables, cfg.Format, outPath); err != nil {
		log.Fatalf("an error occurred while writing the output: %v", err)
	}

	log.Printf("Candidates: %v", candidates)
	log.Printf("Tables: %v/%v", len(tables), cfg.Tables)
	if len(tables) < cfg.Tables {
		os.Exit(exitShortfall)
	}
	os.Exit(exitComplete)
}

func write(tables []*model.Grid, format, outPath string) error {
	switch format {
	case "png":
		if err := os.MkdirAll(outPath, 0755); err != nil {
			return err
		}
		for i, table := range tables {
			if err := render.SaveImage(table, filepath.Join(outPath, fmt.Sprintf("table_%d.png", i+1))); err != nil {
				return err
			}
		}
		return nil
	case "xlsx":
		return render.SaveWorkbook(tables, outPath)
	}

	var output string
	if format == "json" {
		tablesJson, err := json.MarshalIndent(lo.Map(tables, func(table *model.Grid, _ int) tableOutput { return toOutput(table) }), "", "  ")
		if err != nil {
			return err
		}
		output = string(tablesJson)
	} else {
		output = strings.Join(lo.Map(tables, func(table *model.Grid, i int) string {
			return fmt.Sprintf("Table %d\n%v", i+1, table)
		}), "\n")
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outPath == "" {
		fmt.Println(output)
		return nil
	}
	return os.WriteFile(outPath, []byte(output), 0666)
}

func toOutput(table *model.Grid) tableOutput {
	cells := make([]cellOutput, 0)
	for _, day := range model.Days() {
		for period := range table.Size() {
			if occupant, ok := table.Cell(day, period); ok {
				cells = append(cells, cellOutput{
					Day:     day.Code(),
					Period:  period,
					Subject: occupant.Subject.Name(),
					Group:   occupant.Group,
					Event:   occupant.Event,
				})
			}
		}
	}

	return tableOutput{
		Subjects:    lo.Map(table.Subjects(), func(subject *model.Subject, _ int) string { return subject.Name() }),
		CreditHours: table.CreditHours(),
		Cells:       cells,
	}
}

// Returns the path of config.json next to the executable
func defaultConfigPath() string {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("cannot determine executable path: %v", err)
		return ""
	}
	return path.Join(path.Dir(execPath), "config.json")
}
