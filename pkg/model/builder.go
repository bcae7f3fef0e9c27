package model

type Params struct {
	MinSubjects    int
	MaxSubjects    int
	MinCreditHours int
	MaxCreditHours int
	Priority       []*Subject // Subjects every table must contain; those missing from the catalog are ignored
	Tables         int        // Number of tables to generate
	GridSize       int        // Periods per day; zero means DefaultPeriods
}

type TableBuilder interface {
	// Returns up to params.Tables grids built from the catalog, together with the number of candidate subject sets that were attempted.
	// Producing fewer tables than requested is not an error
	Build(
		catalog []*Subject,
		params Params,
	) (tables []*Grid, candidates uint64, err error)

	Verify(
		grid *Grid,
	) bool
}
