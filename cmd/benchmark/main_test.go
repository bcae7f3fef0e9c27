package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/limaJavier/tablebuilder/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCatalog(t *testing.T) {
	//** Act
	first := generateCatalog(rand.New(rand.NewPCG(seed, 1)), 10, 3)
	second := generateCatalog(rand.New(rand.NewPCG(seed, 1)), 10, 3)

	//** Assert
	assert.Len(t, first, 10)
	for i, subject := range first {
		assert.Len(t, subject.Groups(), 3)
		assert.Equal(t, second[i].GoString(), subject.GoString())
		for _, group := range subject.Groups() {
			for _, event := range group.Events() {
				for _, period := range event.Periods() {
					assert.True(t, period >= 0 && period < model.DefaultPeriods)
				}
			}
		}
	}
}

func TestMeasureAndCsv(t *testing.T) {
	//** Arrange
	test := TestMetadata{Name: "small", Subjects: 6, Groups: 2, MinSubjects: 1, MaxSubjects: 3, Tables: 5}
	catalog := generateCatalog(rand.New(rand.NewPCG(seed, 2)), test.Subjects, test.Groups)
	params := model.Params{MinSubjects: 1, MaxSubjects: 3, MaxCreditHours: 12, Tables: 5}

	//** Act
	sequential := measure(combinational, 1, test, catalog, params)
	concurrent := measure(parallel, 3, test, catalog, params)
	var buffer bytes.Buffer
	toCsv(&buffer, []BenchmarkResult{sequential, concurrent})

	//** Assert
	assert.Equal(t, sequential.Found, concurrent.Found)
	assert.Equal(t, sequential.Candidates, concurrent.Candidates)
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "combinational,1,small,6,2,1,3,5,"))
	assert.True(t, strings.HasPrefix(lines[2], "parallel,3,small,"))
}
