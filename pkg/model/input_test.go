package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const jsonCatalog = `{
	"subjects": [
		{
			"name": "MathA",
			"creditHours": 3,
			"groups": [
				{"name": "G1", "events": [{"name": "Lecture", "day": "Mon", "periods": [1, 2]}]},
				{"name": "G2", "events": [{"name": "Lecture", "day": "Tuesday", "periods": [4]}, {"name": "Lab", "day": "Sat", "periods": [0]}]}
			]
		},
		{
			"name": "Seminar",
			"creditHours": 1.5,
			"groups": [{"name": "Online", "events": []}]
		}
	]
}`

const yamlCatalog = `
subjects:
  - name: MathA
    creditHours: 3
    groups:
      - name: G1
        events:
          - { name: Lecture, day: Mon, periods: [1, 2] }
      - name: G2
        events:
          - { name: Lecture, day: Tuesday, periods: [4] }
          - { name: Lab, day: Sat, periods: [0] }
  - name: Seminar
    creditHours: 1.5
    groups:
      - name: Online
        events: []
`

func writeCatalog(t *testing.T, name, content string) string {
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0666); err != nil {
		t.Fatalf("cannot write catalog file: %v", err)
	}
	return file
}

func TestCatalogFromFile(t *testing.T) {
	for _, file := range []string{writeCatalog(t, "catalog.json", jsonCatalog), writeCatalog(t, "catalog.yaml", yamlCatalog)} {
		t.Run(filepath.Ext(file), func(t *testing.T) {
			//** Act
			catalog, err := CatalogFromFile(file)

			//** Assert
			assert.Nil(t, err)
			assert.Len(t, catalog.Subjects, 2)

			mathA := catalog.Subjects[0]
			assert.Equal(t, `Subject("MathA", 3, Group("G1", Event("Lecture", "Mon", 1, 2)), Group("G2", Event("Lecture", "Tue", 4), Event("Lab", "Sat", 0)))`, mathA.GoString())

			seminar := catalog.Subjects[1]
			assert.Equal(t, 1, seminar.CreditHours())
			online, ok := seminar.Group("Online")
			assert.True(t, ok)
			assert.Empty(t, online.Events())

			subjects, missing := catalog.Lookup("Seminar", "Physics", "MathA")
			assert.Equal(t, []*Subject{seminar, mathA}, subjects)
			assert.Equal(t, []string{"Physics"}, missing)
		})
	}
}

func TestCatalogFromFileErrors(t *testing.T) {
	t.Run("Unsupported or missing files", func(t *testing.T) {
		_, err := CatalogFromFile("catalog.txt")
		assert.NotNil(t, err)

		_, err = CatalogFromFile(filepath.Join(t.TempDir(), "missing.json"))
		assert.NotNil(t, err)

		_, err = CatalogFromFile(writeCatalog(t, "broken.json", "{"))
		assert.NotNil(t, err)
	})

	scenarios := map[string]struct {
		content string
		kind    error
	}{
		"invalid day": {
			content: `{"subjects": [{"name": "A", "creditHours": 1, "groups": [{"name": "G1", "events": [{"name": "L", "day": "Fri", "periods": [1]}]}]}]}`,
			kind:    ErrInvalidDay,
		},
		"empty schedule": {
			content: `{"subjects": [{"name": "A", "creditHours": 1, "groups": [{"name": "G1", "events": [{"name": "L", "day": "Mon", "periods": []}]}]}]}`,
			kind:    ErrEmptySchedule,
		},
		"fractional period": {
			content: `{"subjects": [{"name": "A", "creditHours": 1, "groups": [{"name": "G1", "events": [{"name": "L", "day": "Mon", "periods": [1.5]}]}]}]}`,
			kind:    ErrInvalidArgument,
		},
		"huge period": {
			content: `{"subjects": [{"name": "A", "creditHours": 1, "groups": [{"name": "G1", "events": [{"name": "L", "day": "Mon", "periods": [1e20]}]}]}]}`,
			kind:    ErrInvalidArgument,
		},
		"huge credit hours": {
			content: `{"subjects": [{"name": "A", "creditHours": 1e20, "groups": []}]}`,
			kind:    ErrInvalidArgument,
		},
		"textual credit hours": {
			content: `{"subjects": [{"name": "A", "creditHours": "three", "groups": []}]}`,
			kind:    ErrInvalidArgument,
		},
		"missing event name": {
			content: `{"subjects": [{"name": "A", "creditHours": 1, "groups": [{"name": "G1", "events": [{"day": "Mon", "periods": [1]}]}]}]}`,
			kind:    ErrInvalidArgument,
		},
		"duplicate group": {
			content: `{"subjects": [{"name": "A", "creditHours": 1, "groups": [{"name": "G1", "events": []}, {"name": "G1", "events": []}]}]}`,
			kind:    ErrInvalidArgument,
		},
		"duplicate subject": {
			content: `{"subjects": [{"name": "A", "creditHours": 1, "groups": []}, {"name": "A", "creditHours": 2, "groups": []}]}`,
			kind:    ErrInvalidArgument,
		},
	}

	for name, scenario := range scenarios {
		t.Run(name, func(t *testing.T) {
			//** Act
			_, err := CatalogFromFile(writeCatalog(t, "catalog.json", scenario.content))

			//** Assert
			assert.True(t, errors.Is(err, scenario.kind), "unexpected error: %v", err)
		})
	}
}
