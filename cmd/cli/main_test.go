package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/limaJavier/tablebuilder/pkg/model"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func newTestTable(t *testing.T) *model.Grid {
	event := lo.Must(model.NewEvent("Lecture", model.Monday, 2, 1))
	subject := lo.Must(model.NewSubject("MathA", 3, lo.Must(model.NewGroup("G1", event))))
	table := model.NewDefaultGrid()
	assert.Nil(t, table.Place(subject, "G1"))
	return table
}

func TestToOutput(t *testing.T) {
	//** Act
	output := toOutput(newTestTable(t))

	//** Assert
	assert.Equal(t, []string{"MathA"}, output.Subjects)
	assert.Equal(t, 3, output.CreditHours)
	assert.Equal(t, []cellOutput{
		{Day: "Mon", Period: 1, Subject: "MathA", Group: "G1", Event: "Lecture"},
		{Day: "Mon", Period: 2, Subject: "MathA", Group: "G1", Event: "Lecture"},
	}, output.Cells)
}

func TestWrite(t *testing.T) {
	directory := t.TempDir()
	tables := []*model.Grid{newTestTable(t)}

	t.Run("json", func(t *testing.T) {
		outPath := filepath.Join(directory, "tables.json")
		assert.Nil(t, write(tables, "json", outPath))

		bytes, err := os.ReadFile(outPath)
		assert.Nil(t, err)
		var decoded []tableOutput
		assert.Nil(t, json.Unmarshal(bytes, &decoded))
		assert.Equal(t, []tableOutput{toOutput(tables[0])}, decoded)
	})

	t.Run("text", func(t *testing.T) {
		outPath := filepath.Join(directory, "tables.txt")
		assert.Nil(t, write(tables, "text", outPath))

		bytes, err := os.ReadFile(outPath)
		assert.Nil(t, err)
		assert.Equal(t, "Table 1\n"+tables[0].String(), string(bytes))
	})

	t.Run("png", func(t *testing.T) {
		outPath := filepath.Join(directory, "images")
		assert.Nil(t, write(tables, "png", outPath))
		assert.FileExists(t, filepath.Join(outPath, "table_1.png"))
	})
}
