package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type RawEvent struct {
	Name    string `mapstructure:"name"`
	Day     string `mapstructure:"day"`
	Periods []any  `mapstructure:"periods"`
}

type RawGroup struct {
	Name   string     `mapstructure:"name"`
	Events []RawEvent `mapstructure:"events"`
}

type RawSubject struct {
	Name        string     `mapstructure:"name"`
	CreditHours any        `mapstructure:"creditHours"`
	Groups      []RawGroup `mapstructure:"groups"`
}

type RawCatalog struct {
	Subjects []RawSubject `mapstructure:"subjects"`
}

// Catalog holds every subject available to the builder, in file order
type Catalog struct {
	Subjects []*Subject
}

// Returns the subjects with the given names in the given order. Unknown names are returned separately
func (catalog Catalog) Lookup(names ...string) (subjects []*Subject, missing []string) {
	subjects = make([]*Subject, 0, len(names))
	missing = make([]string, 0)
	for _, name := range names {
		subject, ok := lo.Find(catalog.Subjects, func(subject *Subject) bool { return subject.name == name })
		if !ok {
			missing = append(missing, name)
			continue
		}
		subjects = append(subjects, subject)
	}
	return subjects, missing
}

// Loads a catalog from a JSON or YAML file depending on its extension
func CatalogFromFile(file string) (Catalog, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return CatalogFromYaml(file)
	case ".json":
		return CatalogFromJson(file)
	default:
		return Catalog{}, fmt.Errorf("unsupported catalog format: %q", file)
	}
}

func CatalogFromJson(file string) (Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("cannot read catalog file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Catalog{}, fmt.Errorf("cannot parse catalog file %q: %w", file, err)
	}
	return catalogFromMap(inputJson)
}

func CatalogFromYaml(file string) (Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("cannot read catalog file: %w", err)
	}

	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return Catalog{}, fmt.Errorf("cannot parse catalog file %q: %w", file, err)
	}
	return catalogFromMap(inputYaml)
}

func catalogFromMap(input map[string]any) (Catalog, error) {
	var rawCatalog RawCatalog
	if err := mapstructure.Decode(input, &rawCatalog); err != nil {
		return Catalog{}, fmt.Errorf("cannot decode catalog: %w", err)
	}
	return ProcessRawCatalog(rawCatalog)
}

func ProcessRawCatalog(rawCatalog RawCatalog) (Catalog, error) {
	subjects := make([]*Subject, 0, len(rawCatalog.Subjects))
	for _, rawSubject := range rawCatalog.Subjects {
		//** Manage groups
		groups := make([]Group, 0, len(rawSubject.Groups))
		for _, rawGroup := range rawSubject.Groups {
			//** Manage events
			events := make([]Event, 0, len(rawGroup.Events))
			for _, rawEvent := range rawGroup.Events {
				day, err := ParseDay(rawEvent.Day)
				if err != nil {
					return Catalog{}, fmt.Errorf("subject %q, group %q, event %q: %w", rawSubject.Name, rawGroup.Name, rawEvent.Name, err)
				}

				periods := make([]int, 0, len(rawEvent.Periods))
				for _, rawPeriod := range rawEvent.Periods {
					period, err := periodFromValue(rawPeriod)
					if err != nil {
						return Catalog{}, fmt.Errorf("subject %q, group %q, event %q: %w", rawSubject.Name, rawGroup.Name, rawEvent.Name, err)
					}
					periods = append(periods, period)
				}

				event, err := NewEvent(rawEvent.Name, day, periods...)
				if err != nil {
					return Catalog{}, fmt.Errorf("subject %q, group %q: %w", rawSubject.Name, rawGroup.Name, err)
				}
				events = append(events, event)
			}

			group, err := NewGroup(rawGroup.Name, events...)
			if err != nil {
				return Catalog{}, fmt.Errorf("subject %q: %w", rawSubject.Name, err)
			}
			groups = append(groups, group)
		}

		// Make sure group names are unique within the subject, since placement looks groups up by name
		groupNames := lo.Map(groups, func(group Group, _ int) string { return group.name })
		if duplicates := lo.FindDuplicates(groupNames); len(duplicates) > 0 {
			return Catalog{}, fmt.Errorf("subject %q: %w", rawSubject.Name, newError(InvalidArgument, "duplicate group names %v", duplicates))
		}

		//** Manage subject
		creditHours, err := CreditHoursFromValue(rawSubject.CreditHours)
		if err != nil {
			return Catalog{}, fmt.Errorf("subject %q: %w", rawSubject.Name, err)
		}

		subject, err := NewSubject(rawSubject.Name, creditHours, groups...)
		if err != nil {
			return Catalog{}, err
		}
		subjects = append(subjects, subject)
	}

	// Make sure subject names are unique, since they are used to order and to look subjects up
	subjectNames := lo.Map(subjects, func(subject *Subject, _ int) string { return subject.name })
	if duplicates := lo.FindDuplicates(subjectNames); len(duplicates) > 0 {
		slices.Sort(duplicates)
		return Catalog{}, newError(InvalidArgument, "duplicate subject names %v", duplicates)
	}

	return Catalog{Subjects: subjects}, nil
}

func periodFromValue(value any) (int, error) {
	if v, ok := value.(float64); ok && v != math.Trunc(v) {
		return 0, newError(InvalidArgument, "all periods must be integers: %v", v)
	}
	return intFromValue(value, "period")
}
