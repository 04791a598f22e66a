// Package met estimates exercise calories from the Compendium of Physical
// Activities. The MET table ships embedded as CSV so the data is easy to
// update by replacing the file.
package met

import (
	"embed"
	"encoding/csv"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
)

//go:embed assets/met.csv
var assetsFS embed.FS

// Activity is one row of the MET table.
type Activity struct {
	Code        string
	Category    string
	Description string
	MET         float64
}

var (
	loadOnce   sync.Once
	activities []Activity
	loadErr    error
)

// Activities returns the embedded MET table.
func Activities() ([]Activity, error) {
	loadOnce.Do(func() {
		activities, loadErr = parseCSV()
	})
	return activities, loadErr
}

func parseCSV() ([]Activity, error) {
	f, err := assetsFS.Open("assets/met.csv")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded MET table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse MET table: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("MET table is empty")
	}

	var result []Activity
	for _, row := range records[1:] {
		if len(row) < 4 {
			continue
		}
		met, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			continue
		}
		description := strings.TrimSpace(row[2])
		if description == "" {
			continue
		}
		result = append(result, Activity{
			Code:        strings.TrimSpace(row[0]),
			Category:    strings.TrimSpace(row[1]),
			Description: description,
			MET:         met,
		})
	}
	return result, nil
}

// Search finds activities matching a query, substring matches first with
// a fuzzy fallback, capped at limit.
func Search(query string, limit int) ([]Activity, error) {
	all, err := Activities()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil, nil
	}

	var substring []Activity
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Description), query) ||
			strings.Contains(strings.ToLower(a.Category), query) {
			substring = append(substring, a)
		}
	}
	if len(substring) > 0 {
		// Descriptions that start with the query rank first
		sort.SliceStable(substring, func(i, j int) bool {
			iPrefix := strings.HasPrefix(strings.ToLower(substring[i].Description), query)
			jPrefix := strings.HasPrefix(strings.ToLower(substring[j].Description), query)
			if iPrefix != jPrefix {
				return iPrefix
			}
			return substring[i].Description < substring[j].Description
		})
		if len(substring) > limit {
			substring = substring[:limit]
		}
		return substring, nil
	}

	names := make([]string, len(all))
	for i, a := range all {
		names[i] = a.Description + " " + a.Category
	}
	matches := fuzzy.Find(query, names)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	result := make([]Activity, 0, len(matches))
	for _, m := range matches {
		result = append(result, all[m.Index])
	}
	return result, nil
}

// Estimate returns the calories burned for an activity, using the standard
// kcal = MET x weight(kg) x hours formula, rounded to the nearest calorie.
func Estimate(metValue, weightKG float64, minutes float64) (int, error) {
	if metValue <= 0 {
		return 0, fmt.Errorf("MET value must be positive, got %g", metValue)
	}
	if weightKG <= 0 {
		return 0, fmt.Errorf("weight must be positive, got %g", weightKG)
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %g", minutes)
	}
	return int(math.Round(metValue * weightKG * minutes / 60)), nil
}
