package analysis

import (
	"sort"

	"pulsex/domain/survey"
)

// CategoryCount is the number of rows holding one category value
type CategoryCount struct {
	Value    string `json:"value"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

// Overview holds the linked race and education distributions
type Overview struct {
	Race      []CategoryCount `json:"race"`
	Education []CategoryCount `json:"education"`
	Total     int             `json:"total"`
}

// CountBy counts rows in mask per non-missing value of field, in first-appearance
// order. A nil mask counts every row.
func CountBy(table *survey.Table, field string, mask survey.Membership) []CategoryCount {
	column := mustColumn(table, field)

	position := make(map[string]int)
	counts := []CategoryCount{}
	for i := 0; i < column.Len(); i++ {
		if mask != nil && !mask[i] {
			continue
		}
		value := column.At(i)
		if value.IsMissing() {
			continue
		}
		key := value.String()
		idx, ok := position[key]
		if !ok {
			idx = len(counts)
			position[key] = idx
			counts = append(counts, CategoryCount{Value: key})
		}
		counts[idx].Count++
	}
	return counts
}

// BuildOverview computes the race and education bar charts. Selecting races
// restricts the education counts and selecting educations restricts the race
// counts, so each chart reflects the other's selection.
func BuildOverview(table *survey.Table, races, educations, educationOrder []string) *Overview {
	raceCounts := CountBy(table, survey.FieldRace, ComputeMembership(table, nil, nil, educations, nil))
	sortByCountDesc(raceCounts)
	markSelected(raceCounts, races)

	educationCounts := CountBy(table, survey.FieldEducation, ComputeMembership(table, nil, races, nil, nil))
	sortByOrder(educationCounts, educationOrder)
	markSelected(educationCounts, educations)

	return &Overview{
		Race:      raceCounts,
		Education: educationCounts,
		Total:     table.Len(),
	}
}

func sortByCountDesc(counts []CategoryCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}

// sortByOrder places values named in order first, in that order; unknown
// values follow in their existing order
func sortByOrder(counts []CategoryCount, order []string) {
	rank := make(map[string]int, len(order))
	for i, v := range order {
		rank[v] = i
	}
	sort.SliceStable(counts, func(i, j int) bool {
		ri, okI := rank[counts[i].Value]
		rj, okJ := rank[counts[j].Value]
		switch {
		case okI && okJ:
			return ri < rj
		case okI:
			return true
		default:
			return false
		}
	})
}

func markSelected(counts []CategoryCount, selected []string) {
	if len(selected) == 0 {
		return
	}
	set := make(map[string]bool, len(selected))
	for _, v := range selected {
		set[v] = true
	}
	for i := range counts {
		counts[i].Selected = set[counts[i].Value]
	}
}
