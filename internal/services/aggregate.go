package services

import (
	"sort"

	"internal-tools-api/internal/models"

	"github.com/shopspring/decimal"
)

type toolGroup struct {
	Key   string
	Tools []models.Tool
}

// groupBy partitions tools by key. Groups come back in ascending byte order
// of the key and keep the input order of their tools.
func groupBy(tools []models.Tool, key func(*models.Tool) string) []toolGroup {
	index := make(map[string]int)
	groups := make([]toolGroup, 0)

	for i := range tools {
		k := key(&tools[i])
		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, toolGroup{Key: k})
		}
		groups[pos].Tools = append(groups[pos].Tools, tools[i])
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	return groups
}

func sumTotalCost(tools []models.Tool) decimal.Decimal {
	total := decimal.Zero
	for i := range tools {
		total = total.Add(tools[i].TotalCost())
	}
	return total
}

func sumUsers(tools []models.Tool) int {
	users := 0
	for i := range tools {
		users += tools[i].ActiveUsersCount
	}
	return users
}

// firstMaxBy returns the first eligible item holding the largest value.
// Later items only win on a strictly greater value.
func firstMaxBy[T any](items []T, value func(T) decimal.Decimal, eligible func(T) bool) (T, bool) {
	var best T
	found := false
	for _, item := range items {
		if eligible != nil && !eligible(item) {
			continue
		}
		if !found || value(item).GreaterThan(value(best)) {
			best = item
			found = true
		}
	}
	return best, found
}

// firstMinBy is firstMaxBy for the smallest value
func firstMinBy[T any](items []T, value func(T) decimal.Decimal, eligible func(T) bool) (T, bool) {
	var best T
	found := false
	for _, item := range items {
		if eligible != nil && !eligible(item) {
			continue
		}
		if !found || value(item).LessThan(value(best)) {
			best = item
			found = true
		}
	}
	return best, found
}

// distinctSorted returns the unique values in ascending order
func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// sortByTotalCostDesc orders tools by total cost descending, then id ascending
func sortByTotalCostDesc(tools []models.Tool) {
	sort.SliceStable(tools, func(i, j int) bool {
		ti, tj := tools[i].TotalCost(), tools[j].TotalCost()
		if !ti.Equal(tj) {
			return ti.GreaterThan(tj)
		}
		return tools[i].ID < tools[j].ID
	})
}

func stringPtr(s string) *string {
	return &s
}
