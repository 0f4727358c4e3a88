package usecase

import (
	"sort"

	"github.com/piresc/commutemap/internal/pkg/models"
)

// RankRows drops rows with no known time and orders the rest: complete rows
// by total minutes, then partial rows by their single known value. Ties keep
// input order.
func RankRows(rows []models.ComparisonRow) []models.ComparisonRow {
	ranked := make([]models.ComparisonRow, 0, len(rows))
	for _, r := range rows {
		if r.Visible() {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Complete() != b.Complete() {
			return a.Complete()
		}
		return rankKey(a) < rankKey(b)
	})
	return ranked
}

func rankKey(r models.ComparisonRow) float64 {
	switch {
	case r.Complete():
		return r.WorkMinutes + r.HomeMinutes
	case r.HasWork():
		return r.WorkMinutes
	default:
		return r.HomeMinutes
	}
}
