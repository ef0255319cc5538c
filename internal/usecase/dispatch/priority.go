package dispatch

import (
	"sort"

	"github.com/ignatzorin/disaster-backend/internal/domain/entity"
)

// Rank возвращает новый срез, упорядоченный по приоритету отчётов.
// Порядок полный (последний критерий - ID), поэтому результат детерминирован.
func Rank(reports []*entity.Report) []*entity.Report {
	ranked := make([]*entity.Report, len(reports))
	copy(ranked, reports)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].RanksBefore(ranked[j])
	})
	return ranked
}
