package admin

import (
	"context"
	"fmt"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

// Stats is the complaint report shown on the admin dashboard.
type Stats struct {
	Total    int
	ByStatus []domain.StatusCount
}

// Stats counts complaints per status. Every status is present, in display
// order, with zero for statuses that have no complaints.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	counts, err := s.stats.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats: %w", err)
	}

	byStatus := make(map[domain.ComplaintStatus]int, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}

	out := &Stats{ByStatus: make([]domain.StatusCount, 0, len(domain.AllStatuses))}
	for _, st := range domain.AllStatuses {
		n := byStatus[st]
		out.Total += n
		out.ByStatus = append(out.ByStatus, domain.StatusCount{Status: st, Count: n})
	}
	return out, nil
}
