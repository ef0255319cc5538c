package memory

import (
	"github.com/ignatzorin/disaster-backend/internal/domain/entity"
	"github.com/ignatzorin/disaster-backend/internal/pkg/apperror"
)

// ReportStore хранит отчёты в памяти процесса.
// Не потокобезопасен: синхронизация лежит на диспетчере.
type ReportStore struct {
	reports map[int64]*entity.Report
	nextID  int64
}

func NewReportStore() *ReportStore {
	return &ReportStore{
		reports: make(map[int64]*entity.Report),
		nextID:  1,
	}
}

// Create выдаёт отчёту следующий ID. ID никогда не переиспользуются,
// в том числе после удаления.
func (s *ReportStore) Create(r *entity.Report) int64 {
	r.ID = s.nextID
	s.nextID++
	s.reports[r.ID] = r
	return r.ID
}

func (s *ReportStore) Get(id int64) (*entity.Report, error) {
	r, ok := s.reports[id]
	if !ok {
		return nil, apperror.New(apperror.ErrCodeNotFound, "отчёт о бедствии не найден")
	}
	return r, nil
}

// Delete удаляет отчёт, повторно проверяя автора и статус.
func (s *ReportStore) Delete(id int64, requesterID string) error {
	r, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := r.CheckDeletableBy(requesterID); err != nil {
		return err
	}
	delete(s.reports, id)
	return nil
}

func (s *ReportStore) All() []*entity.Report {
	out := make([]*entity.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	return out
}

func (s *ReportStore) ByReporter(reporterID string) []*entity.Report {
	var out []*entity.Report
	for _, r := range s.reports {
		if r.IsOwnedBy(reporterID) {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReportStore) Len() int {
	return len(s.reports)
}
