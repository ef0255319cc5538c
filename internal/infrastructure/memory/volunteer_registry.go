package memory

import (
	"fmt"

	"github.com/ignatzorin/disaster-backend/internal/domain/entity"
	"github.com/ignatzorin/disaster-backend/internal/pkg/apperror"
)

// DefaultGroups - специализации, по кругу раздаваемые стартовому составу.
var DefaultGroups = []string{"Medical", "NDRF", "Rescue", "Logistics", "Firefighting", "Search", "Transport", "Comms"}

// VolunteerRegistry хранит волонтёров в порядке регистрации.
// Не потокобезопасен: синхронизация лежит на диспетчере.
type VolunteerRegistry struct {
	order []*entity.Volunteer
	index map[string]*entity.Volunteer
}

func NewVolunteerRegistry() *VolunteerRegistry {
	return &VolunteerRegistry{index: make(map[string]*entity.Volunteer)}
}

// DefaultRoster собирает стартовый состав v<first>..v<first+size-1>.
func DefaultRoster(first, size int) (*VolunteerRegistry, error) {
	reg := NewVolunteerRegistry()
	for i := first; i < first+size; i++ {
		v, err := entity.NewVolunteer(fmt.Sprintf("v%d", i), fmt.Sprintf("Personnel %d", i), DefaultGroups[i%len(DefaultGroups)])
		if err != nil {
			return nil, err
		}
		if err := reg.Add(v); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (r *VolunteerRegistry) Add(v *entity.Volunteer) error {
	if _, exists := r.index[v.ID]; exists {
		return apperror.Newf(apperror.ErrCodePreconditionFailed, "волонтёр %s уже зарегистрирован", v.ID)
	}
	r.order = append(r.order, v)
	r.index[v.ID] = v
	return nil
}

func (r *VolunteerRegistry) Get(id string) (*entity.Volunteer, error) {
	v, ok := r.index[id]
	if !ok {
		return nil, apperror.New(apperror.ErrCodeNotFound, "волонтёр не найден")
	}
	return v, nil
}

// List возвращает волонтёров строго в порядке регистрации.
func (r *VolunteerRegistry) List() []*entity.Volunteer {
	out := make([]*entity.Volunteer, len(r.order))
	copy(out, r.order)
	return out
}

func (r *VolunteerRegistry) SetAvailable(id string, available bool) error {
	v, err := r.Get(id)
	if err != nil {
		return err
	}
	v.IsAvailable = available
	return nil
}

func (r *VolunteerRegistry) SetAssignment(id string, reportID *int64) error {
	v, err := r.Get(id)
	if err != nil {
		return err
	}
	v.AssignedTo = reportID
	return nil
}

func (r *VolunteerRegistry) SetMessage(id string, message *string) error {
	v, err := r.Get(id)
	if err != nil {
		return err
	}
	v.AdminMessage = message
	return nil
}

func (r *VolunteerRegistry) Len() int {
	return len(r.order)
}
