package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/disaster-backend/internal/domain/entity"
	"github.com/ignatzorin/disaster-backend/internal/domain/repository"
	"github.com/ignatzorin/disaster-backend/internal/infrastructure/memory"
	"github.com/ignatzorin/disaster-backend/internal/pkg/apperror"
)

var (
	_ repository.VolunteerRegistry = (*memory.VolunteerRegistry)(nil)
	_ repository.ReportStore       = (*memory.ReportStore)(nil)
)

func TestDefaultRoster(t *testing.T) {
	reg, err := memory.DefaultRoster(101, 20)
	require.NoError(t, err)
	require.Equal(t, 20, reg.Len())

	list := reg.List()
	assert.Equal(t, "v101", list[0].ID)
	assert.Equal(t, "Personnel 101", list[0].Name)
	assert.Equal(t, "Search", list[0].Group) // 101 % 8 == 5
	assert.Equal(t, "v120", list[19].ID)
	assert.Equal(t, "Medical", list[19].Group) // 120 % 8 == 0
	for _, v := range list {
		assert.True(t, v.IsAvailable)
		assert.Nil(t, v.AssignedTo)
	}
}

func TestVolunteerRegistry_PreservesInsertionOrder(t *testing.T) {
	reg := memory.NewVolunteerRegistry()
	for _, id := range []string{"z9", "a1", "m5"} {
		v, err := entity.NewVolunteer(id, id, "Rescue")
		require.NoError(t, err)
		require.NoError(t, reg.Add(v))
	}

	var ids []string
	for _, v := range reg.List() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"z9", "a1", "m5"}, ids)
}

func TestVolunteerRegistry_RejectsDuplicate(t *testing.T) {
	reg := memory.NewVolunteerRegistry()
	v, _ := entity.NewVolunteer("v1", "One", "Medical")
	require.NoError(t, reg.Add(v))

	dup, _ := entity.NewVolunteer("v1", "Other", "Comms")
	assert.Error(t, reg.Add(dup))
	assert.Equal(t, 1, reg.Len())
}

func TestVolunteerRegistry_Mutators(t *testing.T) {
	reg, err := memory.DefaultRoster(101, 2)
	require.NoError(t, err)

	reportID := int64(7)
	msg := "go"
	require.NoError(t, reg.SetAvailable("v101", false))
	require.NoError(t, reg.SetAssignment("v101", &reportID))
	require.NoError(t, reg.SetMessage("v101", &msg))

	v, err := reg.Get("v101")
	require.NoError(t, err)
	assert.False(t, v.IsAvailable)
	assert.Equal(t, int64(7), *v.AssignedTo)
	assert.Equal(t, "go", *v.AdminMessage)

	assert.True(t, apperror.IsNotFound(reg.SetAvailable("v999", true)))
	_, err = reg.Get("v999")
	assert.True(t, apperror.IsNotFound(err))
}

func newReport(t *testing.T, reporter string) *entity.Report {
	t.Helper()
	r, err := entity.NewReport("Fire", 5, false, 1, "", "", reporter, "Unknown Location", "p.jpg", time.Now())
	require.NoError(t, err)
	return r
}

func TestReportStore_IDsAreMonotonicAndNeverReused(t *testing.T) {
	store := memory.NewReportStore()

	id1 := store.Create(newReport(t, "user1"))
	id2 := store.Create(newReport(t, "user1"))
	require.NoError(t, store.Delete(id2, "user1"))
	id3 := store.Create(newReport(t, "user2"))

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)
	assert.Equal(t, int64(3), id3)
	assert.Equal(t, 2, store.Len())
}

func TestReportStore_DeleteOutcomes(t *testing.T) {
	store := memory.NewReportStore()
	id := store.Create(newReport(t, "user1"))

	assert.True(t, apperror.IsNotFound(store.Delete(999, "user1")))
	assert.True(t, apperror.IsForbidden(store.Delete(id, "user2")))

	r, err := store.Get(id)
	require.NoError(t, err)
	require.NoError(t, r.Attach("v101"))
	assert.True(t, apperror.IsPreconditionFailed(store.Delete(id, "user1")))

	_, err = store.Get(id)
	assert.NoError(t, err)
}

func TestReportStore_ByReporter(t *testing.T) {
	store := memory.NewReportStore()
	store.Create(newReport(t, "user1"))
	store.Create(newReport(t, "user2"))
	store.Create(newReport(t, "user1"))

	assert.Len(t, store.ByReporter("user1"), 2)
	assert.Len(t, store.ByReporter("user3"), 0)
	assert.Len(t, store.All(), 3)
}
