package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, c.Trainers)
	assert.NotEmpty(t, c.Classes)
	assert.Len(t, c.Plans, 3)
	require.NotEmpty(t, c.Schedule)

	first := c.Schedule[0]
	assert.Equal(t, "slot-1", first.ID)
	assert.Equal(t, domain.Monday, first.Day)
	assert.Equal(t, 20, first.Capacity)
	assert.Equal(t, 12, first.Booked)

	class, ok := c.ClassByID(first.ClassID)
	require.True(t, ok)
	assert.Equal(t, "Power Lifting", class.Name)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
trainers: [{id: t1, name: Sam}]
classes: [{id: c1, name: Core, duration: 30, difficulty: Beginner, trainerId: t1}]
schedule:
  - {id: s1, classId: c1, trainerId: t1, day: friday, time: "07:15", capacity: 5, booked: 5}
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Schedule, 1)
	assert.Equal(t, domain.Friday, c.Schedule[0].Day)
	assert.True(t, c.Schedule[0].IsFull())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrReadCatalog)
}

func TestParse_Invalid(t *testing.T) {
	const refs = "trainers: [{id: t1}]\nclasses: [{id: c1, trainerId: t1}]\n"

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "malformed_yaml",
			yaml:    "schedule: [",
			wantErr: ErrDecodeCatalog,
		},
		{
			name:    "booked_exceeds_capacity",
			yaml:    refs + `schedule: [{id: s1, classId: c1, trainerId: t1, day: Monday, time: "07:00", capacity: 5, booked: 6}]`,
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "zero_capacity",
			yaml:    refs + `schedule: [{id: s1, classId: c1, trainerId: t1, day: Monday, time: "07:00", capacity: 0}]`,
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "unknown_day",
			yaml:    refs + `schedule: [{id: s1, classId: c1, trainerId: t1, day: Someday, time: "07:00", capacity: 5}]`,
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "bad_time",
			yaml:    refs + `schedule: [{id: s1, classId: c1, trainerId: t1, day: Monday, time: "7am", capacity: 5}]`,
			wantErr: ErrInvalidCatalog,
		},
		{
			name: "duplicate_id",
			yaml: refs + `schedule:
  - {id: s1, classId: c1, trainerId: t1, day: Monday, time: "07:00", capacity: 5}
  - {id: s1, classId: c1, trainerId: t1, day: Monday, time: "08:00", capacity: 5}`,
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "unknown_class",
			yaml:    refs + `schedule: [{id: s1, classId: c9, trainerId: t1, day: Monday, time: "07:00", capacity: 5}]`,
			wantErr: ErrInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
