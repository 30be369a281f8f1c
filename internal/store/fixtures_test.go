package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spark-portfolio/spark/internal/types"
)

func TestLoadDataset_EmbeddedDefaults(t *testing.T) {
	ds, err := LoadDataset("")
	require.NoError(t, err)

	profile := ds.Profile()
	assert.Equal(t, "Yaowapa", profile.Name)
	assert.Equal(t, 4, profile.Year)

	assert.Len(t, ds.Courses(), 3)
	assert.Len(t, ds.Assessments(), 2)
}

func TestLoadDataset_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	body := `student:
  username: u0000001
  password: secret
  profile:
    studentId: "0000001"
    name: Test
    surname: Student
    year: 2
courses:
  - id: c1
    courseCode: ITCS125
    courseName: Programming I
    relevancePercent: 80
    grade: A
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	ds, err := LoadDataset(path)
	require.NoError(t, err)

	assert.Equal(t, "Test", ds.Profile().Name)
	require.Len(t, ds.Courses(), 1)
	assert.Equal(t, "ITCS125", ds.Courses()[0].CourseCode)
	assert.Empty(t, ds.Assessments())
}

func TestLoadDataset_RejectsMissingCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("student:\n  username: u1\n"), 0o644))

	_, err := LoadDataset(path)
	assert.Error(t, err)
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDataset_Authenticate(t *testing.T) {
	ds, err := LoadDataset("")
	require.NoError(t, err)

	assert.True(t, ds.Authenticate("u6588087", "P1234567_"))
	assert.False(t, ds.Authenticate("u6588087", "wrong"))
	assert.False(t, ds.Authenticate("someone-else", "P1234567_"))
}

func TestDataset_UpdateProfileOnlyTouchesEditableFields(t *testing.T) {
	ds, err := LoadDataset("")
	require.NoError(t, err)
	before := ds.Profile()

	updated := ds.UpdateProfile(types.UpdateProfileRequest{
		Email:         "new.email@student.mahidol.ac.th",
		ContactNumber: "081-234-5678",
		DateOfBirth:   "2003-05-14",
	})

	assert.Equal(t, "new.email@student.mahidol.ac.th", updated.Email)
	assert.Equal(t, "081-234-5678", updated.ContactNumber)
	assert.Equal(t, "2003-05-14", updated.DateOfBirth)

	// Identity stays read-only.
	assert.Equal(t, before.StudentID, updated.StudentID)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Year, updated.Year)

	// Empty request fields leave existing values alone.
	again := ds.UpdateProfile(types.UpdateProfileRequest{Address: "Bangkok"})
	assert.Equal(t, "new.email@student.mahidol.ac.th", again.Email)
	assert.Equal(t, "Bangkok", again.Address)
}
