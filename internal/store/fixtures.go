package store

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/spark-portfolio/spark/internal/types"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// fixtureFile is the on-disk shape of a fixtures file.
type fixtureFile struct {
	Student struct {
		Username string        `yaml:"username"`
		Password string        `yaml:"password"`
		Profile  types.Profile `yaml:"profile"`
	} `yaml:"student"`
	Courses     []types.Course     `yaml:"courses"`
	Assessments []types.Assessment `yaml:"assessments"`
}

// Dataset holds the mock student, course, and assessment records the server
// serves as plain data. Only the editable profile fields ever change; course
// and assessment records are read-only.
type Dataset struct {
	mu sync.Mutex

	username     string
	passwordHash []byte
	profile      types.Profile

	courses     []types.Course
	assessments []types.Assessment
}

// LoadDataset reads fixtures from path, or from the embedded defaults when
// path is empty. The seeded password is bcrypt-hashed at load; the plaintext
// is not retained.
func LoadDataset(path string) (*Dataset, error) {
	data := defaultFixtures
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
		}
		data = fileData
	}

	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if file.Student.Username == "" || file.Student.Password == "" {
		return nil, fmt.Errorf("fixtures must seed a student username and password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(file.Student.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seeded password: %w", err)
	}

	return &Dataset{
		username:     file.Student.Username,
		passwordHash: hash,
		profile:      file.Student.Profile,
		courses:      file.Courses,
		assessments:  file.Assessments,
	}, nil
}

// Authenticate verifies the seeded credentials.
func (d *Dataset) Authenticate(username, password string) bool {
	if username != d.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(d.passwordHash, []byte(password)) == nil
}

// Profile returns a copy of the current profile record.
func (d *Dataset) Profile() types.Profile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profile
}

// UpdateProfile applies the editable profile fields. Identity fields
// (student id, name, faculty, year) are read-only.
func (d *Dataset) UpdateProfile(req types.UpdateProfileRequest) types.Profile {
	d.mu.Lock()
	defer d.mu.Unlock()

	if req.Email != "" {
		d.profile.Email = req.Email
	}
	if req.ContactNumber != "" {
		d.profile.ContactNumber = req.ContactNumber
	}
	if req.Address != "" {
		d.profile.Address = req.Address
	}
	if req.LinkedinURL != "" {
		d.profile.LinkedinURL = req.LinkedinURL
	}
	if req.GithubURL != "" {
		d.profile.GithubURL = req.GithubURL
	}
	if req.DateOfBirth != "" {
		d.profile.DateOfBirth = req.DateOfBirth
	}
	return d.profile
}

// Courses returns the course records.
func (d *Dataset) Courses() []types.Course {
	return d.courses
}

// Assessments returns the assessment records.
func (d *Dataset) Assessments() []types.Assessment {
	return d.assessments
}
