package scaffold

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pseudomuto/nodeseed/pkg/database"
	"github.com/pseudomuto/nodeseed/pkg/envfile"
)

var projectNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

type (
	// ProjectAnswers holds everything collected from the user for a single
	// scaffold run. Build it with NewAnswers so it is always valid.
	ProjectAnswers struct {
		ProjectName string
		DBName      string
		DBUser      string
		DBPassword  string
		DBHost      string
		DBPort      int
	}

	// ValidationError is returned when an answer is rejected. Interactive
	// callers re-prompt for Field; non-interactive callers fail.
	ValidationError struct {
		Field  string
		Value  string
		Reason string
	}
)

// NewAnswers validates the given answers and fills in derived defaults. An
// empty DBName defaults to DefaultDBName(ProjectName).
//
// Example:
//
//	answers, err := scaffold.NewAnswers(scaffold.ProjectAnswers{
//		ProjectName: "my-shop",
//		DBUser:      "root",
//		DBHost:      "localhost",
//		DBPort:      3306,
//	})
//	// answers.DBName == "my_shop"
func NewAnswers(a ProjectAnswers) (ProjectAnswers, error) {
	if err := ValidateProjectName(a.ProjectName); err != nil {
		return ProjectAnswers{}, err
	}

	if a.DBName == "" {
		a.DBName = DefaultDBName(a.ProjectName)
	}

	for _, f := range []struct{ name, value string }{
		{"database name", a.DBName},
		{"database user", a.DBUser},
		{"database password", a.DBPassword},
		{"database host", a.DBHost},
	} {
		if err := ValidateEnvValue(f.name, f.value); err != nil {
			return ProjectAnswers{}, err
		}
	}

	if err := a.Connection().Validate(); err != nil {
		return ProjectAnswers{}, &ValidationError{
			Field:  "database",
			Value:  a.Connection().Addr(),
			Reason: err.Error(),
		}
	}

	return a, nil
}

// ValidateEnvValue reports whether v can be written to the generated .env
// file and read back unchanged.
func ValidateEnvValue(field, v string) error {
	if err := envfile.ValidateValue(v); err != nil {
		return &ValidationError{Field: field, Value: v, Reason: err.Error()}
	}

	return nil
}

// ValidateProjectName reports whether name can be used as a project name:
// lowercase letters, digits, hyphens and underscores only.
func ValidateProjectName(name string) error {
	if !projectNamePattern.MatchString(name) {
		return &ValidationError{
			Field:  "project name",
			Value:  name,
			Reason: "use lowercase letters, numbers, hyphens, and underscores only",
		}
	}

	return nil
}

// DefaultDBName derives a database name from a project name by replacing
// hyphens with underscores.
func DefaultDBName(projectName string) string {
	return strings.ReplaceAll(projectName, "-", "_")
}

// Connection returns the scoped connection settings described by the answers.
func (a ProjectAnswers) Connection() database.ConnectionConfig {
	return database.ConnectionConfig{
		Host:     a.DBHost,
		Port:     a.DBPort,
		User:     a.DBUser,
		Password: a.DBPassword,
		Database: a.DBName,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
