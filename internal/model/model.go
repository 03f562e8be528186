package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type MoodEntry struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	Mood              MoodState  `json:"mood"`
	StressLevel       int16      `json:"stress_level"`
	SleepHours        float64    `json:"sleep_hours"`
	ScreenTimeMinutes int        `json:"screen_time_minutes"`
	Notes             *string    `json:"notes,omitempty"`
	Source            DataSource `json:"source"`
	Confidence        float64    `json:"confidence"`
	CreatedAt         time.Time  `json:"created_at"`
}

// Role is the closed set of user roles, stored and serialized as its
// symbolic name.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// MoodState is the closed set of reportable moods.
type MoodState string

const (
	MoodHappy    MoodState = "Happy"
	MoodCalm     MoodState = "Calm"
	MoodNeutral  MoodState = "Neutral"
	MoodTired    MoodState = "Tired"
	MoodStressed MoodState = "Stressed"
	MoodAnxious  MoodState = "Anxious"
	MoodSad      MoodState = "Sad"
)

func ParseMoodState(s string) (MoodState, error) {
	switch MoodState(s) {
	case MoodHappy, MoodCalm, MoodNeutral, MoodTired, MoodStressed, MoodAnxious, MoodSad:
		return MoodState(s), nil
	}
	return "", fmt.Errorf("unknown mood %q", s)
}

// DataSource describes how a mood entry was captured.
type DataSource string

const (
	SourceManual DataSource = "Manual"
	SourceSensor DataSource = "Sensor"
	SourceImport DataSource = "Import"
)

func ParseDataSource(s string) (DataSource, error) {
	switch DataSource(s) {
	case SourceManual, SourceSensor, SourceImport:
		return DataSource(s), nil
	}
	return "", fmt.Errorf("unknown data source %q", s)
}

// DefaultConfidence is applied when a mood entry omits confidence.
const DefaultConfidence = 0.95
