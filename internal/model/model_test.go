package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "admin", input: "Admin", want: RoleAdmin},
		{name: "manager", input: "Manager", want: RoleManager},
		{name: "employee", input: "Employee", want: RoleEmployee},
		{name: "lowercase rejected", input: "admin", wantErr: true},
		{name: "unknown rejected", input: "Superuser", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoodState(t *testing.T) {
	for _, mood := range []MoodState{MoodHappy, MoodCalm, MoodNeutral, MoodTired, MoodStressed, MoodAnxious, MoodSad} {
		got, err := ParseMoodState(string(mood))
		assert.NoError(t, err)
		assert.Equal(t, mood, got)
	}

	_, err := ParseMoodState("Euphoric")
	assert.Error(t, err)

	_, err = ParseMoodState("happy")
	assert.Error(t, err)
}

func TestParseDataSource(t *testing.T) {
	for _, source := range []DataSource{SourceManual, SourceSensor, SourceImport} {
		got, err := ParseDataSource(string(source))
		assert.NoError(t, err)
		assert.Equal(t, source, got)
	}

	_, err := ParseDataSource("Webhook")
	assert.Error(t, err)
}
