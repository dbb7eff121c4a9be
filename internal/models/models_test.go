package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type validator interface {
	Validate() error
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload validator
		wantErr bool
	}{
		{"skill ok", SkillCreate{Category: "Programming", Name: "Go", Proficiency: 90}, false},
		{"skill missing name", SkillCreate{Category: "Programming"}, true},
		{"skill blank category", SkillCreate{Category: "  ", Name: "Go"}, true},
		{"project ok", ProjectCreate{Title: "t", Description: "d"}, false},
		{"project missing description", ProjectCreate{Title: "t"}, true},
		{"education ok", EducationCreate{Degree: "BSc", Institution: "Uni", Period: "2020-2024"}, false},
		{"education missing period", EducationCreate{Degree: "BSc", Institution: "Uni"}, true},
		{"experience ok", ExperienceCreate{Role: "r", Company: "c", Duration: "1y", Description: "d"}, false},
		{"experience missing company", ExperienceCreate{Role: "r", Duration: "1y", Description: "d"}, true},
		{"hackathon ok", HackathonCreate{Name: "n", Description: "d", Role: "r", Year: 2024}, false},
		{"hackathon missing year", HackathonCreate{Name: "n", Description: "d", Role: "r"}, true},
		{"certification ok", CertificationCreate{Name: "n", Issuer: "i", Year: 2023}, false},
		{"certification missing issuer", CertificationCreate{Name: "n", Year: 2023}, true},
		{"contact ok", ContactRequest{Name: "n", Email: "e", Message: "m"}, false},
		{"contact missing message", ContactRequest{Name: "n", Email: "e"}, true},
		{"update with id", SkillUpdate{ID: uuid.New()}, false},
		{"update without id", ProjectUpdate{}, true},
		{"education update without id", EducationUpdate{}, true},
		{"experience update without id", ExperienceUpdate{}, true},
		{"hackathon update without id", HackathonUpdate{}, true},
		{"certification update with id", CertificationUpdate{ID: uuid.New()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRequiredField)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
