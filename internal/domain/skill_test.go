package domain

import (
	"errors"
	"testing"
)

func TestNewSkillProficiencyBounds(t *testing.T) {
	tests := []struct {
		name        string
		proficiency int
		wantErr     bool
	}{
		{name: "lower bound", proficiency: 0},
		{name: "upper bound", proficiency: 100},
		{name: "typical", proficiency: 87},
		{name: "below range", proficiency: -1, wantErr: true},
		{name: "above range", proficiency: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSkill(Skill{Name: "Go", Category: "Backend", Proficiency: tt.proficiency})
			if tt.wantErr {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("NewSkill() error = %v, want *ValidationError", err)
				}
				if ve.Field != "proficiency" {
					t.Errorf("ValidationError.Field = %q, want proficiency", ve.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSkill() unexpected error: %v", err)
			}
			if s.Proficiency != tt.proficiency {
				t.Errorf("Proficiency = %d, want %d", s.Proficiency, tt.proficiency)
			}
		})
	}
}
