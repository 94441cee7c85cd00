package domain

import "testing"

func TestNewProjectRejectsBlankText(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantField   string
	}{
		{name: "valid", title: "RAG System", description: "Retrieval pipeline"},
		{name: "empty title", title: "", description: "desc", wantField: "title"},
		{name: "whitespace title", title: " \t\n ", description: "desc", wantField: "title"},
		{name: "empty description", title: "RAG", description: "", wantField: "description"},
		{name: "whitespace description", title: "RAG", description: "   ", wantField: "description"},
		{name: "padded but valid", title: "  RAG  ", description: "  desc  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProject(Project{Title: tt.title, Description: tt.description})
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("NewProject() unexpected error: %v", err)
				}
				return
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("NewProject() error = %v, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestNewProjectCopiesTechnologies(t *testing.T) {
	techs := []string{"Go", "Redis"}
	p, err := NewProject(Project{Title: "t", Description: "d", Technologies: techs})
	if err != nil {
		t.Fatalf("NewProject() unexpected error: %v", err)
	}
	techs[0] = "mutated"
	if p.Technologies[0] != "Go" {
		t.Errorf("project shares technologies with caller: got %q", p.Technologies[0])
	}
}
