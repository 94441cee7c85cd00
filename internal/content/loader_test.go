package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoaderLoadEmbedded(t *testing.T) {
	loader := NewLoader("")
	if loader.Source() != "embedded" {
		t.Errorf("Source() = %q, want embedded", loader.Source())
	}

	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc.PersonalInfo.Name != "Adrian Infantes" {
		t.Errorf("PersonalInfo.Name = %q", doc.PersonalInfo.Name)
	}
	if len(doc.SkillGroups) != 8 {
		t.Errorf("len(SkillGroups) = %d, want 8", len(doc.SkillGroups))
	}
	if len(doc.Projects) != 5 {
		t.Errorf("len(Projects) = %d, want 5", len(doc.Projects))
	}
	if len(doc.FeaturedProjects) != 4 {
		t.Errorf("len(FeaturedProjects) = %d, want 4", len(doc.FeaturedProjects))
	}
	if len(doc.Experience) != 3 {
		t.Errorf("len(Experience) = %d, want 3", len(doc.Experience))
	}
	if len(doc.Certifications) != 6 {
		t.Errorf("len(Certifications) = %d, want 6", len(doc.Certifications))
	}
	if len(doc.Studies) != 3 {
		t.Errorf("len(Studies) = %d, want 3", len(doc.Studies))
	}
}

func TestLoaderLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "portfolio.yaml")

	yamlContent := `---
personal_info:
  name: Jane Doe
  bio: Builds things
  email: jane@example.com
projects:
  - id: p1
    title: Thing
    description: A thing
    category: Tools
    technologies: [Go]
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(path)
	if loader.Source() != path {
		t.Errorf("Source() = %q, want %q", loader.Source(), path)
	}
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.PersonalInfo.Name != "Jane Doe" {
		t.Errorf("PersonalInfo.Name = %q", doc.PersonalInfo.Name)
	}
	if len(doc.Projects) != 1 || doc.Projects[0].Technologies[0] != "Go" {
		t.Errorf("Projects = %+v", doc.Projects)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/portfolio.yaml")
	if _, err := loader.Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty document", input: "", wantErr: "empty"},
		{name: "invalid yaml", input: "personal_info: [unclosed", wantErr: "failed to parse"},
		{name: "unknown field", input: "personal_info:\n  nickname: x\n", wantErr: "nickname"},
		{name: "valid", input: "personal_info:\n  name: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Parse() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
