package content

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

func loadEmbedded(t *testing.T) domain.Portfolio {
	t.Helper()
	doc, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	p, err := NewMapper().MapPortfolio(doc)
	if err != nil {
		t.Fatalf("MapPortfolio() error = %v", err)
	}
	return p
}

func TestMapPortfolioEmbedded(t *testing.T) {
	p := loadEmbedded(t)

	if len(p.Skills) != 60 {
		t.Errorf("len(Skills) = %d, want 60", len(p.Skills))
	}
	if p.Skills[0].Name != "Python" || p.Skills[0].Proficiency != 98 {
		t.Errorf("first skill = %+v", p.Skills[0])
	}
	if p.Skills[0].Description == "" {
		t.Error("skill should inherit its group description")
	}

	want := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	if !p.Projects[0].CreatedDate.Equal(want) {
		t.Errorf("Projects[0].CreatedDate = %v, want %v", p.Projects[0].CreatedDate, want)
	}

	cur, ok := p.CurrentPosition()
	if !ok || cur.Company != "BBVA AI Factory" {
		t.Errorf("CurrentPosition() = %+v, %v", cur, ok)
	}

	for _, c := range p.Certifications {
		if !c.ExpiryDate.IsZero() {
			t.Errorf("certification %s should not expire", c.ID)
		}
	}

	if p.Education[0].GPA == nil || *p.Education[0].GPA != 8.7 {
		t.Errorf("Education[0].GPA = %v", p.Education[0].GPA)
	}
}

func TestMapPortfolioFeaturedListIsCurated(t *testing.T) {
	p := loadEmbedded(t)

	flagged := 0
	for _, pr := range p.Projects {
		if pr.Featured {
			flagged++
		}
	}
	if flagged != 5 {
		t.Errorf("flagged projects = %d, want 5", flagged)
	}
	if len(p.FeaturedProjects) != 4 {
		t.Fatalf("len(FeaturedProjects) = %d, want 4", len(p.FeaturedProjects))
	}
	for _, pr := range p.FeaturedProjects {
		if pr.ID != "" || pr.Category != "" {
			t.Errorf("curated project %q should carry no id or category", pr.Title)
		}
	}
}

func TestMapPortfolioDeterministic(t *testing.T) {
	a := loadEmbedded(t)
	b := loadEmbedded(t)

	if len(a.Projects) != len(b.Projects) {
		t.Fatal("project counts differ between loads")
	}
	for i := range a.Projects {
		if a.Projects[i].ID != b.Projects[i].ID {
			t.Errorf("Projects[%d] = %q vs %q", i, a.Projects[i].ID, b.Projects[i].ID)
		}
	}
}

func TestMapPortfolioErrors(t *testing.T) {
	base := func() *Document {
		return &Document{
			PersonalInfo: PersonalInfo{Name: "Jane", Bio: "Bio", Email: "jane@example.com"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(d *Document)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(d *Document) { d.PersonalInfo.Name = "" },
			wantErr: "personal_info",
		},
		{
			name: "proficiency out of range",
			mutate: func(d *Document) {
				d.SkillGroups = []SkillGroup{{Category: "Go", Skills: []SkillEntry{{Name: "Go", Proficiency: 101}}}}
			},
			wantErr: "skill_groups[0].skills[0]",
		},
		{
			name: "bad project date",
			mutate: func(d *Document) {
				d.Projects = []Project{{Title: "T", Description: "D", CreatedDate: "01/12/2024"}}
			},
			wantErr: "projects[0].created_date",
		},
		{
			name: "blank project title",
			mutate: func(d *Document) {
				d.Projects = []Project{{Title: "  ", Description: "D"}}
			},
			wantErr: "Project title cannot be empty",
		},
		{
			name: "education without start",
			mutate: func(d *Document) {
				d.Education = []Education{{ID: "e", Institution: "I", Degree: "D", FieldOfStudy: "F"}}
			},
			wantErr: "Start date is required",
		},
		{
			name: "certification without issue date",
			mutate: func(d *Document) {
				d.Certifications = []Certification{{ID: "c", Name: "N", Issuer: "I"}}
			},
			wantErr: "certifications[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := base()
			tt.mutate(doc)
			_, err := NewMapper().MapPortfolio(doc)
			if err == nil {
				t.Fatal("MapPortfolio() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("MapPortfolio() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMapPortfolioKeepsValidationError(t *testing.T) {
	doc := &Document{PersonalInfo: PersonalInfo{Name: "Jane", Bio: "Bio"}}
	_, err := NewMapper().MapPortfolio(doc)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v should wrap *domain.ValidationError", err)
	}
	if verr.Field != "email" {
		t.Errorf("Field = %q, want email", verr.Field)
	}
}
