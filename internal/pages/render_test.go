package pages

import (
	"strings"
	"testing"
	"time"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/portfolio"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testBuilder() *Builder {
	gpa := 8.7
	p := domain.Portfolio{
		PersonalInfo: domain.PersonalInfo{Name: "Jane Doe", Subtitle: "Engineer", Bio: "Builds <things>", Email: "jane@example.com"},
		Skills: []domain.Skill{
			{Name: "Go", Category: "Backend", Proficiency: 90},
			{Name: "Nmap", Category: "Security", Proficiency: 70},
		},
		Projects: []domain.Project{
			{ID: "p1", Title: "Proxy", Description: "d", Category: "Machine Learning", Technologies: []string{"Go", "Redis"}},
			{ID: "p2", Title: "Scanner", Description: "d", Category: "Cybersecurity"},
		},
		FeaturedProjects: []domain.Project{{Title: "Curated pick", Description: "d"}},
		Experience: []domain.Experience{
			{Company: "Acme", Position: "Lead", Duration: "2024 - Present", StartDate: date(2024, 1, 1)},
		},
		Education: []domain.Education{
			{ID: "e", Institution: "Uni", Degree: "MSc", FieldOfStudy: "AI", StartDate: date(2019, 9, 1), EndDate: date(2021, 6, 30), GPA: &gpa},
		},
		Certifications: []domain.Certification{
			{ID: "c", Name: "Cert", Issuer: "Org", IssueDate: date(2023, 6, 20)},
		},
	}
	svc := portfolio.NewService(p, func() time.Time { return date(2026, 10, 16) })
	return NewBuilder(svc, DefaultSite("", "1.2.3"))
}

func render(t *testing.T, page string, data any) string {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	var sb strings.Builder
	if err := r.Render(&sb, page, data); err != nil {
		t.Fatalf("Render(%s) error = %v", page, err)
	}
	return sb.String()
}

func TestRenderAllPages(t *testing.T) {
	b := testBuilder()

	tests := []struct {
		page string
		data any
		want []string
	}{
		{"home", b.Home(), []string{"Jane Doe", "Curated pick", "Lead at Acme", "Backend", "Builds &lt;things&gt;"}},
		{"about", b.About(), []string{"MSc in AI", "2021", "GPA 8.7", "Cert"}},
		{"projects", b.Projects(""), []string{"Proxy", "Scanner", "Go, Redis", "/projects/Machine%20Learning"}},
		{"experience", b.Experience(), []string{"Currently Lead at Acme"}},
		{"skills", b.Skills(), []string{"Backend", "Security", "90%"}},
		{"contact", b.Contact(), []string{"jane@example.com", `action="/api/contact"`}},
		{"error", b.Error("Page loading error"), []string{"Page loading error"}},
	}

	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			out := render(t, tt.page, tt.data)
			if !strings.Contains(out, "<title>"+DefaultTitle) && !strings.Contains(out, "<title>Adrian Infantes | AI Engineer &amp; Cybersecurity") {
				t.Errorf("page %s missing site title", tt.page)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("page %s missing %q", tt.page, want)
				}
			}
		})
	}
}

func TestProjectsPageFiltersCategory(t *testing.T) {
	b := testBuilder()

	ctx := b.Projects("Cybersecurity")
	if len(ctx.Projects) != 1 || ctx.Projects[0].ID != "p2" {
		t.Fatalf("Projects(Cybersecurity) = %+v", ctx.Projects)
	}
	if ctx.SelectedCategory != "Cybersecurity" {
		t.Errorf("SelectedCategory = %q", ctx.SelectedCategory)
	}

	out := render(t, "projects", b.Projects("Nothing"))
	if !strings.Contains(out, "No projects in this category.") {
		t.Error("empty category should render the empty state")
	}
}

func TestHomeContext(t *testing.T) {
	b := testBuilder()
	home := b.Home()

	if home.CurrentPosition == nil || home.CurrentPosition.Company != "Acme" {
		t.Errorf("CurrentPosition = %+v", home.CurrentPosition)
	}
	if len(home.Navigation) != len(Navigation) {
		t.Errorf("Navigation has %d items, want %d", len(home.Navigation), len(Navigation))
	}
	if home.Site.Version != "1.2.3" {
		t.Errorf("Site.Version = %q", home.Site.Version)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	var sb strings.Builder
	if err := r.Render(&sb, "missing", nil); err == nil {
		t.Error("Render() of unknown page should fail")
	}
	if sb.Len() != 0 {
		t.Error("failed render must not write output")
	}
}
