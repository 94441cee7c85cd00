// Package pages builds the context of each HTML page and renders it.
package pages

// Site is the metadata shared by every page.
type Site struct {
	Title       string
	Subtitle    string
	Description string
	Author      string
	Keywords    string
	Version     string
}

// DefaultTitle is used when no site title is configured.
const DefaultTitle = "Adrian Infantes | AI Engineer & Cybersecurity"

// DefaultSite returns the stock metadata with title applied ("" keeps the
// default).
func DefaultSite(title, version string) Site {
	if title == "" {
		title = DefaultTitle
	}
	return Site{
		Title:       title,
		Subtitle:    "AI Engineer & Cybersecurity Specialist",
		Description: "Senior AI Engineer specialized in developing scalable AI and machine learning solutions for enterprise environments.",
		Author:      "Adrian Infantes",
		Keywords:    "AI Engineer, Machine Learning, Cybersecurity, Python, TensorFlow, Azure, Cloud Computing",
		Version:     version,
	}
}

type NavItem struct {
	Name string
	URL  string
	Icon string
}

// Navigation anchors into the one-page home layout.
var Navigation = []NavItem{
	{Name: "Home", URL: "#home", Icon: "fas fa-home"},
	{Name: "About", URL: "#home", Icon: "fas fa-user"},
	{Name: "Timeline", URL: "#timeline", Icon: "fas fa-clock"},
	{Name: "Studies", URL: "#studies", Icon: "fas fa-graduation-cap"},
	{Name: "Certifications", URL: "#certifications", Icon: "fas fa-certificate"},
	{Name: "Projects", URL: "#projects", Icon: "fas fa-laptop-code"},
	{Name: "Experience", URL: "#experience", Icon: "fas fa-briefcase"},
	{Name: "Skills", URL: "#skills", Icon: "fas fa-code"},
	{Name: "Contact", URL: "#contact", Icon: "fas fa-envelope"},
}

type SocialLink struct {
	Key  string
	Name string
	URL  string
	Icon string
}

var SocialLinks = []SocialLink{
	{Key: "github", Name: "GitHub", URL: "https://github.com/infantesromeroadrian", Icon: "fab fa-github"},
	{Key: "linkedin", Name: "LinkedIn", URL: "https://www.linkedin.com/in/adrianinfantes/", Icon: "fab fa-linkedin"},
	{Key: "email", Name: "Email", URL: "mailto:infantesromeroadrian@gmail.com", Icon: "fas fa-envelope"},
}

// ThemeColors are exposed to templates as CSS custom properties.
var ThemeColors = map[string]string{
	"primary":   "#0066cc",
	"secondary": "#ff6b35",
	"dark":      "#1a1a1a",
	"light":     "#f8f9fa",
	"accent":    "#00d4aa",
	"warning":   "#ffc107",
	"danger":    "#dc3545",
	"success":   "#28a745",
}
