package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"magicbook/internal/content"
)

// PageRenderer draws the bodies of the four book pages
type PageRenderer struct {
	styles *Styles
}

// NewPageRenderer creates a page renderer sharing styles
func NewPageRenderer(styles *Styles) *PageRenderer {
	return &PageRenderer{styles: styles}
}

// RenderHome draws the cover: who, what and the headline numbers
func (pr *PageRenderer) RenderHome(p *content.Portfolio, width int) string {
	s := pr.styles
	wrap := lipgloss.NewStyle().Width(max(width, 10))

	lines := []string{
		s.Title.Render(p.Personal.Name),
		s.Subtitle.Render(p.Personal.Title),
		"",
		wrap.Render(p.Personal.Description),
	}
	if p.Personal.Location != "" {
		lines = append(lines, s.Dim.Render("⌖ "+p.Personal.Location))
	}

	stats := []string{}
	for _, stat := range []struct{ value, label string }{
		{p.Stats.Experience, "years experience"},
		{p.Stats.Projects, "projects"},
		{p.Stats.Clients, "happy clients"},
	} {
		if stat.value != "" {
			stats = append(stats, s.Stat.Render(stat.value)+" "+stat.label)
		}
	}
	if len(stats) > 0 {
		lines = append(lines, "", strings.Join(stats, "   "))
	}

	links := []string{}
	for _, link := range []struct{ name, url string }{
		{"GitHub", p.Social.GitHub},
		{"LinkedIn", p.Social.LinkedIn},
		{"Twitter", p.Social.Twitter},
	} {
		if link.url != "" {
			links = append(links, fmt.Sprintf("%s %s", s.Label.Render(link.name), s.Dim.Render(link.url)))
		}
	}
	if len(links) > 0 {
		lines = append(lines, "")
		lines = append(lines, links...)
	}

	lines = append(lines, "", s.Dim.Render("Press → or Space to open the book"))
	return strings.Join(lines, "\n")
}

// RenderAbout draws the biography page. bio is already rendered Markdown.
func (pr *PageRenderer) RenderAbout(p *content.Portfolio, bio string, width int) string {
	s := pr.styles
	wrap := lipgloss.NewStyle().Width(max(width, 10))
	var b strings.Builder

	b.WriteString(s.Title.Render("About me"))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(bio, "\n"))
	b.WriteString("\n")

	if len(p.Skills) > 0 {
		b.WriteString(s.Section.Render("Skills"))
		b.WriteString("\n")
		b.WriteString(wrap.Render(pr.tags(p.Skills)))
		b.WriteString("\n")
	}

	if len(p.Experience) > 0 {
		b.WriteString(s.Section.Render("Experience"))
		b.WriteString("\n")
		for _, exp := range p.Experience {
			b.WriteString(fmt.Sprintf("%s %s %s\n", s.Label.Render(exp.Title), s.Dim.Render("at"), exp.Company))
			b.WriteString(s.Dim.Render(joinNonEmpty(" · ", exp.Period, exp.Location)))
			b.WriteString("\n")
			for _, a := range exp.Achievements {
				b.WriteString(wrap.Render("  • " + a))
				b.WriteString("\n")
			}
		}
	}

	if len(p.Education) > 0 {
		b.WriteString(s.Section.Render("Education"))
		b.WriteString("\n")
		for _, edu := range p.Education {
			b.WriteString(fmt.Sprintf("%s, %s\n", s.Label.Render(edu.Degree), edu.Institution))
			b.WriteString(s.Dim.Render(joinNonEmpty(" · ", edu.Period, edu.Location)))
			b.WriteString("\n")
			if len(edu.RelevantCourses) > 0 {
				b.WriteString(wrap.Render(s.Dim.Render("Courses: ") + strings.Join(edu.RelevantCourses, ", ")))
				b.WriteString("\n")
			}
		}
	}

	if len(p.Certifications) > 0 {
		b.WriteString(s.Section.Render("Certifications"))
		b.WriteString("\n")
		for _, c := range p.Certifications {
			b.WriteString(fmt.Sprintf("  ✓ %s %s\n", c.Name, s.Dim.Render(joinNonEmpty(" · ", c.Issuer, c.Date))))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// ProjectsView is the state of the projects page
type ProjectsView struct {
	Projects   []content.Project // already filtered
	Selected   int
	Category   string
	Categories []string
}

// RenderProjects draws the category filter and the project list
func (pr *PageRenderer) RenderProjects(v ProjectsView, width int) string {
	s := pr.styles
	wrap := lipgloss.NewStyle().Width(max(width-4, 10))
	var b strings.Builder

	b.WriteString(s.Title.Render("Projects"))
	b.WriteString("\n")

	tabs := make([]string, len(v.Categories))
	for i, c := range v.Categories {
		if strings.EqualFold(c, v.Category) {
			tabs[i] = s.NavActive.Render(c)
		} else {
			tabs[i] = s.NavItem.Render(c)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if len(v.Projects) == 0 {
		b.WriteString(s.Dim.Render("No projects in this category"))
		return b.String()
	}

	for i, p := range v.Projects {
		category := lipgloss.NewStyle().Foreground(lipgloss.Color(CategoryColor(p.Category))).Render("[" + p.Category + "]")
		line := fmt.Sprintf("%s %s", p.Title, category)
		if i == v.Selected {
			b.WriteString(s.Highlight.Render("▸ ") + s.SelectionBg.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		if i == v.Selected {
			if p.Subtitle != "" {
				b.WriteString("    " + s.Subtitle.Render(p.Subtitle) + "\n")
			}
			b.WriteString(indent(wrap.Render(p.Description), "    "))
			b.WriteString("\n")
			if len(p.Technologies) > 0 {
				b.WriteString(indent(wrap.Render(pr.tags(p.Technologies)), "    "))
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")
	b.WriteString(s.Dim.Render("↑/↓ select · c category · i details"))
	return b.String()
}

// RenderProjectDetail draws the popup for one project. long is the
// rendered long description.
func (pr *PageRenderer) RenderProjectDetail(p content.Project, long string, width int) string {
	s := pr.styles
	wrap := lipgloss.NewStyle().Width(max(width, 10))
	var b strings.Builder

	b.WriteString(s.Title.Render(p.Title))
	b.WriteString("\n")
	if p.Subtitle != "" {
		b.WriteString(s.Subtitle.Render(p.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString(s.Dim.Render(joinNonEmpty(" · ", p.Category, p.Duration, p.Team, p.Status)))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(long, "\n"))
	b.WriteString("\n")

	for _, section := range []struct {
		name  string
		items []string
	}{
		{"Features", p.Features},
		{"Highlights", p.Highlights},
	} {
		if len(section.items) == 0 {
			continue
		}
		b.WriteString(s.Section.Render(section.name))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(wrap.Render("  • " + item))
			b.WriteString("\n")
		}
	}

	if len(p.Technologies) > 0 {
		b.WriteString(s.Section.Render("Built with"))
		b.WriteString("\n")
		b.WriteString(wrap.Render(pr.tags(p.Technologies)))
		b.WriteString("\n")
	}

	if p.DemoURL != "" || p.GitHubURL != "" {
		b.WriteString("\n")
		if p.DemoURL != "" {
			b.WriteString(s.Label.Render("Demo   ") + p.DemoURL + "\n")
		}
		if p.GitHubURL != "" {
			b.WriteString(s.Label.Render("Source ") + p.GitHubURL + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(s.Dim.Render("esc to close"))
	return b.String()
}

// RenderContact draws the contact details beside the form
func (pr *PageRenderer) RenderContact(p *content.Portfolio, form string, width int) string {
	s := pr.styles

	info := []string{s.Title.Render("Get in touch"), ""}
	for _, row := range []struct{ label, value string }{
		{"Email", p.Personal.Email},
		{"Phone", p.Personal.Phone},
		{"Location", p.Personal.Location},
		{"Website", p.Personal.Website},
	} {
		if row.value != "" {
			info = append(info, s.Label.Render(row.label), s.Dim.Render(row.value), "")
		}
	}
	infoBlock := strings.Join(info, "\n")

	if width < 70 {
		return lipgloss.JoinVertical(lipgloss.Left, infoBlock, form)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(width/3).Render(infoBlock),
		form,
	)
}

func (pr *PageRenderer) tags(items []string) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = pr.styles.Tag.Render(item)
	}
	return strings.Join(out, " ")
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
