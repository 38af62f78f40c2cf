package content

import (
	"slices"
	"strings"

	"github.com/Zachkp/portfolio/internal/catalog"
)

// Profile identifies the site owner.
type Profile struct {
	FirstName string
	LastName  string
	Role      string
	Email     string
	Portrait  string
}

// FullName is first and last name.
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Stat is a highlighted number with a label.
type Stat struct {
	Icon  string
	Value string
	Label string
}

// Milestone is a timeline entry of the about section.
type Milestone struct {
	Period       string
	Title        string
	Organization string
	Logo         string
	Education    bool
	Highlights   []string
}

// Link is an outbound link shown with an icon.
type Link struct {
	Label string
	Icon  string
	Href  string
	Text  string
}

// External reports whether the link leaves the site.
func (l Link) External() bool {
	return strings.HasPrefix(l.Href, "http")
}

var owner = Profile{
	FirstName: "Zach",
	LastName:  "Kordas-Potter",
	Role:      "Go Developer",
	Email:     "zachkordaspotter@gmail.com",
	Portrait:  "/images/portrait.jpg",
}

// Owner returns the site owner's profile.
func Owner() Profile {
	return owner
}

// HeroStats are shown under the hero call to action.
func HeroStats() []Stat {
	return []Stat{
		{Icon: "terminal", Value: "6+", Label: "Shipped Projects"},
		{Icon: "code", Value: "25K+", Label: "Lines of Go"},
		{Icon: "globe", Value: "3", Label: "Live Services"},
	}
}

// AboutStats are the four counters of the about section.
func AboutStats() []Stat {
	return []Stat{
		{Icon: "award", Value: "3+", Label: "Years Building"},
		{Icon: "briefcase", Value: "6+", Label: "Projects Completed"},
		{Icon: "clock", Value: "1000+", Label: "Hours of Coding"},
		{Icon: "coffee", Value: "500+", Label: "Cups of Coffee"},
	}
}

var timeline = []Milestone{
	{
		Period:       "Aug 2023 - Present",
		Title:        "Presentation Expert",
		Organization: "Target",
		Logo:         "/images/TargetLogo.jpg",
		Highlights: []string{
			"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
			"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
		},
	},
	{
		Period:       "Aug 2016 - Present",
		Title:        "Manager",
		Organization: "Jasons Catered Events",
		Logo:         "/images/jasonsCateringLogo.png",
		Highlights: []string{
			"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
		},
	},
	{
		Period:       "Sept 2019 - May 2023",
		Title:        "Bachelor of Computer Science",
		Organization: "Western Governors University",
		Logo:         "/images/WGU-logo.png",
		Education:    true,
		Highlights: []string{
			"Graduated Magna Cum Laude with 3.8 GPA",
			"Senior project: Machine Learning recommendation system",
		},
	},
	{
		Period:       "July 2022 - Present",
		Title:        "Project Management",
		Organization: "CompTIA",
		Logo:         "/images/comptiaCert.png",
		Education:    true,
		Highlights: []string{
			"Certified in agile project management methodology",
		},
	},
}

// Timeline returns work and education, most recent first.
func Timeline() []Milestone {
	out := make([]Milestone, len(timeline))
	for i, m := range timeline {
		m.Highlights = slices.Clone(m.Highlights)
		out[i] = m
	}
	return out
}

var projects = []catalog.Project{
	{
		ID:          1,
		Title:       "Terminal Mail",
		Description: mailClient,
		Image:       "/images/projects/mail.png",
		Tags:        []string{"Go", "Bubble Tea", "go-imap", "Fuzzy Finder"},
		Categories:  []string{"cli", "email"},
		Link:        "https://example.com/terminal-mail",
		Source:      "https://github.com/Zachkp/terminal-mail",
		Featured:    true,
	},
	{
		ID:          2,
		Title:       "Terminal Music",
		Description: musicPlayer,
		Image:       "/images/projects/music.png",
		Tags:        []string{"Go", "Bubble Tea", "yt-dlp", "mpv"},
		Categories:  []string{"cli", "music"},
		Link:        "https://example.com/terminal-music",
		Source:      "https://github.com/Zachkp/terminal-music",
		Featured:    true,
	},
	{
		ID:          3,
		Title:       "Game Recommender",
		Description: gameRecommender,
		Image:       "/images/projects/games.png",
		Tags:        []string{"Python", "scikit-learn", "TF-IDF", "Plotly"},
		Categories:  []string{"web", "ml"},
		Link:        "https://example.com/game-recommender",
		Featured:    false,
	},
	{
		ID:          4,
		Title:       "Portfolio",
		Description: portfolioSite,
		Image:       "/images/projects/portfolio.png",
		Tags:        []string{"Go", "Gin", "HTMX", "Tailwind CSS"},
		Categories:  []string{"web"},
		Link:        "https://example.com/",
		Source:      "https://github.com/Zachkp/zach-dev",
		Featured:    true,
	},
	{
		ID:          5,
		Title:       "Link Shortener",
		Description: linkShortener,
		Image:       "/images/projects/shortener.png",
		Tags:        []string{"Go", "SQLite", "Gin"},
		Categories:  []string{"web", "tooling"},
		Link:        "https://example.com/shortener",
		Featured:    false,
	},
	{
		ID:          6,
		Title:       "Dotfiles Bootstrap",
		Description: dotfiles,
		Image:       "/images/projects/dotfiles.png",
		Tags:        []string{"Go", "Cobra", "YAML"},
		Categories:  []string{"cli", "tooling"},
		Link:        "https://example.com/dotfiles",
		Source:      "https://github.com/Zachkp/dotfiles",
		Featured:    false,
	},
}

// Projects returns the gallery in display order. The returned records do not
// share slices with the package data.
func Projects() []catalog.Project {
	out := make([]catalog.Project, len(projects))
	for i, p := range projects {
		p.Tags = slices.Clone(p.Tags)
		p.Categories = slices.Clone(p.Categories)
		out[i] = p
	}
	return out
}

// TechnicalSkills lists the technical proficiencies.
func TechnicalSkills() []catalog.Skill {
	return []catalog.Skill{
		{Name: "Go", Icon: "code", Level: 9},
		{Name: "HTTP Services & HTMX", Icon: "globe", Level: 8},
		{Name: "Terminal UIs", Icon: "terminal", Level: 8},
		{Name: "SQL & SQLite", Icon: "database", Level: 7},
		{Name: "Git & Version Control", Icon: "git-branch", Level: 8},
		{Name: "Linux & Cloud Hosting", Icon: "cloud", Level: 7},
	}
}

// SoftSkills lists the non-technical proficiencies.
func SoftSkills() []catalog.Skill {
	return []catalog.Skill{
		{Name: "Problem Solving", Level: 9},
		{Name: "Team Leadership", Level: 8},
		{Name: "Communication", Level: 9},
		{Name: "Project Management", Level: 8},
		{Name: "Time Management", Level: 8},
		{Name: "Critical Thinking", Level: 9},
	}
}

// Skills returns the list for tab.
func Skills(tab catalog.SkillTab) []catalog.Skill {
	if tab == catalog.Soft {
		return SoftSkills()
	}
	return TechnicalSkills()
}

// Technologies are the chips under the skill bars.
func Technologies() []string {
	return []string{"Go", "Gin", "HTMX", "Bubble Tea", "SQLite", "PostgreSQL", "Docker", "Linux", "Git", "Python"}
}

// ContactInfo lists the ways to reach the owner besides the form.
func ContactInfo() []Link {
	return []Link{
		{Label: "Email", Icon: "mail", Href: "mailto:" + owner.Email, Text: owner.Email},
		{Label: "GitHub", Icon: "github", Href: "https://github.com/Zachkp", Text: "github.com/Zachkp"},
	}
}

// SocialLinks are the icon links of the header and footer.
func SocialLinks() []Link {
	return []Link{
		{Label: "GitHub", Icon: "github", Href: "https://github.com/Zachkp"},
		{Label: "Email", Icon: "mail", Href: "mailto:" + owner.Email},
	}
}
