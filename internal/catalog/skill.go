package catalog

// Skill is a named proficiency. Level is expected in 0..10 but not checked.
type Skill struct {
	Name  string
	Icon  string // optional icon name
	Level int
}

// WidthPercent is the width of the proficiency bar.
func (s Skill) WidthPercent() float64 {
	return float64(s.Level) / 10 * 100
}

// SkillTab selects which skill list the skills section shows.
type SkillTab string

const (
	Technical SkillTab = "technical"
	Soft      SkillTab = "soft"
)

// ParseSkillTab maps anything but "soft" to Technical.
func ParseSkillTab(s string) SkillTab {
	if SkillTab(s) == Soft {
		return Soft
	}
	return Technical
}
