package domain

const (
	MinProficiency = 0
	MaxProficiency = 100
)

// Skill is a named competence with a proficiency score in [0,100].
type Skill struct {
	Name        string
	Category    string
	Proficiency int
	Icon        string
	Description string
}

// NewSkill rejects proficiencies outside the inclusive [0,100] range.
func NewSkill(s Skill) (Skill, error) {
	if s.Proficiency < MinProficiency || s.Proficiency > MaxProficiency {
		return Skill{}, invalid("proficiency", "Proficiency must be between %d and %d", MinProficiency, MaxProficiency)
	}
	return s, nil
}

func (s Skill) Clone() Skill { return s }
