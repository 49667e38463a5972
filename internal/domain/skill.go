package domain

import "strings"

// Level is a proficiency level of a skill.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// Levels lists the proficiency levels from lowest to highest.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// ParseLevel returns the level named by s (case-insensitive).
func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, true
		}
	}
	return "", false
}

// LevelOrDefault returns l if it is a known level, def otherwise.
func LevelOrDefault(l Level, def Level) Level {
	if parsed, ok := ParseLevel(string(l)); ok {
		return parsed
	}
	return def
}

// Method identifies the strategy that produced a VerificationResult.
type Method string

const (
	MethodSelf      Method = "self"
	MethodQuiz      Method = "quiz"
	MethodGitHub    Method = "github"
	MethodPortfolio Method = "portfolio"
	MethodCustom    Method = "custom"
	// MethodPeer is not produced by any strategy yet. It keeps its trust bonus.
	MethodPeer Method = "peer"
)

// MethodInfo is the user-facing description of a selectable verification method.
type MethodInfo struct {
	Method      Method `json:"method"`
	DisplayName string `json:"displayName"`
}

// SelectableMethods are the methods a user can pick, in display order.
var SelectableMethods = []MethodInfo{
	{Method: MethodQuiz, DisplayName: "Interactive Quiz"},
	{Method: MethodGitHub, DisplayName: "GitHub Analysis"},
	{Method: MethodPortfolio, DisplayName: "Portfolio Review"},
	{Method: MethodSelf, DisplayName: "Self Assessment"},
}

// LevelBand is the score range that maps to a level.
type LevelBand struct {
	MinScore    int    `json:"minScore" yaml:"min_score"`
	MaxScore    int    `json:"maxScore" yaml:"max_score"`
	Description string `json:"description" yaml:"description"`
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options"`
	Correct  int      `json:"correctOptionIndex" yaml:"correct"`
	Points   int      `json:"points" yaml:"points"`
}

// SkillDefinition is the taxonomy entry of a known skill.
type SkillDefinition struct {
	Name          string                   `json:"name" yaml:"name"`
	SubSkills     []string                 `json:"subSkills" yaml:"sub_skills"`
	RelatedSkills []string                 `json:"relatedSkills" yaml:"related_skills"`
	Prerequisites []string                 `json:"prerequisites" yaml:"prerequisites"`
	Levels        map[Level]LevelBand      `json:"levels" yaml:"levels"`
	Quiz          map[Level][]QuizQuestion `json:"quiz,omitempty" yaml:"quiz"`
}

// QuizBank returns the questions for level, falling back to the beginner bank.
// The returned level is the bank actually used; an empty result means no quiz exists.
func (d SkillDefinition) QuizBank(level Level) ([]QuizQuestion, Level) {
	if bank := d.Quiz[level]; len(bank) > 0 {
		return bank, level
	}
	if bank := d.Quiz[LevelBeginner]; len(bank) > 0 {
		return bank, LevelBeginner
	}
	return nil, level
}

// LevelForScore maps a 0-100 score to the band containing it.
func (d SkillDefinition) LevelForScore(score int) (Level, bool) {
	for _, l := range Levels {
		band, ok := d.Levels[l]
		if ok && score >= band.MinScore && score <= band.MaxScore {
			return l, true
		}
	}
	return "", false
}

// Clone returns a deep copy so callers cannot mutate shared taxonomy data.
func (d SkillDefinition) Clone() SkillDefinition {
	out := SkillDefinition{
		Name:          d.Name,
		SubSkills:     append([]string(nil), d.SubSkills...),
		RelatedSkills: append([]string(nil), d.RelatedSkills...),
		Prerequisites: append([]string(nil), d.Prerequisites...),
	}
	if d.Levels != nil {
		out.Levels = make(map[Level]LevelBand, len(d.Levels))
		for k, v := range d.Levels {
			out.Levels[k] = v
		}
	}
	if d.Quiz != nil {
		out.Quiz = make(map[Level][]QuizQuestion, len(d.Quiz))
		for k, bank := range d.Quiz {
			copied := make([]QuizQuestion, len(bank))
			for i, q := range bank {
				q.Options = append([]string(nil), q.Options...)
				copied[i] = q
			}
			out.Quiz[k] = copied
		}
	}
	return out
}

// SuggestionType tells how a suggestion matched the partial input.
type SuggestionType string

const (
	SuggestionExact    SuggestionType = "exact"
	SuggestionRelated  SuggestionType = "related"
	SuggestionSubSkill SuggestionType = "subskill"
)

// Suggestion is a ranked candidate for a partially typed skill name.
type Suggestion struct {
	Skill       string         `json:"skill"`
	Type        SuggestionType `json:"type"`
	Confidence  float64        `json:"confidence"`
	ParentSkill string         `json:"parentSkill,omitempty"`
	SubSkills   []string       `json:"subSkills,omitempty"`
}
