// Package taxonomy holds the read-only catalogue of known skills.
package taxonomy

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"skillswap-hub/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var embeddedTaxonomy []byte

const maxSuggestions = 10

var keywordSplitter = regexp.MustCompile(`[\s\-_]+`)

type document struct {
	Skills   []domain.SkillDefinition `yaml:"skills"`
	Keywords map[string][]string      `yaml:"keywords"`
}

// Taxonomy is an immutable skill catalogue. Skills keep their document order,
// which partial-name resolution depends on.
type Taxonomy struct {
	skills   []domain.SkillDefinition
	index    map[string]int
	keywords map[string][]string
}

var (
	defaultOnce     sync.Once
	defaultTaxonomy *Taxonomy
	defaultErr      error
)

// Default returns the embedded taxonomy, decoding it on first use.
func Default() (*Taxonomy, error) {
	defaultOnce.Do(func() {
		defaultTaxonomy, defaultErr = Parse(embeddedTaxonomy)
	})
	return defaultTaxonomy, defaultErr
}

// Parse decodes a taxonomy YAML document.
func Parse(data []byte) (*Taxonomy, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode taxonomy: %w", err)
	}
	return New(doc.Skills, doc.Keywords)
}

// New builds a taxonomy from definitions in resolution order.
func New(skills []domain.SkillDefinition, keywords map[string][]string) (*Taxonomy, error) {
	t := &Taxonomy{
		skills:   make([]domain.SkillDefinition, 0, len(skills)),
		index:    make(map[string]int, len(skills)),
		keywords: make(map[string][]string, len(keywords)),
	}
	for _, s := range skills {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("taxonomy entry %d has no name", len(t.skills))
		}
		if _, dup := t.index[s.Name]; dup {
			return nil, fmt.Errorf("duplicate taxonomy entry %q", s.Name)
		}
		if err := validateDefinition(s); err != nil {
			return nil, err
		}
		t.index[s.Name] = len(t.skills)
		t.skills = append(t.skills, s.Clone())
	}
	for name, words := range keywords {
		lowered := make([]string, len(words))
		for i, w := range words {
			lowered[i] = strings.ToLower(w)
		}
		t.keywords[name] = lowered
	}
	return t, nil
}

func validateDefinition(s domain.SkillDefinition) error {
	prevMax := -1
	for _, level := range domain.Levels {
		band, ok := s.Levels[level]
		if !ok {
			continue
		}
		if band.MinScore > band.MaxScore || band.MinScore <= prevMax {
			return fmt.Errorf("skill %q: level %s band [%d,%d] overlaps or is inverted", s.Name, level, band.MinScore, band.MaxScore)
		}
		prevMax = band.MaxScore
	}
	for level, bank := range s.Quiz {
		for i, q := range bank {
			if len(q.Options) < 2 {
				return fmt.Errorf("skill %q: %s question %d needs at least two options", s.Name, level, i+1)
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				return fmt.Errorf("skill %q: %s question %d has an out of range answer", s.Name, level, i+1)
			}
			if q.Points <= 0 {
				return fmt.Errorf("skill %q: %s question %d must be worth points", s.Name, level, i+1)
			}
		}
	}
	return nil
}

// Names returns skill names in taxonomy order.
func (t *Taxonomy) Names() []string {
	names := make([]string, len(t.skills))
	for i, s := range t.skills {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a skill by its exact name.
func (t *Taxonomy) Lookup(name string) (domain.SkillDefinition, bool) {
	i, ok := t.index[name]
	if !ok {
		return domain.SkillDefinition{}, false
	}
	return t.skills[i].Clone(), true
}

// Resolve finds the skill a user most likely meant: exact name, then
// case-insensitive name, then the first entry whose name contains the input
// or is contained in it. The first substring hit wins even when a later entry
// would match better.
func (t *Taxonomy) Resolve(input string) (domain.SkillDefinition, bool) {
	if def, ok := t.Lookup(input); ok {
		return def, true
	}

	lowerInput := strings.ToLower(input)
	for _, s := range t.skills {
		if strings.ToLower(s.Name) == lowerInput {
			return s.Clone(), true
		}
	}

	for _, s := range t.skills {
		lowerKey := strings.ToLower(s.Name)
		if strings.Contains(lowerKey, lowerInput) || strings.Contains(lowerInput, lowerKey) {
			return s.Clone(), true
		}
	}
	return domain.SkillDefinition{}, false
}

// Keywords returns the lowercase repository keywords for a skill name. Names
// without a keyword entry are split on whitespace, hyphens and underscores and
// the full lowercase name is appended.
func (t *Taxonomy) Keywords(skillName string) []string {
	if words, ok := t.keywords[skillName]; ok {
		return append([]string(nil), words...)
	}
	lower := strings.ToLower(skillName)
	words := keywordSplitter.Split(lower, -1)
	return append(words, lower)
}

// Suggest ranks taxonomy entries, related skills and sub-skills that contain
// partial (case-insensitive). At most ten suggestions are returned.
func (t *Taxonomy) Suggest(partial string) []domain.Suggestion {
	lowerPartial := strings.ToLower(partial)
	suggestions := make([]domain.Suggestion, 0)
	seen := make(map[string]bool)

	for _, s := range t.skills {
		if strings.Contains(strings.ToLower(s.Name), lowerPartial) {
			suggestions = append(suggestions, domain.Suggestion{
				Skill:      s.Name,
				Type:       domain.SuggestionExact,
				Confidence: 1.0,
				SubSkills:  append([]string(nil), s.SubSkills...),
			})
			seen[s.Name] = true
		}
	}

	for _, s := range t.skills {
		for _, related := range s.RelatedSkills {
			if seen[related] || !strings.Contains(strings.ToLower(related), lowerPartial) {
				continue
			}
			suggestions = append(suggestions, domain.Suggestion{
				Skill:       related,
				Type:        domain.SuggestionRelated,
				Confidence:  0.8,
				ParentSkill: s.Name,
			})
			seen[related] = true
		}
	}

	for _, s := range t.skills {
		for _, sub := range s.SubSkills {
			if seen[sub] || !strings.Contains(strings.ToLower(sub), lowerPartial) {
				continue
			}
			suggestions = append(suggestions, domain.Suggestion{
				Skill:       sub,
				Type:        domain.SuggestionSubSkill,
				Confidence:  0.7,
				ParentSkill: s.Name,
			})
			seen[sub] = true
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
