package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/logger"
	"skillswap-hub/internal/taxonomy"
	"skillswap-hub/internal/util"

	"go.uber.org/zap"
)

const (
	githubConfidenceCap = 0.9
	day                 = 24 * time.Hour
	estimateMonth       = 30 * day
)

var githubUsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// githubAnalyzer turns a public GitHub account into a heuristic skill reading.
type githubAnalyzer struct {
	client   domain.GitHubClient
	taxonomy *taxonomy.Taxonomy
	now      func() time.Time
}

func newGitHubAnalyzer(client domain.GitHubClient, tax *taxonomy.Taxonomy, now func() time.Time) *githubAnalyzer {
	return &githubAnalyzer{client: client, taxonomy: tax, now: now}
}

// validateViaGitHub fills result from a GitHub analysis. Without a username
// nothing is fetched and the result stays invalid.
func (g *githubAnalyzer) validateViaGitHub(ctx context.Context, input domain.UserInput, result *domain.VerificationResult) {
	if input.GitHubUsername == "" {
		result.Recommend("Provide GitHub username for automated skill verification")
		return
	}

	analysis := g.Analyze(ctx, result.SkillName, input.GitHubUsername)
	result.GitHub = analysis
	if analysis.Error {
		result.IsValid = false
		result.Confidence = 0
		result.Recommend("GitHub analysis failed: " + analysis.ErrorMessage)
		return
	}

	result.IsValid = true
	result.Confidence = analysis.Confidence
	result.SuggestedLevel = analysis.SuggestedLevel
	result.SubSkills = analysis.DetectedSubSkills
	result.Recommend(fmt.Sprintf("GitHub analysis shows %d repositories using %s", analysis.SkillRelevantRepos, result.SkillName))
}

// ValidateGitHubUsername checks the username shape before any request is made.
func ValidateGitHubUsername(username string) (string, error) {
	clean := strings.TrimSpace(username)
	if clean == "" {
		return "", errors.New("Invalid GitHub username provided")
	}
	if !githubUsernamePattern.MatchString(clean) {
		return "", errors.New("GitHub username contains invalid characters")
	}
	return clean, nil
}

// Analyze never fails: every problem is reported as an error analysis.
// skillName is the canonical taxonomy name, or the raw typed name when the
// skill is unknown.
func (g *githubAnalyzer) Analyze(ctx context.Context, skillName, username string) *domain.GitHubAnalysis {
	l := logger.Get()

	clean, err := ValidateGitHubUsername(username)
	if err != nil {
		return domain.NewGitHubErrorAnalysis(err.Error())
	}

	user, err := g.client.GetUser(ctx, clean)
	if err != nil {
		l.Warn("GitHub profile lookup failed", zap.String("username", clean), zap.Error(err))
		return domain.NewGitHubErrorAnalysis(githubErrorMessage(err))
	}
	repos, err := g.client.ListRepositories(ctx, clean)
	if err != nil {
		l.Warn("GitHub repository listing failed", zap.String("username", clean), zap.Error(err))
		return domain.NewGitHubErrorAnalysis(githubErrorMessage(err))
	}

	analysis := g.analyzeRepositories(skillName, user, repos)
	l.Info("GitHub analysis complete",
		zap.String("username", clean),
		zap.String("skill", skillName),
		zap.Int("repositories", analysis.RepositoryCount),
		zap.Int("relevant_repositories", analysis.SkillRelevantRepos),
		zap.Float64("confidence", analysis.Confidence))
	return analysis
}

func githubErrorMessage(err error) string {
	var apiErr *domain.GitHubAPIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "GitHub API request failed: " + err.Error()
}

func (g *githubAnalyzer) analyzeRepositories(skillName string, user *domain.GitHubUser, repos []domain.GitHubRepository) *domain.GitHubAnalysis {
	now := g.now()
	keywords := g.taxonomy.Keywords(skillName)

	analysis := &domain.GitHubAnalysis{
		RepositoryCount:      len(repos),
		RelevantRepositories: []domain.RelevantRepository{},
		Languages:            []string{},
		Topics:               []string{},
		DetectedSubSkills:    []string{},
	}

	seenLanguages := make(map[string]bool)
	seenTopics := make(map[string]bool)
	var mostRecent time.Time
	totalEstimate := 0.0

	for _, repo := range repos {
		if repo.Language != "" && !seenLanguages[repo.Language] {
			seenLanguages[repo.Language] = true
			analysis.Languages = append(analysis.Languages, repo.Language)
		}
		for _, topic := range repo.Topics {
			if !seenTopics[topic] {
				seenTopics[topic] = true
				analysis.Topics = append(analysis.Topics, topic)
			}
		}

		if isRepositoryRelevant(repo, keywords) {
			analysis.RelevantRepositories = append(analysis.RelevantRepositories, domain.RelevantRepository{
				Name:        repo.Name,
				Description: repo.Description,
				Language:    repo.Language,
				Stars:       repo.StargazersCount,
				Forks:       repo.ForksCount,
				UpdatedAt:   repo.UpdatedAt,
				Topics:      nonNilStrings(repo.Topics),
			})
		}

		if repo.UpdatedAt.After(mostRecent) {
			mostRecent = repo.UpdatedAt
		}
		totalEstimate += commitEstimate(repo, now)
	}

	analysis.SkillRelevantRepos = len(analysis.RelevantRepositories)
	analysis.CommitEstimate = int(math.Floor(totalEstimate))
	if len(repos) > 0 {
		days := int(math.Floor(float64(now.Sub(mostRecent)) / float64(day)))
		analysis.RecentActivityDays = &days
	}
	analysis.ProfileData = &domain.GitHubProfileData{
		Username:    user.Login,
		Name:        user.Name,
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		AccountAge:  int(math.Floor(float64(now.Sub(user.CreatedAt)) / float64(day))),
	}

	confidence := githubConfidence(analysis, keywords)
	analysis.SuggestedLevel = githubLevel(confidence)
	if def, ok := g.taxonomy.Lookup(skillName); ok {
		analysis.DetectedSubSkills = detectSubSkills(def.SubSkills, analysis, confidence)
	}
	analysis.Confidence = math.Min(confidence, githubConfidenceCap)
	return analysis
}

// commitEstimate is a per-repository activity guess from stars, forks and
// age in 30-day months, bounded to [1, 50]. It is not a commit count.
func commitEstimate(repo domain.GitHubRepository, now time.Time) float64 {
	ageMonths := 0.0
	if !repo.CreatedAt.IsZero() {
		ageMonths = float64(now.Sub(repo.CreatedAt)) / float64(estimateMonth)
	}
	estimate := float64(repo.StargazersCount*2) + float64(repo.ForksCount*3) + ageMonths*2
	return util.Clamp(estimate, 1, 50)
}

func isRepositoryRelevant(repo domain.GitHubRepository, keywords []string) bool {
	parts := make([]string, 0, 3+len(repo.Topics))
	for _, p := range append([]string{repo.Name, repo.Description, repo.Language}, repo.Topics...) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	searchText := strings.ToLower(strings.Join(parts, " "))
	for _, keyword := range keywords {
		if strings.Contains(searchText, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// githubConfidence sums the additive evidence terms. The result is uncapped;
// the caller applies the cap after deriving level and sub-skills.
func githubConfidence(a *domain.GitHubAnalysis, keywords []string) float64 {
	confidence := 0.0

	if a.RepositoryCount > 0 {
		confidence += 0.1
	}
	if a.RepositoryCount > 5 {
		confidence += 0.15
	}
	if a.RepositoryCount > 15 {
		confidence += 0.1
	}

	if a.SkillRelevantRepos > 0 {
		confidence += 0.2
	}
	if a.SkillRelevantRepos > 3 {
		confidence += 0.15
	}
	if a.SkillRelevantRepos > 7 {
		confidence += 0.1
	}

	if languageMatchesKeywords(a.Languages, keywords) {
		confidence += 0.2
	}

	if a.RecentActivityDays != nil {
		if *a.RecentActivityDays < 30 {
			confidence += 0.1
		}
		if *a.RecentActivityDays < 7 {
			confidence += 0.05
		}
	}

	if a.ProfileData != nil && a.ProfileData.AccountAge > 365 {
		confidence += 0.05
	}
	if a.CommitEstimate > 50 {
		confidence += 0.1
	}
	if a.CommitEstimate > 200 {
		confidence += 0.05
	}
	return confidence
}

func languageMatchesKeywords(languages, keywords []string) bool {
	for _, lang := range languages {
		lowerLang := strings.ToLower(lang)
		for _, keyword := range keywords {
			if strings.Contains(lowerLang, strings.ToLower(keyword)) {
				return true
			}
		}
	}
	return false
}

func githubLevel(confidence float64) domain.Level {
	switch {
	case confidence >= 0.75:
		return domain.LevelExpert
	case confidence >= 0.55:
		return domain.LevelAdvanced
	case confidence >= 0.35:
		return domain.LevelIntermediate
	default:
		return domain.LevelBeginner
	}
}

// detectSubSkills returns the taxonomy sub-skills named by a topic or
// language, then tops the list up with floor(confidence*3) untouched ones.
func detectSubSkills(subSkills []string, a *domain.GitHubAnalysis, confidence float64) []string {
	detected := []string{}
	picked := make(map[string]bool)

	for _, sub := range subSkills {
		lowerSub := strings.ToLower(sub)
		if anyContains(a.Topics, lowerSub) || anyContains(a.Languages, lowerSub) {
			if !picked[sub] {
				detected = append(detected, sub)
			}
			picked[sub] = true
		}
	}

	extra := int(math.Floor(confidence * 3))
	for _, sub := range subSkills {
		if extra <= 0 {
			break
		}
		if picked[sub] {
			continue
		}
		detected = append(detected, sub)
		picked[sub] = true
		extra--
	}
	return detected
}

func anyContains(values []string, lowerNeedle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lowerNeedle) {
			return true
		}
	}
	return false
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string(nil), s...)
}
