package domain

import (
	"context"
	"time"
)

// GitHubUser is the subset of the GitHub user payload the analysis reads.
type GitHubUser struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GitHubRepository is the subset of the GitHub repository payload the analysis reads.
type GitHubRepository struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	Topics          []string  `json:"topics"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GitHubClient fetches public profile data. Implementations return
// *GitHubAPIError for every failure so the message can be shown to users.
type GitHubClient interface {
	GetUser(ctx context.Context, username string) (*GitHubUser, error)
	ListRepositories(ctx context.Context, username string) ([]GitHubRepository, error)
}

// GitHubAPIError is a user-presentable GitHub failure.
type GitHubAPIError struct {
	Status  int
	Message string
	Err     error
}

func (e *GitHubAPIError) Error() string {
	return e.Message
}

func (e *GitHubAPIError) Unwrap() error {
	return e.Err
}

// GitHubProfileData summarises the analysed account.
type GitHubProfileData struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	PublicRepos int    `json:"publicRepos"`
	Followers   int    `json:"followers"`
	AccountAge  int    `json:"accountAge"` // days
}

// RelevantRepository is a repository whose metadata matched the skill keywords.
type RelevantRepository struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Topics      []string  `json:"topics"`
}

// GitHubAnalysis is either an error (Error true, everything else zero) or a
// heuristic reading of a public GitHub account.
type GitHubAnalysis struct {
	Error                bool                 `json:"error"`
	ErrorMessage         string               `json:"errorMessage,omitempty"`
	Confidence           float64              `json:"confidence"`
	SuggestedLevel       Level                `json:"suggestedLevel"`
	DetectedSubSkills    []string             `json:"detectedSubSkills"`
	RepositoryCount      int                  `json:"repositoryCount"`
	SkillRelevantRepos   int                  `json:"skillRelevantRepos"`
	RelevantRepositories []RelevantRepository `json:"relevantRepositories,omitempty"`
	// CommitEstimate is derived from stars, forks and repository age. It is not a commit count.
	CommitEstimate     int                `json:"commitEstimate"`
	RecentActivityDays *int               `json:"recentActivityDays"`
	Languages          []string           `json:"languages"`
	Topics             []string           `json:"topics"`
	ProfileData        *GitHubProfileData `json:"profileData"`
}

// NewGitHubErrorAnalysis returns the error variant.
func NewGitHubErrorAnalysis(message string) *GitHubAnalysis {
	return &GitHubAnalysis{
		Error:             true,
		ErrorMessage:      message,
		SuggestedLevel:    LevelBeginner,
		DetectedSubSkills: []string{},
		Languages:         []string{},
		Topics:            []string{},
	}
}
