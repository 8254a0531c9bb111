package domain

import "strings"

// GrammarSection holds language suggestions.
type GrammarSection struct {
	Score       int      `json:"score" yaml:"score"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// KeywordSection lists keywords found in and missing from the resume.
type KeywordSection struct {
	Score   int      `json:"score" yaml:"score"`
	Missing []string `json:"missing" yaml:"missing"`
	Present []string `json:"present" yaml:"present"`
}

// FormattingSection holds layout issues.
type FormattingSection struct {
	Score  int      `json:"score" yaml:"score"`
	Issues []string `json:"issues" yaml:"issues"`
}

// ExperienceSection holds feedback on the work history.
type ExperienceSection struct {
	Score    int      `json:"score" yaml:"score"`
	Feedback []string `json:"feedback" yaml:"feedback"`
}

type AnalysisSections struct {
	Grammar    GrammarSection    `json:"grammar" yaml:"grammar"`
	Keywords   KeywordSection    `json:"keywords" yaml:"keywords"`
	Formatting FormattingSection `json:"formatting" yaml:"formatting"`
	Experience ExperienceSection `json:"experience" yaml:"experience"`
}

// AnalysisResult is the payload of the resume analysis screen.
type AnalysisResult struct {
	OverallScore    int              `json:"overall_score" yaml:"overall_score"`
	ATSScore        int              `json:"ats_score" yaml:"ats_score"`
	Sections        AnalysisSections `json:"sections" yaml:"sections"`
	Recommendations []string         `json:"recommendations" yaml:"recommendations"`
}

// JobListing is one entry of the job matching screen.
type JobListing struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Company        string   `json:"company" yaml:"company"`
	Location       string   `json:"location" yaml:"location"`
	Type           string   `json:"type" yaml:"type"`
	Salary         string   `json:"salary" yaml:"salary"`
	Posted         string   `json:"posted" yaml:"posted"`
	MatchScore     int      `json:"match_score" yaml:"match_score"`
	Description    string   `json:"description" yaml:"description"`
	RequiredSkills []string `json:"required_skills" yaml:"required_skills"`
	MatchingSkills []string `json:"matching_skills" yaml:"matching_skills"`
	MissingSkills  []string `json:"missing_skills" yaml:"missing_skills"`
}

// IsRemote reports whether the listing is a remote position.
func (j JobListing) IsRemote() bool {
	return strings.Contains(j.Location, "Remote")
}

// ScoreBand classifies an analysis score.
type ScoreBand string

const (
	ScoreBandGood ScoreBand = "good"
	ScoreBandFair ScoreBand = "fair"
	ScoreBandPoor ScoreBand = "poor"
)

// BandForScore maps an analysis score to its band.
func BandForScore(score int) ScoreBand {
	switch {
	case score >= 80:
		return ScoreBandGood
	case score >= 60:
		return ScoreBandFair
	default:
		return ScoreBandPoor
	}
}

// MatchBand classifies a job match score.
type MatchBand string

const (
	MatchBandHigh   MatchBand = "high"
	MatchBandMedium MatchBand = "medium"
	MatchBandLow    MatchBand = "low"
)

// HighMatchThreshold is the score from which a listing counts as a high match.
const HighMatchThreshold = 85

// BandForMatch maps a job match score to its band.
func BandForMatch(score int) MatchBand {
	switch {
	case score >= HighMatchThreshold:
		return MatchBandHigh
	case score >= 70:
		return MatchBandMedium
	default:
		return MatchBandLow
	}
}

// JobStats summarizes a set of listings.
type JobStats struct {
	TotalMatches int `json:"total_matches"`
	HighMatches  int `json:"high_matches"`
	Remote       int `json:"remote_positions"`
}

// StatsFor computes the summary shown above the job listings.
func StatsFor(jobs []JobListing) JobStats {
	stats := JobStats{TotalMatches: len(jobs)}
	for _, job := range jobs {
		if job.MatchScore >= HighMatchThreshold {
			stats.HighMatches++
		}
		if job.IsRemote() {
			stats.Remote++
		}
	}
	return stats
}
