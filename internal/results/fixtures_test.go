package results

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veranemoloko/resumatch/internal/domain"
)

func TestLoadFixtures_Embedded(t *testing.T) {
	f, err := LoadFixtures("")
	require.NoError(t, err)

	assert.Equal(t, 78, f.Analysis.OverallScore)
	assert.Equal(t, 85, f.Analysis.ATSScore)
	assert.Equal(t, 92, f.Analysis.Sections.Grammar.Score)
	assert.Equal(t, []string{"React", "TypeScript", "Cloud Computing", "Agile"}, f.Analysis.Sections.Keywords.Missing)
	assert.Len(t, f.Analysis.Sections.Experience.Feedback, 3)
	assert.Len(t, f.Analysis.Recommendations, 4)

	require.Len(t, f.Jobs, 4)
	assert.Equal(t, "Frontend Developer", f.Jobs[0].Title)
	assert.Equal(t, "$90k - $120k", f.Jobs[0].Salary)
	assert.Equal(t, "Remote", f.Jobs[1].Location)
	assert.Equal(t, []string{"Spring Boot", "Microservices", "Docker", "Kubernetes"}, f.Jobs[2].MissingSkills)
}

func TestLoadFixtures_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	doc := "analysis:\n  overall_score: 50\n  ats_score: 40\njobs:\n  - id: x\n    title: Tester\n    match_score: 60\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	f, err := LoadFixtures(path)
	require.NoError(t, err)
	assert.Equal(t, 50, f.Analysis.OverallScore)
	require.Len(t, f.Jobs, 1)
	assert.Equal(t, "Tester", f.Jobs[0].Title)
}

func TestLoadFixtures_Errors(t *testing.T) {
	_, err := LoadFixtures(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseFixtures(strings.NewReader("analysis: [unterminated"))
	assert.Error(t, err)
}

func TestCloneJobs_Independent(t *testing.T) {
	f, err := LoadFixtures("")
	require.NoError(t, err)

	clone := CloneJobs(f.Jobs)
	clone[0].RequiredSkills[0] = "Cobol"
	clone[0].Title = "changed"

	assert.Equal(t, "React", f.Jobs[0].RequiredSkills[0])
	assert.Equal(t, "Frontend Developer", f.Jobs[0].Title)
}

func TestCloneAnalysis_Independent(t *testing.T) {
	f, err := LoadFixtures("")
	require.NoError(t, err)

	clone := CloneAnalysis(f.Analysis)
	clone.Recommendations[0] = "changed"
	clone.Sections.Keywords.Present = append(clone.Sections.Keywords.Present[:0], "Go")

	assert.Equal(t, "Add missing technical skills to match job requirements", f.Analysis.Recommendations[0])
	assert.Equal(t, "JavaScript", f.Analysis.Sections.Keywords.Present[0])
}

func TestSummarize(t *testing.T) {
	f, err := LoadFixtures("")
	require.NoError(t, err)

	s := Summarize(f.Analysis)
	assert.Equal(t, domain.SectionSummary{Score: 92, Band: domain.ScoreBandGood, Count: 2}, s["grammar"])
	assert.Equal(t, domain.SectionSummary{Score: 65, Band: domain.ScoreBandFair, Count: 4}, s["keywords"])
	assert.Equal(t, domain.SectionSummary{Score: 75, Band: domain.ScoreBandFair, Count: 3}, s["experience"])
	assert.Equal(t, 85, s["ats"].Score)
	assert.Equal(t, domain.ScoreBandGood, s["ats"].Band)
}

func TestMatchJobsAndStats(t *testing.T) {
	f, err := LoadFixtures("")
	require.NoError(t, err)

	matched := MatchJobs(f.Jobs)
	require.Len(t, matched, 4)
	assert.Equal(t, domain.MatchBandHigh, matched[0].MatchBand)
	assert.Equal(t, domain.MatchBandHigh, matched[1].MatchBand)
	assert.Equal(t, domain.MatchBandMedium, matched[2].MatchBand)
	assert.Equal(t, domain.MatchBandMedium, matched[3].MatchBand)

	assert.Equal(t, domain.JobStats{TotalMatches: 4, HighMatches: 2, Remote: 1}, domain.StatsFor(f.Jobs))
}
