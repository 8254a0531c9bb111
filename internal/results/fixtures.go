package results

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/veranemoloko/resumatch/internal/domain"
)

//go:embed fixtures/canned.yaml
var cannedFixtures []byte

// Fixtures is the canned data the result screens show.
type Fixtures struct {
	Analysis domain.AnalysisResult `yaml:"analysis"`
	Jobs     []domain.JobListing   `yaml:"jobs"`
}

// LoadFixtures reads fixtures from path, or the embedded set when path is empty.
func LoadFixtures(path string) (*Fixtures, error) {
	if path == "" {
		return ParseFixtures(bytes.NewReader(cannedFixtures))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer file.Close()

	return ParseFixtures(file)
}

// ParseFixtures decodes a YAML fixture document.
func ParseFixtures(r io.Reader) (*Fixtures, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal fixtures: %w", err)
	}

	return &f, nil
}

// CloneAnalysis returns a deep copy of r.
func CloneAnalysis(r domain.AnalysisResult) domain.AnalysisResult {
	r.Sections.Grammar.Suggestions = slices.Clone(r.Sections.Grammar.Suggestions)
	r.Sections.Keywords.Missing = slices.Clone(r.Sections.Keywords.Missing)
	r.Sections.Keywords.Present = slices.Clone(r.Sections.Keywords.Present)
	r.Sections.Formatting.Issues = slices.Clone(r.Sections.Formatting.Issues)
	r.Sections.Experience.Feedback = slices.Clone(r.Sections.Experience.Feedback)
	r.Recommendations = slices.Clone(r.Recommendations)
	return r
}

// CloneJobs returns a deep copy of jobs.
func CloneJobs(jobs []domain.JobListing) []domain.JobListing {
	out := make([]domain.JobListing, len(jobs))
	for i, job := range jobs {
		job.RequiredSkills = slices.Clone(job.RequiredSkills)
		job.MatchingSkills = slices.Clone(job.MatchingSkills)
		job.MissingSkills = slices.Clone(job.MissingSkills)
		out[i] = job
	}
	return out
}
