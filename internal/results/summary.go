package results

import "github.com/veranemoloko/resumatch/internal/domain"

// Summarize builds the score cards shown above the analysis details.
func Summarize(r domain.AnalysisResult) map[string]domain.SectionSummary {
	card := func(score, count int) domain.SectionSummary {
		return domain.SectionSummary{Score: score, Band: domain.BandForScore(score), Count: count}
	}

	s := r.Sections
	return map[string]domain.SectionSummary{
		"overall":    card(r.OverallScore, len(r.Recommendations)),
		"grammar":    card(s.Grammar.Score, len(s.Grammar.Suggestions)),
		"keywords":   card(s.Keywords.Score, len(s.Keywords.Missing)),
		"formatting": card(s.Formatting.Score, len(s.Formatting.Issues)),
		"experience": card(s.Experience.Score, len(s.Experience.Feedback)),
		"ats":        card(r.ATSScore, 0),
	}
}

// MatchJobs attaches a match band to every listing.
func MatchJobs(jobs []domain.JobListing) []domain.JobMatchResponse {
	out := make([]domain.JobMatchResponse, len(jobs))
	for i, job := range jobs {
		out[i] = domain.JobMatchResponse{JobListing: job, MatchBand: domain.BandForMatch(job.MatchScore)}
	}
	return out
}
