package domain

// Step is one of the top-level screens a session can be on.
type Step string

const (
	StepLanding  Step = "landing"
	StepUpload   Step = "upload"
	StepAnalysis Step = "analysis"
	StepJobs     Step = "jobs"
)
