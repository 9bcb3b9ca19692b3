package dto

import "jobfit/internal/domain/job"

type ExtractionResponse struct {
	Job        *job.Record `json:"job"`
	MethodUsed string      `json:"method_used"`
	Cached     bool        `json:"cached"`
}

type FetchAttemptResponse struct {
	Strategy string `json:"strategy"`
	Reason   string `json:"reason"`
}
