package dto

import analysisDomain "github.com/septer/septer/internal/analysis/domain"

// AnswerResponse is the sectioned model answer.
type AnswerResponse struct {
	Insights       string `json:"insights"`
	Reasoning      string `json:"reasoning"`
	SupportingLogs string `json:"supporting_logs"`
	Fixes          string `json:"fixes"`
}

// MapAnswerToResponse converts a domain answer to its API response.
func MapAnswerToResponse(answer *analysisDomain.Answer) AnswerResponse {
	return AnswerResponse{
		Insights:       answer.Insights,
		Reasoning:      answer.Reasoning,
		SupportingLogs: answer.SupportingLogs,
		Fixes:          answer.Fixes,
	}
}
