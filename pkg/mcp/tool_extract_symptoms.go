package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/machakos/malaria/pkg/extract"
)

// ExtractSymptomsParams defines parameters for the extract_symptoms tool.
type ExtractSymptomsParams struct {
	Text string `json:"text"`
}

// MatchInfo names the phrase that detected a symptom.
type MatchInfo struct {
	Symptom string `json:"symptom"`
	Keyword string `json:"keyword"`
}

// ExtractSymptomsResult contains the symptoms detected in text.
type ExtractSymptomsResult struct {
	Message  string      `json:"message"`
	Detected []string    `json:"detected"`
	Matches  []MatchInfo `json:"matches"`
}

func newExtractSymptomsResult(det extract.Detection) ExtractSymptomsResult {
	result := ExtractSymptomsResult{
		Detected: det.Symptoms.Names(),
		Matches:  make([]MatchInfo, 0, len(det.Matches)),
	}
	for _, m := range det.Matches {
		result.Matches = append(result.Matches, MatchInfo{Symptom: m.Symptom.String(), Keyword: m.Keyword})
	}

	if det.Empty() {
		result.Message = extract.NoneDetected
	} else {
		result.Message = fmt.Sprintf("Detected %d symptoms: %s.", len(result.Detected), strings.Join(result.Detected, ", "))
	}

	return result
}

func (s *Server) handleExtractSymptoms(
	_ context.Context,
	_ *mcp.ServerSession,
	params *mcp.CallToolParamsFor[ExtractSymptomsParams],
) (*mcp.CallToolResultFor[ExtractSymptomsResult], error) {
	result := newExtractSymptomsResult(s.extractor.Extract(params.Arguments.Text))

	return &mcp.CallToolResultFor[ExtractSymptomsResult]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: result.Message},
		},
		StructuredContent: result,
	}, nil
}
