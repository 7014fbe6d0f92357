package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/machakos/malaria/pkg/report"
)

// ListSymptomsParams defines parameters for the list_symptoms tool.
type ListSymptomsParams struct{}

// ListSymptomsResult contains every known symptom.
type ListSymptomsResult struct {
	Message  string               `json:"message"`
	Symptoms []report.SymptomInfo `json:"symptoms"`
}

func (s *Server) handleListSymptoms(
	_ context.Context,
	_ *mcp.ServerSession,
	_ *mcp.CallToolParamsFor[ListSymptomsParams],
) (*mcp.CallToolResultFor[ListSymptomsResult], error) {
	result := ListSymptomsResult{
		Symptoms: report.Symptoms(s.extractor.Dictionary()),
	}
	result.Message = fmt.Sprintf("%d known symptoms.", len(result.Symptoms))

	return &mcp.CallToolResultFor[ListSymptomsResult]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: result.Message},
		},
		StructuredContent: result,
	}, nil
}
