package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/machakos/malaria/pkg/diagnosis"
	"github.com/machakos/malaria/pkg/symptom"
)

// DiagnoseParams defines parameters for the diagnose tool.
type DiagnoseParams struct {
	Text     string   `json:"text,omitempty"`
	Symptoms []string `json:"symptoms,omitempty"`
}

// DiagnoseResult contains the outcome of a diagnosis.
type DiagnoseResult struct {
	Label        string   `json:"label"`
	Tier         string   `json:"tier"`
	Rule         string   `json:"rule"`
	Disclaimer   string   `json:"disclaimer"`
	Explanations []string `json:"explanations"`
	Detected     []string `json:"detected"`
}

func (s *Server) handleDiagnose(
	ctx context.Context,
	_ *mcp.ServerSession,
	params *mcp.CallToolParamsFor[DiagnoseParams],
) (*mcp.CallToolResultFor[DiagnoseResult], error) {
	args := params.Arguments

	// No symptoms and no text diagnoses the empty set.
	set, err := symptom.FromNames(args.Symptoms)
	if err != nil {
		return nil, fmt.Errorf("parse symptoms: %w", err)
	}

	if strings.TrimSpace(args.Text) != "" {
		set = set.With(s.extractor.Extract(args.Text).Symptoms.Present()...)
	}

	res := s.engine.Diagnose(set)

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("diagnosis.rule", res.Rule),
		attribute.String("diagnosis.tier", string(res.Tier)),
	)

	result := DiagnoseResult{
		Label:        res.Label,
		Tier:         string(res.Tier),
		Rule:         res.Rule,
		Explanations: res.Explanations,
		Detected:     set.Names(),
		Disclaimer:   diagnosis.Disclaimer,
	}

	return &mcp.CallToolResultFor[DiagnoseResult]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("%s (%s).", res.Label, res.Tier)},
		},
		StructuredContent: result,
	}, nil
}
