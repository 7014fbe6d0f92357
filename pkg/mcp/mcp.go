package mcp

import "github.com/modelcontextprotocol/go-sdk/jsonschema"

const (
	name         = "malaria"
	instructions = `MCP Server 'malaria' estimates how likely malaria is from a set of reported symptoms, using fixed rules. It is an educational aid, NOT a medical diagnosis.

When to use these tools:
- Turning a free-text description of how someone feels into known symptom identifiers
- Getting a likelihood label, severity tier and reasoning for a set of symptoms

Workflow:
1. Use 'list_symptoms' to see the accepted symptom identifiers.
2. Use 'extract_symptoms' to check which symptoms a description maps to, if you only have text.
3. Use 'diagnose' with either 'symptoms' (identifiers from 'list_symptoms') or 'text'.

IMPORTANT: Always relay the disclaimer from 'diagnose' results, and advise consulting a healthcare professional.
`
)

func textSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: description,
	}
}

func symptomsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: "Symptom identifiers from list_symptoms, e.g. fever, chills, joint_pain.",
		Items: &jsonschema.Schema{
			Type: "string",
		},
	}
}
