// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "CompanyFacts")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// CompanyFactsSchema returns the extraction schema for company pages.
// Extracts mission, products, recent news, and culture signals that ground a
// personalized outreach message.
func CompanyFactsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "CompanyFacts",
		Description: `You are an expert company researcher. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract concrete, citable facts about a company from its website text.
IMPORTANT: Preserve the exact wording from the original text.
Goal: Extract facts an applicant could reference in a short outreach message.
EXCLUDE: Cookie notices, legal disclaimers, navigation text, generic marketing slogans.`,
		Fields: []SchemaField{
			{
				Name:        "mission",
				Type:        "\"string\"",
				Description: "What the company says it does and why - copy verbatim",
				Required:    true,
			},
			{
				Name:        "products",
				Type:        "[\"string\"]",
				Description: "Named products, services, or platforms - copy each verbatim",
				Required:    false,
			},
			{
				Name:        "recent_news",
				Type:        "[\"string\"]",
				Description: "Launches, funding, partnerships, or other dated announcements - copy verbatim",
				Required:    false,
			},
			{
				Name:        "culture_signals",
				Type:        "[\"string\"]",
				Description: "Statements about values, team, or ways of working - copy verbatim",
				Required:    false,
			},
			{
				Name:        "tech_stack",
				Type:        "[\"string\"]",
				Description: "Technologies, languages, or tools the company mentions using",
				Required:    false,
			},
		},
	}
}
