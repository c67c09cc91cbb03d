package ai

import "fmt"

// SuggestionType selects one of the fixed writing-assist actions.
type SuggestionType string

const (
	FixGrammar    SuggestionType = "fix_grammar"
	Summarize     SuggestionType = "summarize"
	Expand        SuggestionType = "continue_writing"
	Rephrase      SuggestionType = "rephrase"
	GenerateIdeas SuggestionType = "generate_ideas"
)

// Known reports whether t is one of the fixed suggestion types.
func (t SuggestionType) Known() bool {
	switch t {
	case FixGrammar, Summarize, Expand, Rephrase, GenerateIdeas:
		return true
	}
	return false
}

// BuildPrompt composes the natural-language prompt for a suggestion type and
// the selected editor text. An unknown type falls back to the free-form user
// prompt (with the selection as context) or the bare selection.
func BuildPrompt(t SuggestionType, contextText, userPrompt string) string {
	switch t {
	case FixGrammar:
		return fmt.Sprintf("Fix the grammar and spelling of the following text. Do not change the meaning. Return only the corrected text:\n\n%q", contextText)
	case Summarize:
		return fmt.Sprintf("Summarize the following text in a concise paragraph:\n\n%q", contextText)
	case Expand:
		return fmt.Sprintf("Continue writing based on the following text. Maintain the tone and style:\n\n%q", contextText)
	case Rephrase:
		return fmt.Sprintf("Rephrase the following text to be more professional and clear:\n\n%q", contextText)
	case GenerateIdeas:
		return fmt.Sprintf("Generate 5 creative ideas or bullet points related to this topic:\n\n%q", contextText)
	}
	if userPrompt != "" {
		return fmt.Sprintf("%s\n\nContext:\n%q", userPrompt, contextText)
	}
	return contextText
}
