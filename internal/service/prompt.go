package service

import (
	"fmt"
	"strings"
)

// buildAnswerPrompt assembles the generation prompt from the retrieved
// knowledge entries and, when present, the previous turn. The wording of
// the instructions changes with relatedness: a related follow-up should
// build on the previous exchange, an unrelated one only stays consistent
// with it.
func buildAnswerPrompt(orgName, orgDescription, contextBlock, question, priorContext string, related bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert assistant answering questions about %s (%s).\n\n", orgName, orgDescription)
	b.WriteString("INSTRUCTIONS:\n")
	b.WriteString("- Use the knowledge entries provided below to answer the question.\n")
	b.WriteString("- You can combine information from multiple entries to provide a complete answer.\n")
	fmt.Fprintf(&b, "- When referring to %s, always use 'we' or 'our' (first person from %s's perspective), never 'they' or 'their'.\n", orgName, orgName)
	b.WriteString("- If the question asks about location/where, use any location information from the entries.\n")
	b.WriteString("- If the question asks 'why', provide relevant context from the entries that explains the reason.\n")
	b.WriteString("- Answer in a natural, helpful way based on the provided knowledge entries.\n")
	fmt.Fprintf(&b, "- If the question cannot be answered from the provided entries at all, then respond with: 'I don't have that information in my knowledge base. Please contact %s directly for this information.'\n\n", orgName)

	if priorContext != "" {
		fmt.Fprintf(&b, "Previous conversation context:\n%s", priorContext)
		if related {
			b.WriteString("The current question is a follow-up or continuation of the previous conversation. Use both the previous context and the knowledge entries below to provide a comprehensive answer that builds on what was discussed.\n\n")
		} else {
			b.WriteString("Use the previous conversation context to provide consistent information. The knowledge entries below should be used to answer the current question.\n\n")
		}
	}

	fmt.Fprintf(&b, "Knowledge entries:\n%s\n\n", contextBlock)
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	fmt.Fprintf(&b, "Answer based on the knowledge entries above, using 'we' or 'our' when referring to %s:", orgName)

	return b.String()
}

// buildFollowUpPrompt asks the model to rewrite a question as an
// invitation. Used only on the LLM fallback path of follow-up synthesis.
func buildFollowUpPrompt(orgName, question string) string {
	var b strings.Builder

	b.WriteString("Convert this question into an invitation format starting with 'Would you like to know'.\n\n")
	b.WriteString("The invitation should:\n")
	b.WriteString("- Start with 'Would you like to know' or 'Would you like to know about' or 'Would you like to know how to' or 'Would you like to know the benefits of'\n")
	b.WriteString("- Use varied formats (not always 'more about')\n")
	fmt.Fprintf(&b, "- Use 'our' or 'we' when referring to %s\n", orgName)
	b.WriteString("- Be concise (one sentence ending with '?')\n")
	b.WriteString("- Be natural and inviting\n\n")
	fmt.Fprintf(&b, "Original question to convert: %s\n\n", question)
	b.WriteString("Generate ONLY the invitation question (no explanation):")

	return b.String()
}
