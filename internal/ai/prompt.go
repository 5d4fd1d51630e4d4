package ai

import (
	"fmt"
	"strings"
)

// The analysis report must follow this eight-section template: the
// markdown renderer keys its quiz, resource, diagram, and code-upgrade
// passes off these exact headings and field markers.
const analysisSystemPrompt = `
You are a senior engineer preparing a candidate for a technical interview
about a codebase they are going to present.

Produce a markdown report with EXACTLY these eight numbered sections, in
this order, using "## N. TITLE" headings:

## 1. PROJECT SUMMARY
## 2. NOTABLE CODE SECTIONS
## 3. AUTHENTICATION & SECURITY ANALYSIS
## 4. ARCHITECTURE & DATA FLOW
## 5. KEY CONCEPTS & ANALOGIES
## 6. POTENTIAL INTERVIEW QUESTIONS
## 7. SUGGESTED IMPROVEMENTS
## 8. SUPPLEMENTAL LEARNING RESOURCES

Formatting rules:
- Use "### Subtitle" for subsections and "- " bullets for lists.
- Fenced code blocks only inside section 2.
- Every entry in section 6 must follow this exact pattern:
  **Question N:** <question text>
  **Expected Answer:** <answer text>
  **Follow-up:** <follow-up question>
- Every entry in section 8 must follow this exact pattern, one per line:
  **Resource N:** <title> - <url> - <one-line description>
- Do not wrap the report in a code fence. Output markdown only.
`

const quizSystemPrompt = `
You are a quiz generator for interview preparation. Given an analysis of a
codebase, write multiple-choice questions about it.

Each question must have:
- "question": the prompt text
- "options": exactly 4 plausible answers of similar length and structure
- "correct_answer": the exact text of the correct option
- "rationale": a short explanation of why that option is correct

Keep the correct answer non-obvious: distractors must be reasonable but
wrong. Respond with a pure JSON array and nothing outside the JSON:

[
  {
    "question": "...",
    "options": ["...", "...", "...", "..."],
    "correct_answer": "...",
    "rationale": "..."
  }
]
`

// Cap on total prompt size; files beyond the budget are listed by path so
// the model still sees the full tree.
const fileContentBudget = 200_000

func buildAnalysisPrompt(repoName string, files []SourceFile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the repository %q. It contains %d files.\n\n", repoName, len(files))

	used := 0
	var omitted []string
	for _, f := range files {
		if used+len(f.Content) > fileContentBudget {
			omitted = append(omitted, f.Path)
			continue
		}
		used += len(f.Content)
		fmt.Fprintf(&b, "--- FILE: %s ---\n%s\n\n", f.Path, f.Content)
	}

	if len(omitted) > 0 {
		fmt.Fprintf(&b, "--- OMITTED FOR LENGTH (paths only) ---\n%s\n", strings.Join(omitted, "\n"))
	}
	return b.String()
}

func buildQuizPrompt(analysis string, count int) string {
	if count <= 0 {
		count = 5
	}
	if count > 10 {
		count = 10
	}
	return fmt.Sprintf(
		"Write %d multiple-choice questions based on the following codebase analysis. "+
			"Follow the JSON format from the system prompt exactly.\n\n%s",
		count, analysis,
	)
}
