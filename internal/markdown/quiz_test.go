package markdown_test

import (
	"strings"
	"testing"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/markdown"
)

const twoQuestions = `Some intro text.

**Question 1:** What does the handler do?
**Expected Answer:** It decodes the body and
delegates to the service layer.
**Follow-up:** How would you test it?

**Question 2:** Why use **context** here?
**Expected Answer:** Cancellation.
**Follow-up:** What about deadlines?
`

func TestTransformQuizBlocks(t *testing.T) {
	t.Run("TwoBlocks", func(t *testing.T) {
		got := markdown.TransformQuizBlocks(twoQuestions)

		if n := strings.Count(got, `<details class="quiz-question">`); n != 2 {
			t.Fatalf("Expected 2 collapsible blocks, got %d", n)
		}
		if strings.Contains(got, "**Question") {
			t.Errorf("Leftover question marker in output:\n%s", got)
		}
		if !strings.Contains(got, "<summary>Question 1: What does the handler do?</summary>") {
			t.Errorf("Question 1 summary missing:\n%s", got)
		}
		if !strings.Contains(got, "delegates to the service layer.") {
			t.Errorf("Multiline answer text missing:\n%s", got)
		}
		if !strings.Contains(got, "Why use <strong>context</strong> here?") {
			t.Errorf("Inline transform not applied to question text:\n%s", got)
		}
		if !strings.Contains(got, "Some intro text.") {
			t.Errorf("Surrounding text lost:\n%s", got)
		}
	})

	t.Run("ZeroBlocks", func(t *testing.T) {
		in := "Nothing resembling a quiz here.\n"
		if got := markdown.TransformQuizBlocks(in); got != in {
			t.Errorf("Input without quiz blocks changed: %s", got)
		}
	})

	t.Run("MissingFieldLeftUntouched", func(t *testing.T) {
		in := "**Question 1:** Incomplete?\n**Expected Answer:** Yes.\nNo follow-up marker.\n"
		got := markdown.TransformQuizBlocks(in)
		if got != in {
			t.Errorf("Malformed block should pass through unchanged:\n%s", got)
		}
	})

	t.Run("OverlappingMarkersLeftUntouched", func(t *testing.T) {
		// The trailing ** of the answer marker doubles as the leading **
		// of a follow-up marker here; there is no real answer field.
		in := "**Question 1:** q **Expected Answer:***Follow-up:** f"
		got := markdown.TransformQuizBlocks(in)
		if got != in {
			t.Errorf("Block with overlapping markers should pass through unchanged:\n%s", got)
		}
	})

	t.Run("TerminatedByResourceMarker", func(t *testing.T) {
		in := "**Question 1:** Q?\n**Expected Answer:** A.\n**Follow-up:** F.\n**Resource 1:** kept\n"
		got := markdown.TransformQuizBlocks(in)
		if !strings.Contains(got, "**Resource 1:** kept") {
			t.Errorf("Resource marker was consumed by the quiz block:\n%s", got)
		}
		if !strings.Contains(got, `<details class="quiz-question">`) {
			t.Errorf("Quiz block not converted:\n%s", got)
		}
	})

	t.Run("AnswerAndFollowUpParagraphs", func(t *testing.T) {
		got := markdown.TransformQuizBlocks(twoQuestions)
		if !strings.Contains(got, "<p><strong>Expected Answer:</strong> ") {
			t.Errorf("Expected-answer paragraph missing:\n%s", got)
		}
		if !strings.Contains(got, "<p><strong>Follow-up:</strong> ") {
			t.Errorf("Follow-up paragraph missing:\n%s", got)
		}
	})
}
