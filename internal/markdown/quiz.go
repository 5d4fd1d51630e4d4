package markdown

import (
	"regexp"
	"strings"
)

var questionHeadRe = regexp.MustCompile(`\*\*Question (\d+):\*\*`)

const (
	expectedAnswerMarker = "**Expected Answer:**"
	followUpMarker       = "**Follow-up:**"
)

// detailsOpen is the only markup this pass leaves in the text stream; the
// block normalizer's pass-through rule is keyed to it.
const detailsOpen = `<details class="quiz-question">`

// TransformQuizBlocks rewrites each
//
//	**Question N:** … **Expected Answer:** … **Follow-up:** …
//
// triad into a collapsible disclosure block. A block runs from its
// question marker to the next **Question or **Resource marker, the next
// section heading, or the end of the input, so the free-text fields may
// span multiple lines without a trailing heading being swallowed. Blocks
// missing either field marker are left untouched and degrade to plain
// paragraphs later in the pipeline.
//
// This must run before the generic inline pass: the bold pass would
// otherwise consume the field markers themselves.
func TransformQuizBlocks(text string) string {
	heads := questionHeadRe.FindAllStringSubmatchIndex(text, -1)
	if len(heads) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	prevEnd := 0

	for i, h := range heads {
		start, end := h[0], h[1]
		num := text[h[2]:h[3]]

		blockEnd := len(text)
		if i+1 < len(heads) {
			blockEnd = heads[i+1][0]
		}
		for _, terminator := range []string{"**Resource", "\n## "} {
			if r := strings.Index(text[end:blockEnd], terminator); r >= 0 {
				blockEnd = end + r
			}
		}

		question, answer, followUp, ok := splitQuizFields(text[end:blockEnd])
		if !ok {
			continue
		}

		b.WriteString(text[prevEnd:start])
		b.WriteString(detailsOpen)
		b.WriteString(`<summary>Question `)
		b.WriteString(num)
		b.WriteString(`: `)
		b.WriteString(TransformInline(strings.TrimSpace(question)))
		b.WriteString(`</summary><div class="quiz-answer"><p><strong>Expected Answer:</strong> `)
		b.WriteString(TransformInline(strings.TrimSpace(answer)))
		b.WriteString(`</p><p><strong>Follow-up:</strong> `)
		b.WriteString(TransformInline(strings.TrimSpace(followUp)))
		b.WriteString(`</p></div></details>`)
		prevEnd = blockEnd
	}

	b.WriteString(text[prevEnd:])
	return b.String()
}

func splitQuizFields(body string) (question, answer, followUp string, ok bool) {
	ai := strings.Index(body, expectedAnswerMarker)
	if ai < 0 {
		return "", "", "", false
	}

	// Search only after the answer marker: the two markers share the
	// "**" suffix/prefix, so an overlapping match before this point would
	// not be a real field boundary.
	answerStart := ai + len(expectedAnswerMarker)
	fi := strings.Index(body[answerStart:], followUpMarker)
	if fi < 0 {
		return "", "", "", false
	}

	question = body[:ai]
	answer = body[answerStart : answerStart+fi]
	followUp = body[answerStart+fi+len(followUpMarker):]
	return question, answer, followUp, true
}
