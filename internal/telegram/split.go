package telegram

import (
	"strings"
	"unicode/utf16"
)

// MaxMessageLength is Telegram's limit for one text message, in UTF-16 code units.
const MaxMessageLength = 4096

// SplitMessage cuts text into chunks of at most limit UTF-16 code units,
// preferring line breaks. A single line longer than limit is cut mid-line,
// never inside a rune.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 || utf16Len(text) <= limit {
		return []string{text}
	}

	var (
		chunks []string
		cur    strings.Builder
		curLen int
	)
	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for utf16Len(line) > limit {
			flush()
			head, rest := cutUTF16(line, limit)
			chunks = append(chunks, head)
			line = rest
		}

		// +1 for the newline joining it to the current chunk.
		n := utf16Len(line)
		need := n
		if curLen > 0 {
			need++
		}
		if curLen+need > limit {
			flush()
			need = n
		}
		if curLen > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
		curLen += need
	}
	flush()
	return chunks
}

// utf16Len counts s the way Telegram does.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUnits(r)
	}
	return n
}

// cutUTF16 splits s after at most limit code units. At least one rune is
// taken so the caller always makes progress.
func cutUTF16(s string, limit int) (head, rest string) {
	n := 0
	for i, r := range s {
		u := runeUnits(r)
		if n+u > limit && i > 0 {
			return s[:i], s[i:]
		}
		n += u
	}
	return s, ""
}

func runeUnits(r rune) int {
	if u := utf16.RuneLen(r); u > 0 {
		return u
	}
	return 1
}
