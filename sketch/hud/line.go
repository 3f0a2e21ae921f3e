package hud

import (
	"sort"
	"strings"
)

const (
	maxInput          = 256
	maxHistoryEntries = 32
)

// CommandLine is a single-line editor with history and name completion.
type CommandLine struct {
	active bool
	input  []rune
	cursor int

	history []string
	histPos int

	// Names offered by Complete, matched against the text before '='.
	Names []string
}

func (l *CommandLine) Active() bool { return l.active }

// Open starts editing with an empty line.
func (l *CommandLine) Open() {
	l.active = true
	l.input = l.input[:0]
	l.cursor = 0
	l.histPos = len(l.history)
}

// Close abandons the current line.
func (l *CommandLine) Close() {
	l.active = false
	l.input = l.input[:0]
	l.cursor = 0
}

func (l *CommandLine) Text() string { return string(l.input) }
func (l *CommandLine) Cursor() int  { return l.cursor }

func (l *CommandLine) Insert(r rune) {
	if len(l.input) >= maxInput {
		return
	}
	l.input = append(l.input, 0)
	copy(l.input[l.cursor+1:], l.input[l.cursor:])
	l.input[l.cursor] = r
	l.cursor++
}

func (l *CommandLine) Backspace() {
	if l.cursor <= 0 || len(l.input) == 0 {
		return
	}
	copy(l.input[l.cursor-1:], l.input[l.cursor:])
	l.input = l.input[:len(l.input)-1]
	l.cursor--
}

func (l *CommandLine) Left() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *CommandLine) Right() {
	if l.cursor < len(l.input) {
		l.cursor++
	}
}

func (l *CommandLine) setInput(s string) {
	l.input = []rune(s)
	l.cursor = len(l.input)
}

func (l *CommandLine) HistUp() {
	if len(l.history) == 0 {
		return
	}
	if l.histPos > 0 {
		l.histPos--
	}
	if l.histPos >= 0 && l.histPos < len(l.history) {
		l.setInput(l.history[l.histPos])
	}
}

func (l *CommandLine) HistDown() {
	if len(l.history) == 0 {
		return
	}
	if l.histPos < len(l.history) {
		l.histPos++
	}
	if l.histPos == len(l.history) {
		l.setInput("")
		return
	}
	l.setInput(l.history[l.histPos])
}

// Complete extends a partial setting name to the best matching one.
func (l *CommandLine) Complete() {
	s := string(l.input)
	if strings.ContainsRune(s, '=') {
		return
	}
	cands := completeFromPrefix(l.Names, strings.TrimSpace(s))
	if len(cands) == 0 {
		return
	}
	best := pickBestCompletion(s, cands)
	if len(cands) == 1 && best != "resetField" {
		best += "="
	}
	l.setInput(best)
}

// Submit closes the editor and returns the trimmed line, recording it in
// history.
func (l *CommandLine) Submit() string {
	line := strings.TrimSpace(string(l.input))
	l.Close()
	l.pushHistory(line)
	return line
}

func (l *CommandLine) pushHistory(line string) {
	if line == "" {
		return
	}
	if len(l.history) > 0 && l.history[len(l.history)-1] == line {
		return
	}
	if len(l.history) >= maxHistoryEntries {
		copy(l.history, l.history[1:])
		l.history[len(l.history)-1] = line
		return
	}
	l.history = append(l.history, line)
}

func completeFromPrefix(names []string, prefix string) []string {
	var out []string
	for _, s := range names {
		if strings.HasPrefix(s, prefix) {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func pickBestCompletion(prefix string, cands []string) string {
	for _, s := range cands {
		if s == prefix {
			return s
		}
	}
	best := cands[0]
	for _, s := range cands[1:] {
		if len(s) < len(best) || (len(s) == len(best) && s < best) {
			best = s
		}
	}
	return best
}

// ParseAssignment splits "name=value", trimming both sides. A bare word is a
// name with an empty value.
func ParseAssignment(line string) (name, value string) {
	name, value, _ = strings.Cut(line, "=")
	return strings.TrimSpace(name), strings.TrimSpace(value)
}
