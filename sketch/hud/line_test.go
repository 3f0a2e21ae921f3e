package hud

import "testing"

func typeText(l *CommandLine, s string) {
	for _, r := range s {
		l.Insert(r)
	}
}

func TestCommandLineEditing(t *testing.T) {
	var l CommandLine
	l.Open()
	typeText(&l, "spn=4")
	for i := 0; i < 4; i++ {
		l.Left()
	}
	l.Insert('a')
	if got := l.Text(); got != "span=4" {
		t.Fatalf("text=%q", got)
	}
	for i := 0; i < 3; i++ {
		l.Right()
	}
	l.Backspace()
	if got := l.Text(); got != "span4" {
		t.Fatalf("after backspace text=%q", got)
	}
	if got := l.Submit(); got != "span4" {
		t.Fatalf("submit=%q", got)
	}
	if l.Active() || l.Text() != "" {
		t.Fatalf("submit did not close the line")
	}
}

func TestCommandLineHistory(t *testing.T) {
	var l CommandLine
	for _, s := range []string{"vx=-y", "vy=x", "vy=x"} {
		l.Open()
		typeText(&l, s)
		l.Submit()
	}
	l.Open()
	l.HistUp()
	if l.Text() != "vy=x" {
		t.Fatalf("HistUp=%q", l.Text())
	}
	l.HistUp()
	if l.Text() != "vx=-y" {
		t.Fatalf("second HistUp=%q", l.Text())
	}
	l.HistDown()
	l.HistDown()
	if l.Text() != "" {
		t.Fatalf("HistDown past end=%q", l.Text())
	}
}

func TestCommandLineComplete(t *testing.T) {
	l := CommandLine{Names: []string{"pathLength", "pointSize", "showPaths", "showPoints", "resetField"}}
	tests := []struct {
		in, want string
	}{
		{"pa", "pathLength="},
		{"show", "showPaths"},
		{"res", "resetField"},
		{"zzz", "zzz"},
		{"span=1", "span=1"},
	}
	for _, tt := range tests {
		l.Open()
		typeText(&l, tt.in)
		l.Complete()
		if got := l.Text(); got != tt.want {
			t.Fatalf("Complete(%q)=%q, want %q", tt.in, got, tt.want)
		}
		l.Close()
	}
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in, name, value string
	}{
		{"span=4", "span", "4"},
		{" vx = sin(y) ", "vx", "sin(y)"},
		{"resetField", "resetField", ""},
		{"vz=a=b", "vz", "a=b"},
	}
	for _, tt := range tests {
		n, v := ParseAssignment(tt.in)
		if n != tt.name || v != tt.value {
			t.Fatalf("ParseAssignment(%q)=(%q,%q)", tt.in, n, v)
		}
	}
}
