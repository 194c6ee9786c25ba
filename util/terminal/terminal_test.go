package terminal

import (
	"bytes"
	"testing"
)

func TestOutput(t *testing.T) {
	tests := []struct {
		name  string
		print func(o *Output)
		want  string
	}{
		{name: "done", print: func(o *Output) { o.Done("selenium server already running") }, want: "✓ selenium server already running\n"},
		{name: "error", print: func(o *Output) { o.Error("selenium server is not running") }, want: "✗ selenium server is not running\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewOutput(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
