package commands

import (
	"errors"
	"flag"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		want   []string
		wantOK bool
	}{
		{"cmd colour 3", []string{"colour", "3"}, true},
		{"cmd   fps   --show ", []string{"fps", "--show"}, true},
		{"cmd ", nil, true},
		{"hello there", nil, false},
		{"cmdcolour", nil, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.line)
		if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	var show, sawShow bool
	var gotArgs []string
	fs := flag.NewFlagSet("fps", flag.ContinueOnError)
	fs.BoolVar(&show, "show", false, "")
	r.Register("fps", "toggle fps", fs, func(args []string) error {
		sawShow = show
		gotArgs = args
		return nil
	})
	boom := errors.New("boom")
	r.Register("fail", "always fails", nil, func([]string) error { return boom })

	if err := r.Execute([]string{"fps", "--show", "extra"}); err != nil {
		t.Fatal(err)
	}
	if !sawShow || !reflect.DeepEqual(gotArgs, []string{"extra"}) {
		t.Errorf("show = %v, args = %q", sawShow, gotArgs)
	}
	if show {
		t.Error("flag not reset after run")
	}
	if err := r.Execute([]string{"fps"}); err != nil || sawShow {
		t.Errorf("second run saw show = %v (err %v)", sawShow, err)
	}
	if err := r.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Errorf("Execute(fail) = %v", err)
	}
	if err := r.Execute(nil); err == nil {
		t.Error("empty args accepted")
	}
	if err := r.Execute([]string{"nope"}); err == nil {
		t.Error("unknown command accepted")
	}
	if err := r.Execute([]string{"fps", "--show", "--bogus"}); err == nil {
		t.Error("bad flag accepted")
	}
	if show {
		t.Error("flag left set by a failed parse")
	}
}

func TestHelpIsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("reset", "clear the grid", nil, func([]string) error { return nil })
	r.Register("colour", "select a colour", nil, func([]string) error { return nil })
	want := []string{"colour - select a colour", "reset - clear the grid"}
	if got := r.Help(); !reflect.DeepEqual(got, want) {
		t.Errorf("Help() = %q", got)
	}
}
