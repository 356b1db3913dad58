package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// Command is a console subcommand with its own flags. Run receives the positional
// arguments left after flag parsing.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs may be nil for commands without flags; its output is discarded
// so parse errors surface only through Execute.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one "name - usage" line per command.
func (r *Registry) Help() []string {
	var out []string
	for _, n := range r.Names() {
		out = append(out, n+" - "+r.cmds[n].Usage)
	}
	return out
}

// Parse interprets a console line. Lines starting with "cmd " are tokenized by whitespace and
// returned with ok true; anything else returns nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flags and positional arguments.
// Flags are restored to their defaults afterwards, so each run sees only the flags it was given.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	defer resetFlags(cmd.FlagSet)
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

func resetFlags(fs *flag.FlagSet) {
	fs.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
}
