package session

import (
	"flag"
	"fmt"
	"strconv"

	"voxed/internal/commands"
	"voxed/internal/palette"
	"voxed/internal/terrain"
)

// RegisterCommands adds the editor's console commands to reg.
func (s *Session) RegisterCommands(reg *commands.Registry) {
	reg.Register("colour", "colour <0-7>: select a colour and paint the active cell", nil, func(args []string) error {
		i, err := indexArg(args)
		if err != nil {
			return err
		}
		s.SelectColour(i)
		return nil
	})

	reg.Register("palette", "palette <0-7> <#rrggbb>: change a palette entry", nil, func(args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("palette: want <index> <#rrggbb>")
		}
		i, err := indexArg(args[:1])
		if err != nil {
			return err
		}
		c, err := palette.ParseHex(args[1])
		if err != nil {
			return err
		}
		s.SetColour(i, c)
		s.log.Logf("palette %d set to %s", i, c.Hex())
		return nil
	})

	reg.Register("reset", "reset: clear the grid, palette, cursor and camera", nil, func([]string) error {
		s.RequestReset()
		return nil
	})

	reg.Register("quit", "quit: close the editor", nil, func([]string) error {
		s.RequestQuit()
		return nil
	})

	tfs := flag.NewFlagSet("terrain", flag.ContinueOnError)
	def := terrain.DefaultOptions()
	seed := tfs.Int64("seed", 0, "noise seed (0 = time based)")
	maxH := tfs.Int("max", def.MaxHeight, "tallest column")
	octaves := tfs.Int("octaves", def.Octaves, "noise octaves")
	freq := tfs.Float64("frequency", float64(def.Frequency), "base noise frequency")
	reg.Register("terrain", "terrain [--seed N] [--max H] [--octaves N] [--frequency F]: fill the grid with hills", tfs, func([]string) error {
		opts := terrain.DefaultOptions()
		opts.Seed = *seed
		opts.MaxHeight = *maxH
		opts.Octaves = *octaves
		opts.Frequency = float32(*freq)
		s.ctl.Stamp(terrain.Generate(opts))
		s.log.Logf("terrain generated (%d cubes)", s.grid.Filled())
		return nil
	})

	s.registerToggle(reg, "panel", "palette panel", func(u *UIState) *bool { return &u.ShowPanel })
	s.registerToggle(reg, "fps", "FPS counter", func(u *UIState) *bool { return &u.ShowFPS })
	s.registerToggle(reg, "memalloc", "memory counter", func(u *UIState) *bool { return &u.ShowMemAlloc })

	reg.Register("help", "help: list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			s.log.Log(line)
		}
		return nil
	})
}

func (s *Session) registerToggle(reg *commands.Registry, name, what string, field func(*UIState) *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	show := fs.Bool("show", false, "show the "+what)
	hide := fs.Bool("hide", false, "hide the "+what)
	reg.Register(name, name+" --show|--hide: toggle the "+what, fs, func([]string) error {
		if *show == *hide {
			return fmt.Errorf("%s: use --show or --hide", name)
		}
		*field(&s.UI) = *show
		if s.OnUIChange != nil {
			s.OnUIChange(s.UI)
		}
		return nil
	})
}

func indexArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("want one colour index 0-%d", palette.NumColour-1)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil || i < 0 || i >= palette.NumColour {
		return 0, fmt.Errorf("colour index %q not in 0-%d", args[0], palette.NumColour-1)
	}
	return i, nil
}
