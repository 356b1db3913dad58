package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxed/internal/commands"
	"voxed/internal/config"
	"voxed/internal/debug"
	"voxed/internal/editor"
	"voxed/internal/env"
	"voxed/internal/fonts"
	"voxed/internal/graphics"
	"voxed/internal/input"
	"voxed/internal/logger"
	"voxed/internal/primitives"
	"voxed/internal/session"
	"voxed/internal/terminal"
	"voxed/internal/ui"
)

// fontSize is the glyph size fonts are rasterised at; overlays draw at this size.
const fontSize = 20

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}
	cfgPath := config.Path()
	cfg, cfgErr := config.Load(cfgPath)
	log := logger.New(cfg.LogPath)
	if cfgErr != nil {
		log.Log(cfgErr.Error())
	}

	colours, err := cfg.PaletteColours()
	if err != nil {
		log.Log(err.Error())
	}
	bindings := editor.DefaultBindings()
	if err := bindings.Rebind(cfg.Keys); err != nil {
		log.Log(err.Error())
		bindings = editor.DefaultBindings()
	}

	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	sess := session.New(session.Options{
		Aspect:   aspect,
		Palette:  colours,
		Bindings: bindings,
		Log:      log,
		UI: session.UIState{
			ShowPanel:    cfg.ShowPanel,
			ShowFPS:      cfg.ShowFPS,
			ShowMemAlloc: cfg.ShowMemAlloc,
		},
	})
	sess.OnUIChange = func(u session.UIState) {
		cfg.ShowPanel, cfg.ShowFPS, cfg.ShowMemAlloc = u.ShowPanel, u.ShowFPS, u.ShowMemAlloc
		if err := config.Save(cfgPath, cfg); err != nil {
			log.Log(err.Error())
		}
	}

	reg := commands.NewRegistry()
	sess.RegisterCommands(reg)
	term := terminal.New(log, reg)
	term.OnToggle = sess.SetConsoleOpen

	engine := ui.New()
	if cfg.Stylesheet != "" {
		if err := engine.LoadCSS(cfg.Stylesheet); err != nil {
			log.Logf("stylesheet %s: %v", cfg.Stylesheet, err)
		}
	}
	panel := ui.NewPanel()
	overlay := debug.New()
	renderer := primitives.NewRegistry()
	var nodes []*ui.Node
	var pointerX, pointerY float32

	dispatch := func(ev input.Event) bool {
		switch ev := ev.(type) {
		case input.PointerMoveEvent:
			pointerX, pointerY = ev.X, ev.Y
			sess.SetPointerOverUI(sess.UI.ShowPanel && engine.Contains(ev.X, ev.Y))
		case input.ButtonEvent:
			if sess.UI.PointerOverUI && ev.Button == input.ButtonLeft && ev.Action == input.Press {
				switch act := panel.Click(engine, pointerX, pointerY); act.Kind {
				case ui.ActionSelect:
					sess.SelectColour(act.Index)
				case ui.ActionReset:
					sess.RequestReset()
				case ui.ActionQuit:
					sess.RequestQuit()
				}
				return true
			}
		}
		return sess.Dispatch(ev)
	}

	draw := func() {
		fr := sess.Frame()
		renderer.DrawFrame(fr)
		cols, current := sess.Palette()
		nodes = panel.AppendNodes(nodes[:0], sess.UI.ShowPanel, cols, current)
		engine.SetNodes(nodes)
		engine.Draw()
		overlay.Draw(sess.UI, sess.Snapshot())
		term.Draw()
	}

	var font rl.Font
	loadFont := func() {
		if cfg.Font == "" {
			return
		}
		path, err := fonts.Find(cfg.Font)
		if err != nil {
			log.Logf("font %s: %v", cfg.Font, err)
			return
		}
		font = rl.LoadFontEx(path, fontSize, nil)
		engine.SetFont(font)
		term.SetFont(font)
		overlay.SetFont(font)
	}
	closeAll := func() {
		renderer.Unload()
		if font.Texture.ID != 0 {
			rl.UnloadFont(font)
		}
	}

	log.Log("voxed started")
	graphics.Run(cfg.Window, graphics.Callbacks{
		Init:     loadFont,
		Update:   term.Update,
		Dispatch: dispatch,
		Resize:   sess.SetAspect,
		Draw:     draw,
		Done:     sess.QuitRequested,
		Close:    closeAll,
	})
}
