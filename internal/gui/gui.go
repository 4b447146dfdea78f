// Package gui is the pure-Go front end built on fyne: a software-rendered
// scene view next to an information panel, driven by the same session
// as the raylib window.
package gui

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/internal/session"
	"github.com/philipparndt/gostack/pkg/watcher"
	"github.com/philipparndt/gostack/version"
)

// reloadDebounce coalesces the burst of events an editor produces on save
const reloadDebounce = 300 * time.Millisecond

// Options configures the fyne front end
type Options struct {
	Variant    scene.Variant // empty: taken from the layout file, else the default
	LayoutPath string        // optional YAML layout; empty uses the built-in preset
	Watch      bool          // reload the layout file when it changes
	Logger     *slog.Logger
}

type App struct {
	window  fyne.Window
	view    *SceneView
	info    *Info
	watcher *watcher.FileWatcher
	log     *slog.Logger
}

// Info holds the labels of the information panel
type Info struct {
	variantLabel  *widget.Label
	shapesLabel   *widget.Label
	selectedLabel *widget.Label
	positionLabel *widget.Label
	sizeLabel     *widget.Label
	statusLabel   *widget.Label
	helpLabel     *widget.Label
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	view := NewSceneView()
	s, err := session.New(session.Options{
		Variant:    opts.Variant,
		LayoutPath: opts.LayoutPath,
		View:       view.View(),
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}
	view.SetSession(s)
	log.Info("scene ready", "variant", s.Variant(), "shapes", len(s.Scene().Shapes))

	a := app.New()
	w := a.NewWindow("gostack " + version.GetVersion())

	g := &App{window: w, view: view, log: log}
	g.setupMainUI()
	view.SetOnChange(g.updateInfo)
	w.Canvas().SetOnTypedKey(view.TypedKey)

	// Advances damped orbit motion once per frame on the main goroutine.
	damping := fyne.NewAnimation(time.Second, func(float32) { view.Tick() })
	damping.RepeatCount = fyne.AnimationRepeatForever
	damping.Start()
	defer damping.Stop()

	if opts.Watch && opts.LayoutPath != "" {
		if err := g.setupLayoutWatcher(); err != nil {
			log.Warn("failed to set up layout watching, auto-reload will not be available", "err", err)
		} else {
			defer g.watcher.Close()
		}
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
	return nil
}

func (g *App) setupMainUI() {
	g.info = &Info{
		variantLabel:  widget.NewLabel(""),
		shapesLabel:   widget.NewLabel(""),
		selectedLabel: widget.NewLabel(""),
		positionLabel: widget.NewLabel(""),
		sizeLabel:     widget.NewLabel(""),
		statusLabel:   widget.NewLabel(""),
		helpLabel:     widget.NewLabel(""),
	}
	g.info.selectedLabel.TextStyle = fyne.TextStyle{Bold: true}
	g.info.statusLabel.Wrapping = fyne.TextWrapWord
	g.info.helpLabel.Wrapping = fyne.TextWrapWord

	resetButton := widget.NewButton("Reset View", func() {
		g.view.ResetCamera()
	})

	reloadButton := widget.NewButton("Reload Layout", func() {
		g.reload()
	})
	if g.view.session.Path() == "" {
		reloadButton.Disable()
	}

	infoPanel := container.NewVBox(
		widget.NewLabel("Scene:"),
		widget.NewSeparator(),
		g.info.variantLabel,
		g.info.shapesLabel,
		widget.NewSeparator(),
		widget.NewLabel("Selection:"),
		widget.NewSeparator(),
		g.info.selectedLabel,
		g.info.positionLabel,
		g.info.sizeLabel,
		widget.NewSeparator(),
		g.info.helpLabel,
		widget.NewSeparator(),
		g.info.statusLabel,
		resetButton,
		reloadButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		g.view,     // center
	)

	g.window.SetContent(content)
	g.updateInfo()
}

// updateInfo refreshes the panel from the session
func (g *App) updateInfo() {
	s := g.view.session
	sc := s.Scene()

	g.info.variantLabel.SetText(fmt.Sprintf("Variant: %s", s.Variant()))
	g.info.shapesLabel.SetText(fmt.Sprintf("Shapes: %d   Grid: %g", len(sc.Shapes), sc.Grid.Size))
	g.info.helpLabel.SetText(helpText(s.Variant()))

	last := s.Controller().LastSelected()
	if last == nil {
		g.info.selectedLabel.SetText("Nothing selected")
		g.info.positionLabel.SetText("Position: -")
		g.info.sizeLabel.SetText("Size: -")
		return
	}

	g.info.selectedLabel.SetText(last.Label(sc.Index(last)))
	p := last.Position
	g.info.positionLabel.SetText(fmt.Sprintf("Position: (%g, %g, %g)", p.X, p.Y, p.Z))
	size := last.Size
	g.info.sizeLabel.SetText(fmt.Sprintf("Size: %g x %g x %g", size.X, size.Y, size.Z))
}

// setupLayoutWatcher reloads the layout on the main goroutine when the file changes
func (g *App) setupLayoutWatcher() error {
	path := g.view.session.Path()

	fw, err := watcher.NewFileWatcher(reloadDebounce, g.log)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Watch([]string{path}, func(changed string) {
		g.log.Debug("layout changed", "path", changed)
		fyne.Do(g.reload)
	}); err != nil {
		fw.Close()
		return err
	}

	fw.Start()
	g.watcher = fw
	g.log.Info("watching layout for changes", "path", path)
	return nil
}

// reload keeps the current scene when the file is broken and shows the error
func (g *App) reload() {
	if err := g.view.Reload(); err != nil {
		g.log.Warn("layout reload failed", "err", err)
		g.info.statusLabel.SetText("Layout reload failed: " + err.Error())
		return
	}
	g.info.statusLabel.SetText("")
}

func helpText(v scene.Variant) string {
	if v == scene.VariantOrbit {
		return "Controls:\n" +
			"  Left drag on shape: move shape\n" +
			"  Left drag: pan view\n" +
			"  Right drag: rotate view\n" +
			"  Arrows: nudge selection (camera relative)\n" +
			"  Home: reset view"
	}
	return "Controls:\n" +
		"  Drag shape: move shape\n" +
		"  Arrows: nudge selection"
}
