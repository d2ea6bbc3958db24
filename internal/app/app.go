// Package app wires the editing engine to a terminal frontend.
package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/squall/internal/config"
)

// App runs an Editor inside a tcell screen.
type App struct {
	editor *Editor
	screen tcell.Screen

	// prompt holds the goto-line input while the prompt is open; nil
	// when closed.
	prompt []rune

	// pending is a configuration queued from another goroutine; the
	// event loop applies it on its next wakeup.
	pendingMu sync.Mutex
	pending   *config.Config
}

// New creates the application. When path is non-empty the file is
// loaded into the editor.
func New(cfg config.Config, path string) (*App, error) {
	a := &App{editor: NewEditor(cfg)}
	if path != "" {
		if err := a.editor.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Editor exposes the editing state, mainly for tests.
func (a *App) Editor() *Editor { return a.editor }

// SetLogger attaches a logger to the editor.
func (a *App) SetLogger(l *Logger) { a.editor.SetLogger(l) }

// Run initializes the terminal and processes events until quit.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnablePaste()

	a.pendingMu.Lock()
	a.screen = screen
	a.pendingMu.Unlock()

	width, height := screen.Size()
	a.editor.Resize(width, height)

	for {
		a.draw()
		screen.Show()

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			width, height := ev.Size()
			a.editor.Resize(width, height)
			screen.Sync()
		case *tcell.EventKey:
			if quit := a.handleKey(ev); quit {
				return nil
			}
		case *tcell.EventPaste:
			// Pasted text arrives as individual rune events between
			// the paste markers; nothing to do here.
		case *tcell.EventInterrupt:
			a.applyPendingConfig()
		}
	}
}

// QueueConfig schedules a reloaded configuration to be applied by the
// event loop. Safe to call from any goroutine.
func (a *App) QueueConfig(cfg config.Config) {
	a.pendingMu.Lock()
	a.pending = &cfg
	screen := a.screen
	a.pendingMu.Unlock()
	if screen != nil {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

func (a *App) applyPendingConfig() {
	a.pendingMu.Lock()
	cfg := a.pending
	a.pending = nil
	a.pendingMu.Unlock()
	if cfg != nil {
		a.editor.SetConfig(*cfg)
	}
}

// handleKey dispatches one key event. It returns true on quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	if a.prompt != nil {
		a.handlePromptKey(ev)
		return false
	}

	e := a.editor
	shift := ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlG:
		a.prompt = []rune{}
		return false
	case tcell.KeyCtrlZ:
		e.Undo()
	case tcell.KeyCtrlY:
		e.Redo()
	case tcell.KeyUp:
		e.MoveVertical(-1, shift)
	case tcell.KeyDown:
		e.MoveVertical(1, shift)
	case tcell.KeyLeft:
		if ctrl {
			e.MoveWord(-1, shift)
		} else {
			e.MoveHorizontal(-1, shift)
		}
	case tcell.KeyRight:
		if ctrl {
			e.MoveWord(1, shift)
		} else {
			e.MoveHorizontal(1, shift)
		}
	case tcell.KeyHome:
		e.MoveLineStart(shift)
	case tcell.KeyEnd:
		e.MoveLineEnd(shift)
	case tcell.KeyPgUp:
		e.MovePage(-1, shift)
	case tcell.KeyPgDn:
		e.MovePage(1, shift)
	case tcell.KeyEnter:
		e.InsertText("\n")
	case tcell.KeyTab:
		e.InsertText("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.Backspace()
	case tcell.KeyRune:
		e.InsertText(string(ev.Rune()))
	}
	return false
}

// handlePromptKey edits the goto-line prompt.
func (a *App) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		input := string(a.prompt)
		a.prompt = nil
		a.editor.GotoLine(input)
	case tcell.KeyEscape:
		a.prompt = nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.prompt) > 0 {
			a.prompt = a.prompt[:len(a.prompt)-1]
		}
	case tcell.KeyRune:
		a.prompt = append(a.prompt, ev.Rune())
	}
	a.editor.dirty.MarkAll()
}
