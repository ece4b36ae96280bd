package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/mtc/internal/commands"
	"github.com/sandeepkv93/mtc/internal/model"
	"github.com/sandeepkv93/mtc/internal/session"
	"github.com/sandeepkv93/mtc/internal/views"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Submit  key.Binding
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		PrevDay: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "previous day")),
		NextDay: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "next day")),
		Today:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "back to today")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

type Model struct {
	Session     *session.Session
	Config      RuntimeConfig
	FocusDate   model.Date
	History     []views.ResultData
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	clock     func() time.Time
	handlers  commands.Handlers
	paneWidth int
	input     textinput.Model
	output    viewport.Model
	helpModel help.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// RunCommandMsg executes Input as if it had been typed at the prompt.
type RunCommandMsg struct {
	Input string
}

type FocusDateMsg struct {
	Date model.Date
}

// NewModel builds the shell around sess. A nil clock means time.Now.
func NewModel(sess *session.Session, cfg RuntimeConfig, clock func() time.Time) Model {
	if sess == nil {
		sess = session.New()
	}
	if clock == nil {
		clock = time.Now
	}
	paneWidth := cfg.PaneWidth
	if paneWidth <= 0 {
		paneWidth = DefaultRuntimeConfig().PaneWidth
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "add todo water plants on:sunday"
	input.Focus()

	m := Model{
		Session:   sess,
		Config:    cfg,
		FocusDate: model.DateOf(clock()),
		Keys:      DefaultKeyMap(),
		clock:     clock,
		handlers:  NewHandlers(sess, clock, cfg),
		paneWidth: paneWidth,
		input:     input,
		output:    viewport.New(paneWidth, 16),
		helpModel: help.New(),
	}
	m.syncOutput()
	return m
}
