// Package screens holds one view-state controller per app screen. A
// controller owns the list its screen displays, the form being edited and
// the local filters, and runs the load → render → mutate → reload cycle.
//
// Controllers hold no authoritative cache: after every mutation, successful
// or not, the list is fetched again so the display follows server truth.
package screens

import (
	"errors"
	"fmt"
)

// State is the lifecycle position of a controller.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed // last load failed; the previous list is kept
	Editing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	case Editing:
		return "editing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrBusy is returned when a request from the same screen is still in
	// flight. The UI should keep the triggering control disabled while
	// Busy() is true.
	ErrBusy = errors.New("screens: a request is already in progress")

	// ErrNoForm is returned by Submit when no form is open.
	ErrNoForm = errors.New("screens: no form open")

	// ErrNoPlaceSelected is returned by resource operations before a safe
	// place has been selected.
	ErrNoPlaceSelected = errors.New("screens: no safe place selected")
)

// Confirm asks the user to approve a destructive action. Returning false
// leaves everything untouched.
type Confirm func(prompt string) bool

// NoticeKind classifies a Notice.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeWarning
	NoticeError
)

// Title is the dialog title the app shows for the kind.
func (k NoticeKind) Title() string {
	switch k {
	case NoticeSuccess:
		return "Sucesso"
	case NoticeWarning:
		return "Atenção"
	default:
		return "Erro"
	}
}

// Notice is the single user-facing message a screen currently shows.
// Err keeps the underlying error for logs; it is never rendered.
type Notice struct {
	Kind    NoticeKind
	Message string
	Err     error
}

// Title is shorthand for n.Kind.Title().
func (n Notice) Title() string { return n.Kind.Title() }
