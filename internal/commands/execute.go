package commands

import "fmt"

// Section is a titled group of output lines, e.g. one item kind in an agenda.
type Section struct {
	Title string
	Lines []string
}

type Result struct {
	Message  string
	Sections []Section
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Remove func(RemoveArgs) (Result, error)
	Get    func(GetArgs) (Result, error)
	Show   func(ShowArgs) (Result, error)
	Agenda func(AgendaArgs) (Result, error)
	Next   func(NextArgs) (Result, error)
}

func missing(name string) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: name + " handler not configured"}
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing("add")
		}
		return handlers.Add(*cmd.Add)
	case TypeRemove:
		if handlers.Remove == nil {
			return Result{}, missing("remove")
		}
		return handlers.Remove(*cmd.Remove)
	case TypeGet:
		if handlers.Get == nil {
			return Result{}, missing("get")
		}
		return handlers.Get(*cmd.Get)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, missing("show")
		}
		return handlers.Show(*cmd.Show)
	case TypeAgenda:
		if handlers.Agenda == nil {
			return Result{}, missing("agenda")
		}
		return handlers.Agenda(*cmd.Agenda)
	case TypeNext:
		if handlers.Next == nil {
			return Result{}, missing("next")
		}
		return handlers.Next(*cmd.Next)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
