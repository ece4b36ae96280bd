package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/mtc/internal/model"
	"github.com/sandeepkv93/mtc/internal/storage"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeRemove Type = "remove"
	TypeGet    Type = "get"
	TypeShow   Type = "show"
	TypeAgenda Type = "agenda"
	TypeNext   Type = "next"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
	ErrCodeNotFound        ErrorCode = "not_found"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalid(format string, args ...any) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

type AddArgs struct {
	Kind    model.Kind
	Body    string
	When    model.ScheduleSpec
	Minutes uint32
}

type RemoveArgs struct {
	Kind model.Kind
	ID   storage.ID
}

type GetArgs struct {
	Kind model.Kind
	ID   storage.ID
}

// ShowArgs lists active items of Kind; at most one of Date and Weekday is set.
type ShowArgs struct {
	Kind    model.Kind
	Date    *model.Date
	Weekday *time.Weekday
}

// AgendaArgs zero values mean "today" and "the configured number of days".
type AgendaArgs struct {
	Date *model.Date
	Days int
}

type NextArgs struct {
	Kind  model.Kind
	ID    storage.ID
	Count int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Remove *RemoveArgs
	Get    *GetArgs
	Show   *ShowArgs
	Agenda *AgendaArgs
	Next   *NextArgs
}

// option keys recognised as key:value tokens; anything else is body text.
// Upper bounds for days: and count:, keeping one command's work bounded.
const (
	MaxAgendaDays   = 366
	MaxPreviewCount = 1000
)

// optionKeys returns the key:value options cmd understands; any other
// key:value token is left in the body.
func optionKeys(cmd Type, args []string) map[string]bool {
	switch cmd {
	case TypeAdd:
		if len(args) > 0 {
			if kind, err := ParseKind(args[0]); err == nil && kind == model.KindTask {
				return map[string]bool{"on": true, "for": true}
			}
		}
		return map[string]bool{"on": true}
	case TypeShow:
		return map[string]bool{"on": true}
	case TypeAgenda:
		return map[string]bool{"on": true, "days": true}
	case TypeNext:
		return map[string]bool{"count": true}
	default:
		return nil
	}
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	cmdType := Type(head)
	switch head {
	case "rm":
		cmdType = TypeRemove
	case "ls":
		cmdType = TypeShow
	}
	words, opts := splitOptions(parts[1:], optionKeys(cmdType, parts[1:]))

	switch cmdType {
	case TypeAdd:
		return parseAdd(input, words, opts)
	case TypeRemove:
		return parseRemove(input, words)
	case TypeGet:
		return parseGet(input, words)
	case TypeShow:
		return parseShow(input, words, opts)
	case TypeAgenda:
		return parseAgenda(input, opts)
	case TypeNext:
		return parseNext(input, words, opts)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func splitOptions(args []string, keys map[string]bool) ([]string, map[string]string) {
	words := make([]string, 0, len(args))
	opts := make(map[string]string)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, ":")
		key = strings.ToLower(key)
		if ok && keys[key] {
			opts[key] = strings.TrimSpace(value)
			continue
		}
		words = append(words, arg)
	}
	return words, opts
}

func ParseKind(s string) (model.Kind, error) {
	k := model.Kind(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	if !k.IsValid() {
		return "", invalid("unknown item kind: %q", s)
	}
	return k, nil
}

// ParseWhen accepts a YYYY-MM-DD date or a weekday name.
func ParseWhen(s string) (model.ScheduleSpec, error) {
	if d, err := model.ParseDate(s); err == nil {
		return model.OnDate(d), nil
	}
	if w, err := model.ParseWeekday(s); err == nil {
		return model.OnWeekday(w), nil
	}
	return model.ScheduleSpec{}, invalid("expected a date (YYYY-MM-DD) or weekday, got %q", s)
}

func parseID(s string) (storage.ID, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil {
		return 0, invalid("invalid id: %q", s)
	}
	return storage.ID(n), nil
}

func parsePositive(name, s string, limit int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, invalid("%s must be a positive number, got %q", name, s)
	}
	if n > limit {
		return 0, invalid("%s must be at most %d, got %d", name, limit, n)
	}
	return n, nil
}

func parseKindAndID(verb string, words []string) (model.Kind, storage.ID, error) {
	if len(words) != 2 {
		return "", 0, invalid("%s requires a kind and an id", verb)
	}
	kind, err := ParseKind(words[0])
	if err != nil {
		return "", 0, err
	}
	id, err := parseID(words[1])
	if err != nil {
		return "", 0, err
	}
	return kind, id, nil
}

func parseAdd(raw string, words []string, opts map[string]string) (Command, error) {
	if len(words) == 0 {
		return Command{}, invalid("add requires a kind")
	}
	kind, err := ParseKind(words[0])
	if err != nil {
		return Command{}, err
	}
	body := strings.TrimSpace(strings.Join(words[1:], " "))
	if body == "" {
		return Command{}, invalid("add %s requires a body", kind)
	}

	args := AddArgs{Kind: kind, Body: body}
	if on, ok := opts["on"]; ok {
		when, err := ParseWhen(on)
		if err != nil {
			return Command{}, err
		}
		args.When = when
	}

	switch kind {
	case model.KindTask:
		if !args.When.IsScheduled() {
			return Command{}, invalid("add task requires on:<date|weekday>")
		}
		minutes, ok := opts["for"]
		if !ok {
			return Command{}, invalid("add task requires for:<minutes>")
		}
		n, err := strconv.ParseUint(minutes, 10, 32)
		if err != nil {
			return Command{}, invalid("for must be a whole number of minutes, got %q", minutes)
		}
		args.Minutes = uint32(n)
	case model.KindEvent:
		if args.When.Kind != model.ScheduleOnDate {
			return Command{}, invalid("add event requires on:<YYYY-MM-DD>")
		}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &args}, nil
}

func parseRemove(raw string, words []string) (Command, error) {
	kind, id, err := parseKindAndID("remove", words)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeRemove, Raw: raw, Remove: &RemoveArgs{Kind: kind, ID: id}}, nil
}

func parseGet(raw string, words []string) (Command, error) {
	kind, id, err := parseKindAndID("get", words)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeGet, Raw: raw, Get: &GetArgs{Kind: kind, ID: id}}, nil
}

func parseShow(raw string, words []string, opts map[string]string) (Command, error) {
	if len(words) != 1 {
		return Command{}, invalid("show requires a kind")
	}
	kind, err := ParseKind(words[0])
	if err != nil {
		return Command{}, err
	}
	args := ShowArgs{Kind: kind}
	if on, ok := opts["on"]; ok {
		when, err := ParseWhen(on)
		if err != nil {
			return Command{}, err
		}
		switch when.Kind {
		case model.ScheduleOnDate:
			d := when.Date
			args.Date = &d
		case model.ScheduleOnWeekday:
			w := when.Weekday
			args.Weekday = &w
		}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &args}, nil
}

func parseAgenda(raw string, opts map[string]string) (Command, error) {
	args := AgendaArgs{}
	if on, ok := opts["on"]; ok {
		d, err := model.ParseDate(on)
		if err != nil {
			return Command{}, invalid("agenda on: expects YYYY-MM-DD, got %q", on)
		}
		args.Date = &d
	}
	if days, ok := opts["days"]; ok {
		n, err := parsePositive("days", days, MaxAgendaDays)
		if err != nil {
			return Command{}, err
		}
		args.Days = n
	}
	return Command{Type: TypeAgenda, Raw: raw, Agenda: &args}, nil
}

func parseNext(raw string, words []string, opts map[string]string) (Command, error) {
	kind, id, err := parseKindAndID("next", words)
	if err != nil {
		return Command{}, err
	}
	args := NextArgs{Kind: kind, ID: id}
	if count, ok := opts["count"]; ok {
		n, err := parsePositive("count", count, MaxPreviewCount)
		if err != nil {
			return Command{}, err
		}
		args.Count = n
	}
	return Command{Type: TypeNext, Raw: raw, Next: &args}, nil
}
