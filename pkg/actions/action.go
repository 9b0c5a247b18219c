package actions

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strings"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/actdeck/pkg/errors"
	"github.com/arthur-debert/actdeck/pkg/logging"
)

// Handler is the body of an action. The boolean reports whether the action
// handled the request; a non-nil error marks the invocation as failed.
type Handler func() (bool, error)

// Action is one registered action. Use New to construct it.
type Action struct {
	id                   int
	name                 string
	handler              Handler
	requiresConfirmation bool
	description          string
}

// New validates its arguments and returns an immutable Action
func New(id int, name string, handler Handler, requiresConfirmation bool) (*Action, error) {
	if name == "" {
		return nil, errors.New(errors.ErrInvalidArgument, "action name is empty").
			WithDetail("id", id)
	}
	if handler == nil {
		return nil, errors.Newf(errors.ErrInvalidArgument, "action '%s' has no handler", name).
			WithDetail("id", id)
	}

	return &Action{
		id:                   id,
		name:                 name,
		handler:              handler,
		requiresConfirmation: requiresConfirmation,
	}, nil
}

// ID returns the identifier assigned by the registering collaborator
func (a *Action) ID() int { return a.id }

// Name returns the display name
func (a *Action) Name() string { return a.name }

// WithDescription returns a copy of the action that String describes with
// description instead of the handler's function name
func (a *Action) WithDescription(description string) *Action {
	c := *a
	c.description = description
	return &c
}

// Description returns the text set by WithDescription, if any
func (a *Action) Description() string { return a.description }

// Handler returns the handler
func (a *Action) Handler() Handler { return a.handler }

// RequiresConfirmation reports whether the UI should ask before executing
func (a *Action) RequiresConfirmation() bool { return a.requiresConfirmation }

// Execute runs the handler and logs failures through the "actions" logger
func (a *Action) Execute() bool {
	return a.ExecuteWithLogger(logging.GetLogger("actions"))
}

// ExecuteWithLogger runs the handler and returns its result. A returned
// error or a panic is logged once on logger, tagged with the action name,
// and turned into false.
func (a *Action) ExecuteWithLogger(logger zerolog.Logger) bool {
	handled, err := a.invoke()
	if err != nil {
		logger.Error().
			Err(err).
			Str("action", a.name).
			Int("id", a.id).
			Bool("panic", errors.IsErrorCode(err, errors.ErrHandlerFailure)).
			Msgf("Exception while invoking action '%s'", a.name)
		return false
	}
	return handled
}

func (a *Action) invoke() (handled bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			handled = false
			if rErr, ok := r.(error); ok {
				err = errors.Wrap(rErr, errors.ErrHandlerFailure, "handler panicked")
				return
			}
			err = errors.Newf(errors.ErrHandlerFailure, "handler panicked: %v", r)
		}
	}()

	return a.handler()
}

// Compare orders actions by name using byte-wise string comparison
func (a *Action) Compare(other *Action) int {
	return strings.Compare(a.name, other.name)
}

// Equal reports whether both actions carry the same id, name, confirmation
// flag and handler. Handlers match when they are the same function value:
// two closures over different variables never match, even when they come
// from the same function literal.
func (a *Action) Equal(other *Action) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.id == other.id &&
		a.name == other.name &&
		a.requiresConfirmation == other.requiresConfirmation &&
		handlerIdentity(a.handler) == handlerIdentity(other.handler)
}

// String returns "<name> (<handler-description>)". The description is the
// one given to WithDescription, or else the handler's function name.
func (a *Action) String() string {
	description := a.description
	if description == "" {
		description = describeHandler(a.handler)
	}
	return fmt.Sprintf("%s (%s)", a.name, description)
}

// SortByName sorts actions alphabetically in place, keeping registration
// order for equal names
func SortByName(list []*Action) {
	slices.SortStableFunc(list, func(x, y *Action) int {
		return x.Compare(y)
	})
}

// handlerIdentity returns the address of the function value itself. Each
// closure instance has its own, so captured state tells handlers apart.
func handlerIdentity(h Handler) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&h))
}

func describeHandler(h Handler) string {
	if fn := runtime.FuncForPC(reflect.ValueOf(h).Pointer()); fn != nil {
		return fn.Name()
	}
	return "func"
}
