package console

import (
	"strconv"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/actdeck/pkg/actions"
	"github.com/arthur-debert/actdeck/pkg/errors"
	"github.com/arthur-debert/actdeck/pkg/logging"
	"github.com/arthur-debert/actdeck/pkg/registry"
)

// SortOrder selects the order returned by Entries
type SortOrder string

const (
	// SortByName orders entries alphabetically
	SortByName SortOrder = "name"
	// SortByRegistration keeps the order in which actions were registered
	SortByRegistration SortOrder = "registration"
)

// maxSuggestionDistance bounds the edit distance of "did you mean" hints
const maxSuggestionDistance = 3

// Options configures a Console
type Options struct {
	// Logger receives invocation logs; defaults to the "console" logger
	Logger *zerolog.Logger
	// Confirmer is asked before running actions that require confirmation.
	// A nil Confirmer refuses every confirmation.
	Confirmer Confirmer
	// AssumeYes skips confirmation entirely
	AssumeYes bool
	// Sort is the order used by Entries; defaults to SortByName
	Sort SortOrder
}

// Console owns an action registry and the ids handed to it
type Console struct {
	mu        sync.Mutex
	registry  *registry.ActionRegistry
	nextID    int
	sessionID string
	logger    zerolog.Logger
	confirmer Confirmer
	assumeYes bool
	sort      SortOrder
}

// New creates an empty Console
func New(opts Options) *Console {
	sessionID := uuid.NewString()

	base := logging.GetLogger("console")
	if opts.Logger != nil {
		base = *opts.Logger
	}

	confirmer := opts.Confirmer
	if confirmer == nil {
		confirmer = StaticConfirmer(false)
	}

	sort := opts.Sort
	if sort == "" {
		sort = SortByName
	}

	return &Console{
		registry:  registry.New(),
		nextID:    1,
		sessionID: sessionID,
		logger:    base.With().Str("session", sessionID).Logger(),
		confirmer: confirmer,
		assumeYes: opts.AssumeYes,
		sort:      sort,
	}
}

// SessionID identifies this console in log output
func (c *Console) SessionID() string {
	return c.sessionID
}

// Register creates an action with the next free id and adds it. The id is
// only consumed when registration succeeds.
func (c *Console) Register(name string, handler actions.Handler, requiresConfirmation bool) (*actions.Action, error) {
	return c.RegisterDescribed(name, "", handler, requiresConfirmation)
}

// RegisterDescribed is Register with a handler description shown by the
// action's String instead of its function name
func (c *Console) RegisterDescribed(name, description string, handler actions.Handler, requiresConfirmation bool) (*actions.Action, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	action, err := actions.New(c.nextID, name, handler, requiresConfirmation)
	if err != nil {
		return nil, err
	}
	if description != "" {
		action = action.WithDescription(description)
	}

	if err := c.registry.Add(action); err != nil {
		return nil, err
	}
	c.nextID++

	c.logger.Debug().
		Int("id", action.ID()).
		Str("action", action.Name()).
		Bool("confirm", action.RequiresConfirmation()).
		Msg("Action registered")

	return action, nil
}

// Unregister removes the action with the given id
func (c *Console) Unregister(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.remove(id)
}

// UnregisterName removes the action with the given name
func (c *Console) UnregisterName(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	action, found := c.registry.FindByName(name)
	if !found {
		return false
	}
	return c.remove(action.ID())
}

// remove drops id from the registry; c.mu must be held
func (c *Console) remove(id int) bool {
	removed := c.registry.Remove(id)
	if removed {
		c.logger.Debug().Int("id", id).Msg("Action unregistered")
	}
	return removed
}

// Lookup resolves a reference typed by the user. Numeric references are
// tried as ids first, then as names.
func (c *Console) Lookup(ref string) (*actions.Action, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id, err := strconv.Atoi(ref); err == nil {
		if action, found := c.registry.FindByID(id); found {
			return action, nil
		}
	}

	if action, found := c.registry.FindByName(ref); found {
		return action, nil
	}

	notFound := errors.Newf(errors.ErrNotFound, "no action matches '%s'", ref).
		WithDetail("ref", ref)
	if suggestion, ok := c.suggest(ref); ok {
		notFound.WithDetail("suggestion", suggestion)
	}
	return nil, notFound
}

// Suggest returns the registered name closest to name, if any is close
// enough to be a plausible typo
func (c *Console) Suggest(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.suggest(name)
}

func (c *Console) suggest(name string) (string, bool) {
	best := ""
	bestDistance := maxSuggestionDistance + 1

	for _, action := range c.registry.Sorted() {
		distance := levenshtein.ComputeDistance(name, action.Name())
		if distance < bestDistance && distance < len(name) {
			best = action.Name()
			bestDistance = distance
		}
	}

	return best, best != ""
}

// Invoke resolves ref, confirms when required and executes the action. The
// boolean is the action's result; handler failures are logged and reported
// as false, never as an error. Errors come only from resolution and
// confirmation.
func (c *Console) Invoke(ref string) (bool, error) {
	action, err := c.Lookup(ref)
	if err != nil {
		return false, err
	}

	return c.InvokeAction(action)
}

// InvokeAction confirms when required and executes an already resolved action
func (c *Console) InvokeAction(action *actions.Action) (bool, error) {
	if action.RequiresConfirmation() && !c.assumeYes {
		approved, err := c.confirmer.Confirm(action)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrConfirmationDenied, "could not confirm action '%s'", action.Name()).
				WithDetail("action", action.Name())
		}
		if !approved {
			c.logger.Info().Str("action", action.Name()).Msg("Action declined")
			return false, errors.Newf(errors.ErrConfirmationDenied, "action '%s' was not confirmed", action.Name()).
				WithDetail("action", action.Name())
		}
	}

	done := logging.LogOperationStart(c.logger, "invoke "+action.Name())
	handled := action.ExecuteWithLogger(c.logger)
	done()

	// Failures were already logged under the action name by Execute
	c.logger.Debug().
		Int("id", action.ID()).
		Bool("handled", handled).
		Msg("Action invoked")

	return handled, nil
}

// Entries returns a snapshot of the registered actions in the console's
// sort order
func (c *Console) Entries() []*actions.Action {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sort == SortByRegistration {
		return c.registry.Actions()
	}
	return c.registry.Sorted()
}

// Count returns the number of registered actions
func (c *Console) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.registry.Count()
}

// Clear unregisters every action. Ids are not reused afterwards.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.registry.Clear()
}
