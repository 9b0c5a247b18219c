package registry

import (
	"iter"
	"slices"

	"github.com/arthur-debert/actdeck/pkg/actions"
	"github.com/arthur-debert/actdeck/pkg/errors"
)

// ActionRegistry stores actions in registration order with id and name lookups
type ActionRegistry struct {
	actions []*actions.Action
	byID    map[int]*actions.Action
	byName  map[string]*actions.Action
}

// New creates an empty ActionRegistry
func New() *ActionRegistry {
	return &ActionRegistry{
		byID:   make(map[int]*actions.Action),
		byName: make(map[string]*actions.Action),
	}
}

// Add appends an action and indexes it. Nothing changes when the id or the
// name is already taken.
func (r *ActionRegistry) Add(action *actions.Action) error {
	if action == nil {
		return errors.New(errors.ErrInvalidArgument, "cannot register a nil action")
	}

	if existing, exists := r.byID[action.ID()]; exists {
		return errors.Newf(errors.ErrDuplicateID, "id %d is already registered to '%s'", action.ID(), existing.Name()).
			WithDetail("id", action.ID()).
			WithDetail("name", action.Name())
	}

	if existing, exists := r.byName[action.Name()]; exists {
		return errors.Newf(errors.ErrDuplicateName, "action '%s' is already registered with id %d", action.Name(), existing.ID()).
			WithDetail("id", action.ID()).
			WithDetail("name", action.Name())
	}

	r.actions = append(r.actions, action)
	r.byID[action.ID()] = action
	r.byName[action.Name()] = action
	return nil
}

// Remove unregisters the action with the given id. It returns false, and
// changes nothing, when no such action exists.
func (r *ActionRegistry) Remove(id int) bool {
	action, exists := r.byID[id]
	if !exists {
		return false
	}

	// Build a new slice so iterators already handed out keep their view
	idx := slices.Index(r.actions, action)
	r.actions = slices.Concat(r.actions[:idx], r.actions[idx+1:])
	delete(r.byID, id)
	delete(r.byName, action.Name())
	return true
}

// FindByID returns the action registered under id
func (r *ActionRegistry) FindByID(id int) (*actions.Action, bool) {
	action, exists := r.byID[id]
	return action, exists
}

// FindByName returns the action registered under exactly this name
func (r *ActionRegistry) FindByName(name string) (*actions.Action, bool) {
	action, exists := r.byName[name]
	return action, exists
}

// Has reports whether an action with the given id is registered
func (r *ActionRegistry) Has(id int) bool {
	_, exists := r.byID[id]
	return exists
}

// Clear removes every action
func (r *ActionRegistry) Clear() {
	r.actions = nil
	r.byID = make(map[int]*actions.Action)
	r.byName = make(map[string]*actions.Action)
}

// Count returns the number of registered actions
func (r *ActionRegistry) Count() int {
	return len(r.actions)
}

// All yields actions in registration order. The sequence reflects the
// registry at the moment iteration starts; mutations made while iterating
// are visible to the next iteration only.
func (r *ActionRegistry) All() iter.Seq[*actions.Action] {
	return func(yield func(*actions.Action) bool) {
		for _, action := range r.actions {
			if !yield(action) {
				return
			}
		}
	}
}

// Actions returns a copy of the actions in registration order
func (r *ActionRegistry) Actions() []*actions.Action {
	return slices.Clone(r.actions)
}

// Names returns the registered names in registration order
func (r *ActionRegistry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for _, action := range r.actions {
		names = append(names, action.Name())
	}
	return names
}

// Sorted returns a copy of the actions ordered by name
func (r *ActionRegistry) Sorted() []*actions.Action {
	sorted := slices.Clone(r.actions)
	actions.SortByName(sorted)
	return sorted
}
