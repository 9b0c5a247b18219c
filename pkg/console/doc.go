// Package console drives an action registry on behalf of a user interface.
//
// A Console allocates action ids, serializes access to its registry with a
// single mutex, resolves user input ("3" or "clear_log") to an action, asks
// for confirmation when the action requires it, and runs the action with
// failures absorbed into the log. Handlers run with the lock released so
// they may register or unregister actions themselves.
package console
