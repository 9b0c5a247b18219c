// Package actions defines the entry stored in an action registry: an
// identified, named, nullary handler plus a hint telling the UI whether the
// user must confirm before it runs.
//
// Entries are immutable once constructed. The only way to run a handler is
// Execute, which never lets a handler failure escape: errors and panics are
// logged with the action name and reported as a false result.
package actions
