// Package registry provides the action registry: an insertion-ordered
// collection of actions indexed by id and by name. All mutation goes through
// Add, Remove and Clear so the ordered slice and both indexes always agree.
//
// The registry does no locking. Callers that share it between goroutines
// must guard the whole surface with a single lock, as pkg/console does.
package registry
