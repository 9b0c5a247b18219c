// Package actionfile loads user-defined shell actions from TOML or YAML
// files and turns them into console actions.
//
// A TOML file:
//
//	[[actions]]
//	name = "flush_cache"
//	command = "redis-cli FLUSHALL"
//	confirm = true
//
// The same file in YAML:
//
//	actions:
//	  - name: flush_cache
//	    command: redis-cli FLUSHALL
//	    confirm: true
package actionfile
