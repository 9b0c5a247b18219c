package console

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/arthur-debert/actdeck/internal/version"
	"github.com/arthur-debert/actdeck/pkg/actions"
	"github.com/arthur-debert/actdeck/pkg/logging"
)

type builtin struct {
	name        string
	description string
	confirm     bool
	run         func(out io.Writer) (bool, error)
}

var builtins = []builtin{
	{name: "gc", description: "runtime.GC", run: runGC},
	{name: "free_os_memory", description: "debug.FreeOSMemory", confirm: true, run: runFreeOSMemory},
	{name: "goroutines", description: "runtime.NumGoroutine", run: runGoroutines},
	{name: "mem_stats", description: "runtime.ReadMemStats", run: runMemStats},
	{name: "clear_log", description: "truncate log file", confirm: true, run: runClearLog},
	{name: "version", description: "build info", run: runVersion},
}

// BuiltinNames returns the names registered by RegisterBuiltins
func BuiltinNames() []string {
	names := make([]string, len(builtins))
	for i, b := range builtins {
		names[i] = b.name
	}
	return names
}

// RegisterBuiltins registers the runtime debugging actions. Their output
// goes to out.
func RegisterBuiltins(c *Console, out io.Writer) error {
	for _, b := range builtins {
		if _, err := c.RegisterDescribed(b.name, b.description, bind(b.run, out), b.confirm); err != nil {
			return err
		}
	}
	return nil
}

func bind(run func(io.Writer) (bool, error), out io.Writer) actions.Handler {
	return func() (bool, error) {
		return run(out)
	}
}

func runGC(out io.Writer) (bool, error) {
	runtime.GC()
	fmt.Fprintln(out, "Garbage collection complete")
	return true, nil
}

func runFreeOSMemory(out io.Writer) (bool, error) {
	debug.FreeOSMemory()
	fmt.Fprintln(out, "Returned free memory to the OS")
	return true, nil
}

func runGoroutines(out io.Writer) (bool, error) {
	fmt.Fprintf(out, "Goroutines: %d\n", runtime.NumGoroutine())
	return true, nil
}

func runMemStats(out io.Writer) (bool, error) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	fmt.Fprintf(out, "Heap alloc:   %d bytes\n", stats.HeapAlloc)
	fmt.Fprintf(out, "Heap objects: %d\n", stats.HeapObjects)
	fmt.Fprintf(out, "Sys:          %d bytes\n", stats.Sys)
	fmt.Fprintf(out, "GC cycles:    %d\n", stats.NumGC)
	return true, nil
}

func runClearLog(out io.Writer) (bool, error) {
	if err := logging.TruncateLogFile(); err != nil {
		return false, err
	}
	fmt.Fprintf(out, "Cleared %s\n", logging.LogFilePath())
	return true, nil
}

func runVersion(out io.Writer) (bool, error) {
	fmt.Fprintf(out, "actdeck version %s\n", version.Version)
	fmt.Fprintf(out, "  commit: %s\n", version.Commit)
	fmt.Fprintf(out, "  built:  %s\n", version.Date)
	return true, nil
}
