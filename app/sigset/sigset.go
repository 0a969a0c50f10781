// Package sigset maps conventional signal names like "SIGTERM" to host
// signal numbers and holds the continue-on set built from the command line.
package sigset

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// Fatal is the fixed list of signals the watcher installs a handler for.
// Signals outside this list keep their default OS disposition.
var Fatal = []os.Signal{
	unix.SIGINT,
	unix.SIGTERM,
	unix.SIGQUIT,
	unix.SIGHUP,
	unix.SIGPIPE,
	unix.SIGABRT,
}

// Set is an immutable-by-convention set of signals. Build one with Parse.
type Set map[syscall.Signal]struct{}

// Parse builds a Set from signal names. Names are matched case-insensitively
// against the host's signal name table and must carry the conventional SIG
// prefix ("int" does not match, "sigint" does). Empty tokens are skipped.
// When no tokens survive filtering, the set defaults to {SIGINT}.
func Parse(tokens []string) (Set, error) {
	var names []string
	for _, tok := range tokens {
		if tok != "" {
			names = append(names, tok)
		}
	}

	if len(names) == 0 {
		names = []string{"SIGINT"}
	}

	set := make(Set, len(names))
	for _, name := range names {
		sig := unix.SignalNum(strings.ToUpper(name))
		if sig == 0 {
			return nil, fmt.Errorf("unknown signal name %q", name)
		}
		set[sig] = struct{}{}
	}

	return set, nil
}

// Has reports whether sig is a member of the set.
func (s Set) Has(sig os.Signal) bool {
	num, ok := sig.(syscall.Signal)
	if !ok {
		return false
	}

	_, ok = s[num]
	return ok
}

// String renders the set like "[SIGINT SIGTERM]", ordered by signal number.
func (s Set) String() string {
	nums := make([]syscall.Signal, 0, len(s))
	for sig := range s {
		nums = append(nums, sig)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	names := make([]string, len(nums))
	for i, sig := range nums {
		names[i] = unix.SignalName(sig)
	}

	return "[" + strings.Join(names, " ") + "]"
}

// Name returns the conventional name for sig, like "SIGTERM".
func Name(sig os.Signal) string {
	if num, ok := sig.(syscall.Signal); ok {
		if name := unix.SignalName(num); name != "" {
			return name
		}
	}

	return strings.ToUpper(sig.String())
}

// Num returns the numeric value of sig on the host, or -1 if sig does not
// carry one.
func Num(sig os.Signal) int {
	if num, ok := sig.(syscall.Signal); ok {
		return int(num)
	}

	return -1
}
