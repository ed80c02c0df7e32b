package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for pointers, mostly people. A person's name follows it
// through drags and rebuilds, which makes logs and exports much easier to read
// than raw indices. Names are generated lazily and never forgotten, so this
// leaks one map entry per named object; it's only meant for scenes of a few
// hundred people.

var (
	memo  map[interface{}]string
	taken map[string]int
)

func init() {
	memo = make(map[interface{}]string)
	taken = make(map[string]int)
	// Names are assigned in order of demand, so they differ between runs anyway.
	// Make that obvious.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	// The word lists are finite, so disambiguate repeats with a suffix
	if n := taken[r]; n > 0 {
		taken[r] = n + 1
		r = fmt.Sprintf("%s%d", r, n+1)
	} else {
		taken[r] = 1
	}
	memo[obj] = r
	return r
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
