package dbg

import (
	"fmt"
	"reflect"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Turns pointers into readable names like "BraveOtter", which are far easier
// to follow across a round log than hex addresses. Names are handed out lazily
// and remembered forever (or until Forget), so this only costs anything when
// debug logging is actually on.

var (
	memo  map[interface{}]string
	title = cases.Title(language.English)
)

func init() {
	memo = make(map[interface{}]string)
	// Names are assigned in order of demand, so the same name means different
	// things in different runs. Randomizing them keeps anyone from relying on it.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title.String(petname.Adjective()), title.String(petname.Name()))
	memo[obj] = r
	return r
}

// Drop every remembered name.
func Forget() {
	memo = make(map[interface{}]string)
}
