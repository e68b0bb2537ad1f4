// Package duck shows capability interfaces with default behavior.
//
// Go interfaces carry no method bodies, so a default lives in a free
// function (DefaultQuack) that implementations delegate to, or in a small
// struct that other types embed. A capability that is granted to every type
// with some other capability is a generic function constrained on that
// capability (ShowName).
package duck

import (
	"fmt"
	"io"
)

// Quacker can quack.
type Quacker interface {
	Quack(w io.Writer)
}

// Named has a name.
type Named interface {
	Name() string
}

// SelfIdentifier can introduce itself.
type SelfIdentifier interface {
	ShowName(w io.Writer)
}

// Walker can walk.
type Walker interface {
	Walk(w io.Writer)
}

// DefaultQuack is the quack used by types that do not bring their own.
func DefaultQuack(w io.Writer) {
	fmt.Fprintln(w, "Quack !")
}

// ShowName introduces any named value.
func ShowName[T Named](w io.Writer, v T) {
	fmt.Fprintf(w, "My name is: %s\n", v.Name())
}

// Duck uses every default and adds its own walk.
type Duck struct{}

func (Duck) Name() string { return "Donald Duck" }

func (Duck) Quack(w io.Writer) { DefaultQuack(w) }

func (d Duck) ShowName(w io.Writer) { ShowName(w, d) }

func (Duck) Walk(w io.Writer) {
	fmt.Fprintln(w, "I'm walking again.")
}

// Mallard is a Duck with its own quack and name. Walking is inherited.
type Mallard struct {
	Duck
}

func (Mallard) Name() string { return "Mallard" }

func (Mallard) Quack(w io.Writer) {
	fmt.Fprintln(w, "Quaaack!")
}

// ShowName must be redeclared: the embedded Duck.ShowName would introduce
// the Duck, not the Mallard.
func (m Mallard) ShowName(w io.Writer) { ShowName(w, m) }

var (
	_ Quacker        = Duck{}
	_ Named          = Duck{}
	_ SelfIdentifier = Duck{}
	_ Walker         = Duck{}
	_ Quacker        = Mallard{}
	_ SelfIdentifier = Mallard{}
	_ Walker         = Mallard{}
)

// Introduce runs the demo sequence for any duck-like value.
func Introduce[T interface {
	SelfIdentifier
	Quacker
	Walker
}](w io.Writer, v T) {
	v.ShowName(w)
	v.Quack(w)
	v.Walk(w)
}
