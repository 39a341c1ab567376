// Package task is a Liskov substitution exercise: an Ostrich is a Bird, but it can't fly.
package task

import (
	"fmt"
	"io"
)

type Animal interface {
	IsWarmBlooded() bool
}

type Bird struct {
	out io.Writer
}

func NewBird(out io.Writer) Bird {
	return Bird{out: out}
}

func (b Bird) Fly() {
	_, _ = fmt.Fprintln(b.out, "I'm flying")
}

func (b Bird) IsWarmBlooded() bool {
	return true
}

// Ostrich inherits Fly from Bird.
type Ostrich struct {
	Bird
}

func NewOstrich(out io.Writer) Ostrich {
	return Ostrich{Bird: NewBird(out)}
}

func (o Ostrich) HideHeadInTheSand() {
	_, _ = fmt.Fprintln(o.out, "Hiding...")
}

type Duck struct {
	Bird
}

func NewDuck(out io.Writer) Duck {
	return Duck{Bird: NewBird(out)}
}

func (d Duck) Quack() {
	_, _ = fmt.Fprintln(d.out, "I'm hungry..")
}
