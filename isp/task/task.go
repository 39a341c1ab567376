// Package task is an interface segregation exercise: refactor Phone so that a handset
// only implements the features it really has.
package task

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedFeature is returned by a Phone for a capability it doesn't have.
var ErrUnsupportedFeature = errors.New("unsupported feature")

type BatteryPoweredDevice interface {
	BatteryAmount() float64
}

// Phone bundles every feature of a modern smartphone.
type Phone interface {
	BatteryPoweredDevice

	Call(number string) error
	Text(number string) error
	UnlockPhone() error
	Restart() error
	TakeAPhoto() error
	RecordAVideo() error
}

var (
	_ Phone = IPhone{}
	_ Phone = Nokia3310{}
)

type IPhone struct {
	out io.Writer
}

func NewIPhone(out io.Writer) IPhone {
	return IPhone{out: out}
}

func (p IPhone) Call(number string) error {
	_, err := fmt.Fprintf(p.out, "Calling %s\n", number)
	return err
}

func (p IPhone) Text(number string) error {
	_, err := fmt.Fprintf(p.out, "Texting %s\n", number)
	return err
}

func (p IPhone) UnlockPhone() error {
	_, err := fmt.Fprintln(p.out, "Unlocking phone")
	return err
}

func (p IPhone) Restart() error {
	_, err := fmt.Fprintln(p.out, "Restarting phone")
	return err
}

func (p IPhone) TakeAPhoto() error {
	_, err := fmt.Fprintln(p.out, "Taking a photo")
	return err
}

func (p IPhone) RecordAVideo() error {
	_, err := fmt.Fprintln(p.out, "Recording a video")
	return err
}

func (p IPhone) BatteryAmount() float64 {
	return 100
}

// Nokia3310 can call and text. Everything else fails with ErrUnsupportedFeature.
type Nokia3310 struct {
	out io.Writer
}

func NewNokia3310(out io.Writer) Nokia3310 {
	return Nokia3310{out: out}
}

func (p Nokia3310) Call(number string) error {
	_, err := fmt.Fprintf(p.out, "Calling %s\n", number)
	return err
}

func (p Nokia3310) Text(number string) error {
	_, err := fmt.Fprintf(p.out, "Texting %s\n", number)
	return err
}

func (p Nokia3310) UnlockPhone() error {
	return ErrUnsupportedFeature
}

func (p Nokia3310) Restart() error {
	return errors.Join(ErrUnsupportedFeature, errors.New("can only turn off phone"))
}

func (p Nokia3310) TakeAPhoto() error {
	return ErrUnsupportedFeature
}

func (p Nokia3310) RecordAVideo() error {
	return ErrUnsupportedFeature
}

func (p Nokia3310) BatteryAmount() float64 {
	return 100
}
