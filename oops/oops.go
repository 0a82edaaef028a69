// Errors that carry the stack of the place they were created or wrapped at.
package oops

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Error struct {
	Inner StackTracer
}

func (err *Error) Error() string {
	return err.Inner.Error()
}

// FullString is the message followed by one stack frame per line
func (err *Error) FullString() string {
	var b strings.Builder
	fmt.Fprint(&b, err.Inner.Error())
	for _, frame := range err.StackTrace() {
		frameText, _ := frame.MarshalText()
		fmt.Fprintf(&b, "\n%s", string(frameText))
	}
	return b.String()
}

func (err *Error) Is(target error) bool {
	return errors.Is(err.Inner, target)
}

func (err *Error) As(target any) bool {
	return errors.As(err.Inner, target)
}

func (err *Error) Unwrap() error {
	return errors.Unwrap(err.Inner)
}

func (err *Error) StackTrace() errors.StackTrace {
	return err.Inner.StackTrace()
}

type StackTracer interface {
	Error() string
	StackTrace() errors.StackTrace
}

func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Error); ok {
		return err
	}

	return &Error{
		Inner: errors.WithStack(err).(StackTracer),
	}
}

func Wrapf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}

	inner := errors.Wrapf(err, format, a...)
	return &Error{
		Inner: inner.(StackTracer),
	}
}

func New(message string) error {
	return &Error{
		Inner: errors.New(message).(StackTracer),
	}
}

func Newf(format string, a ...any) error {
	return &Error{
		Inner: errors.Errorf(format, a...).(StackTracer),
	}
}
