// Package errors implements the error conventions used throughout tealc.
//
// A package declares its failure modes as sentinel values made with New.
// Call sites decorate a sentinel with a human-readable detail message
// (WithDetail, WithDetailf), with structured data for diagnostics
// (WithData), or with a context message (Wrap, Wrapf). However many
// layers are added, Root recovers the sentinel, so callers compare
//
//	if errors.Root(err) == types.ErrMismatchedTypes { ... }
//
// Sub replaces the root of an error with a new sentinel while keeping
// the replaced error reachable through Is and As.
package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
// It is the standard library's errors.Is and understands the
// wrappers produced by this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

type wrapperError struct {
	msg    string
	detail []string
	data   map[string]interface{}
	stack  []StackFrame
	root   error

	// sub is the error replaced by Sub, if any.
	sub error
}

func (e wrapperError) Error() string {
	return e.msg
}

// Unwrap exposes the root and, for errors made by Sub,
// the substituted error.
func (e wrapperError) Unwrap() []error {
	if e.sub != nil {
		return []error{e.root, e.sub}
	}
	return []error{e.root}
}

// Root returns the original error that was wrapped by one or more
// calls to Wrap, WithDetail, WithData, or Sub. If e does not wrap
// other errors, it is returned as-is.
func Root(e error) error {
	if wErr, ok := e.(wrapperError); ok {
		return wErr.root
	}
	return e
}

// wrap adds a context message and stack trace to err.
// stackSkip is the number of frames to ascend, where 0 is the caller
// of wrap.
func wrap(err error, msg string, stackSkip int) error {
	if err == nil {
		return nil
	}

	werr, ok := err.(wrapperError)
	if !ok {
		werr.root = err
		werr.msg = err.Error()
		werr.stack = getStack(stackSkip+2, stackTraceSize)
	}
	if msg != "" {
		werr.msg = msg + ": " + werr.msg
	}

	return werr
}

// Wrap adds a context message and stack trace to err.
// Arguments are handled as in fmt.Print.
// Wrap returns nil if err is nil.
func Wrap(err error, a ...interface{}) error {
	return wrap(err, fmt.Sprint(a...), 1)
}

// Wrapf is like Wrap, but arguments are handled as in fmt.Printf.
func Wrapf(err error, format string, a ...interface{}) error {
	return wrap(err, fmt.Sprintf(format, a...), 1)
}

// WithDetail returns err with text added both as a context message
// and as a detail retrievable with Detail.
func WithDetail(err error, text string) error {
	if err == nil {
		return nil
	}
	if text == "" {
		return err
	}
	e1 := wrap(err, text, 1).(wrapperError)
	e1.detail = append(e1.detail, text)
	return e1
}

// WithDetailf is like WithDetail, except it formats
// the detail message as in fmt.Printf.
func WithDetailf(err error, format string, v ...interface{}) error {
	if err == nil {
		return nil
	}
	text := fmt.Sprintf(format, v...)
	e1 := wrap(err, text, 1).(wrapperError)
	e1.detail = append(e1.detail, text)
	return e1
}

// Detail returns the detail messages contained in err, if any,
// joined with "; ".
func Detail(err error) string {
	wrapper, _ := err.(wrapperError)
	return strings.Join(wrapper.detail, "; ")
}

// WithData returns err annotated with the key-value pairs in keyval,
// merged over any data err already carries.
// Keyval takes the form
//
//	k1, v1, k2, v2, ...
//
// Keys must be strings.
func WithData(err error, keyval ...interface{}) error {
	if err == nil {
		return nil
	}
	if len(keyval)%2 != 0 {
		panic(fmt.Sprintf("errors.WithData: odd-length keyval %v", keyval))
	}
	newkv := make(map[string]interface{})
	for k, v := range Data(err) {
		newkv[k] = v
	}
	for i := 0; i < len(keyval); i += 2 {
		newkv[keyval[i].(string)] = keyval[i+1]
	}
	e1 := wrap(err, "", 1).(wrapperError)
	e1.data = newkv
	return e1
}

// Data returns the data items attached to err, if any.
func Data(err error) map[string]interface{} {
	wrapper, _ := err.(wrapperError)
	return wrapper.data
}

// Sub returns an error whose root is new and whose message, detail,
// data, and stack come from err. The replaced error stays reachable
// through Is and As.
// Sub returns nil if err is nil.
func Sub(new, err error) error {
	if err == nil {
		return nil
	}
	wErr := wrap(err, "", 1).(wrapperError)
	wErr.sub = wErr.root
	wErr.root = new
	wErr.msg = new.Error() + ": " + wErr.msg
	return wErr
}

const stackTraceSize = 10

// StackFrame represents a single entry in a stack trace.
type StackFrame struct {
	Func string
	File string
	Line int
}

// String satisfies the fmt.Stringer interface.
func (f StackFrame) String() string {
	return fmt.Sprintf("%s:%d - %s", f.File, f.Line, f.Func)
}

// Stack returns the stack trace recorded when err was first wrapped,
// or nil if err carries none.
func Stack(err error) []StackFrame {
	if wErr, ok := err.(wrapperError); ok {
		return wErr.stack
	}
	return nil
}

func getStack(skip int, size int) []StackFrame {
	var (
		pc    = make([]uintptr, size)
		calls = runtime.Callers(skip+1, pc)
		trace []StackFrame
	)
	if calls == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:calls])
	for {
		f, more := frames.Next()
		trace = append(trace, StackFrame{
			Func: f.Function,
			File: f.File,
			Line: f.Line,
		})
		if !more {
			break
		}
	}

	return trace
}
