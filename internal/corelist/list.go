// Package corelist implements a small accumulating error list, modeled on
// the Error/List/Append/Promote idiom used throughout cuelang.org/go/cue/errors
// call sites (cmd/cue/cmd's Command.addErr, tools/flow's Workflow.addErr):
// a resolution or evaluation pass may discover more than one independent
// problem before it has to abort, and callers want all of them at once
// rather than only the first.
package corelist

import (
	"fmt"
	"strings"
)

// Code identifies the kind of problem an Error reports.
type Code string

const (
	StaticFacetViolation Code = "StaticFacetViolation"
	MissingFacetData     Code = "MissingFacetData"
	CyclicDependency     Code = "CyclicDependency"
	InvalidDependency    Code = "InvalidDependency"
)

// Error is a single positioned diagnostic. Position here is a short tag
// naming where the problem was found (a constructor name such as
// "computedFacet", the Go type of an invalid dependency, or empty),
// rather than a source location — this core has no source text, only a
// compiled tree.
type Error struct {
	Code Code
	At   string
	Msg  string
}

func (e *Error) Error() string {
	if e.At == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.At, e.Msg)
}

// New builds a single Error.
func New(code Code, at, msg string) *Error {
	return &Error{Code: code, At: at, Msg: msg}
}

// List accumulates multiple Errors into one error value, preserving the
// order they were appended.
type List struct {
	errs []*Error
}

func (l *List) Error() string {
	parts := make([]string, len(l.errs))
	for i, e := range l.errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}

// Len reports how many errors have been appended.
func (l *List) Len() int { return len(l.errs) }

// Append records err into the list. A nil err is a no-op, mirroring
// cue/errors.Append's treatment of nil.
func Append(l *List, err *Error) *List {
	if err == nil {
		return l
	}
	if l == nil {
		l = &List{}
	}
	l.errs = append(l.errs, err)
	return l
}

// AsError returns l as an error, or nil if it is empty — the same
// nil-means-no-error convention cue/errors.Error lists follow.
func (l *List) AsError() error {
	if l == nil || len(l.errs) == 0 {
		return nil
	}
	return l
}

// First returns the first accumulated Error, or nil.
func (l *List) First() *Error {
	if l == nil || len(l.errs) == 0 {
		return nil
	}
	return l.errs[0]
}
