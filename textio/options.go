// SPDX-License-Identifier: MIT

// Package textio: functional configuration for the whitespace-token text codec.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper enforcing invariants.
//
// Defaults reproduce the container stream format exactly: elements separated by a
// single space, formatted with %v, and one newline after every matrix row.
package textio

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator is written between two adjacent elements of a row.
	DefaultSeparator = " "

	// DefaultVerb formats a single element.
	DefaultVerb = "%v"

	// DefaultRowTerminator is written after every matrix row.
	DefaultRowTerminator = "\n"
)

const (
	panicSeparatorInvalid  = "textio: WithSeparator: separator must be non-empty whitespace"
	panicVerbInvalid       = "textio: WithVerb: verb must be a single fmt verb starting with '%'"
	panicTerminatorInvalid = "textio: WithRowTerminator: terminator must contain a newline"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	sep        string // DefaultSeparator
	verb       string // DefaultVerb
	terminator string // DefaultRowTerminator
}

// WithSeparator sets the element separator. Only whitespace is accepted so that
// the output stays readable by the whitespace-token reader.
func WithSeparator(sep string) Option {
	if sep == "" || strings.TrimSpace(sep) != "" {
		panic(panicSeparatorInvalid)
	}

	return func(o *Options) { o.sep = sep }
}

// WithVerb sets the fmt verb used per element, e.g. "%g" or "%.3f".
func WithVerb(verb string) Option {
	if len(verb) < 2 || verb[0] != '%' || strings.Count(verb, "%") != 1 {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}

// WithRowTerminator sets the string written after every matrix row.
func WithRowTerminator(term string) Option {
	if !strings.Contains(term, "\n") || strings.TrimSpace(term) != "" {
		panic(panicTerminatorInvalid)
	}

	return func(o *Options) { o.terminator = term }
}

// Separator reports the effective element separator.
func (o Options) Separator() string { return o.sep }

// Verb reports the effective element verb.
func (o Options) Verb() string { return o.verb }

// RowTerminator reports the effective row terminator.
func (o Options) RowTerminator() string { return o.terminator }

func defaultOptions() Options {
	return Options{
		sep:        DefaultSeparator,
		verb:       DefaultVerb,
		terminator: DefaultRowTerminator,
	}
}

// NewOptions resolves user options on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
