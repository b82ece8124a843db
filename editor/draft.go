// Package editor implements the style editing sessions behind the admin
// forms. Each editor copies a record into a local draft, tracks whether the
// draft differs from its source and either commits it through the owning
// store or discards it.
package editor

import (
	"errors"
	"reflect"

	"github.com/mitchellh/hashstructure/v2"
)

var (
	ErrClosed       = errors.New("editor is closed")
	ErrNotConfirmed = errors.New("action not confirmed")
)

// Confirmer gates destructive actions. Declining leaves state untouched.
type Confirmer interface {
	Confirm(action string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(action string) bool

func (f ConfirmFunc) Confirm(action string) bool { return f(action) }

// Always and Never are fixed Confirmers.
var (
	Always Confirmer = ConfirmFunc(func(string) bool { return true })
	Never  Confirmer = ConfirmFunc(func(string) bool { return false })
)

// Draft is an uncommitted copy of a record of type T.
type Draft[T any] struct {
	source T
	value  T
	commit func(T) error
	closed bool
}

func newDraft[T any](source, value T, commit func(T) error) *Draft[T] {
	return &Draft[T]{source: source, value: value, commit: commit}
}

// Value returns the current draft.
func (d *Draft[T]) Value() T { return d.value }

// Source returns the record the draft was opened from.
func (d *Draft[T]) Source() T { return d.source }

// Closed reports whether the draft was committed or discarded.
func (d *Draft[T]) Closed() bool { return d.closed }

// Dirty reports whether the draft differs structurally from its source.
func (d *Draft[T]) Dirty() bool {
	return !equal(d.source, d.value)
}

// Commit writes the whole draft through the owner and closes the editor.
// On error the draft stays open so the user can retry or discard.
func (d *Draft[T]) Commit() error {
	if d.closed {
		return ErrClosed
	}
	if err := d.commit(d.value); err != nil {
		return err
	}
	d.source = d.value
	d.closed = true
	return nil
}

// Discard drops the draft without persisting anything.
func (d *Draft[T]) Discard() {
	d.value = d.source
	d.closed = true
}

func (d *Draft[T]) set(fn func(v *T) error) error {
	if d.closed {
		return ErrClosed
	}
	next := d.value
	if err := fn(&next); err != nil {
		return err
	}
	d.value = next
	return nil
}

func equal(a, b any) bool {
	ha, errA := hashstructure.Hash(a, hashstructure.FormatV2, nil)
	hb, errB := hashstructure.Hash(b, hashstructure.FormatV2, nil)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return ha == hb
}
