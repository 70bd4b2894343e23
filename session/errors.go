// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction wraps unrecoverable problems building a session:
	// invalid cloud shape, non-prime coefficient field, bad landmark count.
	ErrConstruction = errors.New("session: construction failed")

	// ErrMalformedSeed marks a seed value that cannot be coerced to its type
	// or lies outside its domain. The key is dropped and the default used.
	ErrMalformedSeed = errors.New("session: malformed seed value")

	// ErrUnknownKey marks a seed key this schema does not recognize.
	ErrUnknownKey = errors.New("session: unknown seed key")

	// ErrNewerSchema marks a seed stamped with a schema version newer than
	// this build. Recognized keys are still honored.
	ErrNewerSchema = errors.New("session: seed from a newer schema version")

	// ErrInteractionAborted is returned by renderers when the view is
	// dismissed without accepting a selection.
	ErrInteractionAborted = errors.New("session: interaction aborted")

	// ErrNilRenderer indicates RenderInteractive was called without a renderer.
	ErrNilRenderer = errors.New("session: nil renderer")
)

// KeyIssue records what happened to one seed key.
type KeyIssue struct {
	Key string
	Err error
}

// Error implements error.
func (k KeyIssue) Error() string { return fmt.Sprintf("%s: %v", k.Key, k.Err) }

// Unwrap exposes the sentinel.
func (k KeyIssue) Unwrap() error { return k.Err }

func malformed(key string, format string, args ...any) KeyIssue {
	return KeyIssue{Key: key, Err: fmt.Errorf("%w: "+format, append([]any{ErrMalformedSeed}, args...)...)}
}
