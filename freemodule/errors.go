// SPDX-License-Identifier: MIT
// Package freemodule: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// freemodule package. All operations return these sentinels (possibly
// wrapped with context via %w) and tests check them via errors.Is.

package freemodule

import "errors"

var (
	// ErrNilRing indicates that a Module constructor received a nil Ring.
	ErrNilRing = errors.New("freemodule: ring is nil")

	// ErrNilModule indicates that an Element was used before being created
	// by a Module (the zero Element), or a nil *Module was passed in.
	ErrNilModule = errors.New("freemodule: module is nil")

	// ErrEmptyIndex indicates an empty string used as a basis index.
	ErrEmptyIndex = errors.New("freemodule: basis index is empty")

	// ErrDuplicateIndex indicates a repeated index in a finite basis.
	ErrDuplicateIndex = errors.New("freemodule: duplicate basis index")

	// ErrUnknownIndex indicates an index outside a finite module's basis.
	ErrUnknownIndex = errors.New("freemodule: unknown basis index")

	// ErrModuleMismatch indicates an operation mixing elements of two
	// modules with no registered embedding between them.
	ErrModuleMismatch = errors.New("freemodule: elements belong to different modules")

	// ErrNilMorphism indicates a nil map function or endpoint passed to
	// NewMorphism or RegisterEmbedding.
	ErrNilMorphism = errors.New("freemodule: morphism is nil or incomplete")

	// ErrEmbeddingConflict indicates an attempt to register a second,
	// different embedding from the same domain module.
	ErrEmbeddingConflict = errors.New("freemodule: conflicting embedding already registered")
)
