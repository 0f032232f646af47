package protocol

import "errors"

// errWrongLength is returned by Parse functions across the protocol/*
// packages when a payload's byte slice doesn't match its expected size.
var errWrongLength = errors.New("wrong length")

// ErrWrongLength is the exported form, for callers (notably pkg/handler)
// that need to recognize a size-mismatch failure specifically.
var ErrWrongLength = errWrongLength
