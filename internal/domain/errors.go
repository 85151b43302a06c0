package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrParse                = errors.New("unrecognized time specification")
	ErrConfirmationDeclined = errors.New("confirmation declined")
	ErrRenderDepMissing     = errors.New("render dependency missing")
	ErrInterrupted          = errors.New("interrupted")
	ErrNoAudioBackend       = errors.New("no audio backend available")
)
