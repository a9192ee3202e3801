package llm

import "errors"

// ErrValidation indicates a structurally valid document with missing
// required fields, empty required strings, or duplicate model names. Every
// finding reported by New wraps it.
var ErrValidation = errors.New("invalid llm configuration")
