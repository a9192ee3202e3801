package config

import "errors"

var (
	// ErrNotFound indicates that no candidate file existed. Callers decide
	// whether absence is fatal; Load itself treats it as an empty document.
	ErrNotFound = errors.New("no configuration file found")
	// ErrParse indicates the file exists but is not valid YAML, or its top
	// level is not a mapping.
	ErrParse = errors.New("cannot parse configuration file")
)
