package model

import "errors"

// Error categories surfaced by the pipeline. Callers match with errors.Is.
var (
	ErrFileIO          = errors.New("file io error")
	ErrDiff            = errors.New("image diff error")
	ErrTemplateRender  = errors.New("template render error")
	ErrPathResolution  = errors.New("path resolution error")
	ErrUnknown         = errors.New("unknown error")
	ErrChangesDetected = errors.New("changes detected")
)
