// The logging package provides the shared loggers used across glkit.
// ErrLog is used for errors that the caller can't recover from, WarnLog
// for ignored operations and suspicious state, and InfoLog for the rest.
package logging

import (
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "[Info] ", log.LstdFlags|log.Lshortfile)
	WarnLog = log.New(os.Stdout, "[Warn] ", log.LstdFlags|log.Lshortfile)
	ErrLog  = log.New(os.Stderr, "[Error] ", log.LstdFlags|log.Lshortfile)
)
