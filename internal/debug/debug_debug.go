//go:build debug

// Package debug provides tracing that is only compiled in with -tags debug.
package debug

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "csvcut debug: ", log.Lmicroseconds)

func Printf(msg string, args ...any) {
	logger.Printf(msg, args...)
}

const On = true
