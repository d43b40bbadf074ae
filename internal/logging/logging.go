package logging

import (
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	threshold = LevelWarning

	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	err     *log.Logger
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(os.Stderr, "D ", flags)
	info = log.New(os.Stderr, "I ", flags)
	warning = log.New(os.Stderr, "W ", flags)
	err = log.New(os.Stderr, "E ", flags)
}

// SetLevel discards all messages below the given level.
// Expected to be called once at startup, before any goroutines log.
func SetLevel(l Level) {
	threshold = l
}

func Debug(msg string, v ...interface{}) {
	if threshold <= LevelDebug {
		debug.Printf(msg, v...)
	}
}

func Info(msg string, v ...interface{}) {
	if threshold <= LevelInfo {
		info.Printf(msg, v...)
	}
}

func Warning(msg string, v ...interface{}) {
	if threshold <= LevelWarning {
		warning.Printf(msg, v...)
	}
}

func Error(msg string, v ...interface{}) {
	if threshold <= LevelError {
		err.Printf(msg, v...)
	}
}
