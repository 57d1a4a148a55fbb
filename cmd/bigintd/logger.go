package main

import (
	"fmt"
	"log"
)

type Logger struct {
	reset   string
	message string
}

func Log() *Logger {
	return &Logger{
		reset:   "\033[0m",
		message: "[%c] %-12s%s",
	}
}

func (lg *Logger) Warning(name string, format string, args ...any) {
	colorYellow := "\033[33m"
	log.Printf(colorYellow+lg.message+lg.reset,
		'W', name, fmt.Sprintf(format, args...))
}

func (lg *Logger) Error(name string, format string, args ...any) {
	colorRed := "\033[31m"
	log.Printf(colorRed+lg.message+lg.reset,
		'E', name, fmt.Sprintf(format, args...))
}

func (lg *Logger) Info(name string, format string, args ...any) {
	log.Printf(lg.message+lg.reset,
		'I', name, fmt.Sprintf(format, args...))
}
