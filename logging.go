package main

import (
	"fmt"
	"log"
	"os"
)

// setupLogging points the std logger at path, keeping the previous run's
// log as path.1. A path of "-" logs to stderr and returns a nil file.
func setupLogging(path string) (*os.File, error) {
	switch path {
	case "":
		return nil, fmt.Errorf("log file path is empty")
	case "-":
		log.SetOutput(os.Stderr)
		return nil, nil
	}

	if err := rotateLog(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	log.SetOutput(f)
	return f, nil
}

func rotateLog(path string) error {
	_ = os.Remove(path + ".1")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := os.Rename(path, path+".1"); err != nil {
		return fmt.Errorf("failed to rotate existing log: %w", err)
	}
	return nil
}
