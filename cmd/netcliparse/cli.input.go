package main

import (
	"io"
	"os"
)

// readInput reads content from a file, or from stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin || path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes content to a file, or to stdout when path is "-".
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput || path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, FilePermissions)
}
