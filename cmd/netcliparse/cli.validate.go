package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alaineid/netcli-parse/internal/textfsm"
)

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	path, err := parseValidateArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplateArg, err)
		return ExitCodeUsageError
	}

	source, err := readInput(path, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	if _, err := textfsm.Compile(string(source), nil); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgTemplateInvalid, err)
		return ExitCodeParseError
	}

	return ExitCodeSuccess
}

func parseValidateArgs(args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New(ErrMsgMissingTemplateArg)
	}
	return args[0], nil
}
