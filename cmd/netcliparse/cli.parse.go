package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/alaineid/netcli-parse"
)

// parseConfig holds parsed "parse" command configuration.
type parseConfig struct {
	platform   string
	command    string
	inputPath  string
	outputPath string
}

func runParse(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseParseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitCodeUsageError
	}

	raw, err := readInput(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	envelope := netcli.ParseCommandJSON(context.Background(), cfg.platform, cfg.command, string(raw))

	if err := writeOutput(cfg.outputPath, []byte(envelope+"\n"), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseParseFlags(args []string) (*parseConfig, error) {
	fs := flag.NewFlagSet(CmdNameParse, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &parseConfig{}

	fs.StringVar(&cfg.platform, FlagPlatform, "", "")
	fs.StringVar(&cfg.platform, FlagPlatformShort, "", "")
	fs.StringVar(&cfg.command, FlagCommand, "", "")
	fs.StringVar(&cfg.command, FlagCommandShort, "", "")
	fs.StringVar(&cfg.inputPath, FlagFile, InputSourceStdin, "")
	fs.StringVar(&cfg.inputPath, FlagFileShort, InputSourceStdin, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.platform == "" {
		return nil, errors.New(ErrMsgMissingPlatform)
	}
	if cfg.command == "" {
		return nil, errors.New(ErrMsgMissingCommand)
	}

	return cfg, nil
}
