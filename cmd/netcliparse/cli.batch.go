package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alaineid/netcli-parse"
)

// batchJob is one entry in a jobs.yaml manifest (spec.md's ambient CLI
// convenience, not part of the FFI surface).
type batchJob struct {
	Platform string `yaml:"platform"`
	Command  string `yaml:"command"`
	File     string `yaml:"file"`
}

func runBatch(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, ErrMsgMissingJobsFile)
		return ExitCodeUsageError
	}

	jobsPath := args[0]
	data, err := os.ReadFile(jobsPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	var jobs []batchJob
	if err := yaml.Unmarshal(data, &jobs); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidJobsYAML, err)
		return ExitCodeInputError
	}

	ctx := context.Background()
	exitCode := ExitCodeSuccess
	for _, job := range jobs {
		output, err := runBatchJob(ctx, job)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgReadFileFailed, err.Error())
			exitCode = ExitCodeParseError
			continue
		}
		fmt.Fprintln(stdout, output)
	}

	return exitCode
}

// runBatchJob reads one job's input file and parses it; the returned
// string is always the JSON envelope (a job's own parse failure is
// folded into the envelope, not returned as err) — err here only
// signals that the job's input file itself could not be read.
func runBatchJob(ctx context.Context, job batchJob) (string, error) {
	if job.File == "" {
		return "", errors.New(ErrMsgMissingJobFile)
	}
	raw, err := os.ReadFile(job.File)
	if err != nil {
		return "", err
	}
	return netcli.ParseCommandJSON(ctx, job.Platform, job.Command, string(raw)), nil
}
