package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Flow:
//	banner -> read line -> parse -(bad token)->	error message
//							-(no tokens)->	empty message
//							-(grades)->		count/sum/mean, status

func main() {
	if err := mainFunc(); err != nil {
		fmt.Printf("Failed: %#v", err)
		os.Exit(1)
	}
}

func mainFunc() error {
	logfile := parseFlags(os.Args[1:])

	logger, err := newLogger(logfile)
	if err != nil {
		return xerrors.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	sl := logger.Sugar()

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	if err := Run(os.Stdin, stdout, sl); err != nil {
		return xerrors.Errorf("run: %w", err)
	}
	if err := stdout.Flush(); err != nil {
		return xerrors.Errorf("stdout: %w", err)
	}
	return nil
}

// parseFlags returns the diagnostic log path. The program takes no
// arguments, so anything else on the command line is ignored.
func parseFlags(args []string) string {
	flags := pflag.NewFlagSet("gradeavg", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	logfile := flags.String("log", "", "Write diagnostic log to this file")
	flags.MarkHidden("log")
	if err := flags.Parse(args); err != nil {
		// -h or a bare --log
		return ""
	}
	return *logfile
}

func newLogger(filename string) (*zap.Logger, error) {
	if filename == "" {
		return zap.NewNop(), nil
	}
	logcfg := zap.NewDevelopmentConfig()
	logcfg.OutputPaths = []string{filename}
	return logcfg.Build()
}
