// qnamecheck validates XML qualified names given as arguments or read one
// per line from standard input.
//
// Usage:
//
//	qnamecheck [--format text|json|yaml] [--quiet] [--verbose] [name...]
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/qname"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// exitError carries the process exit code out of a cobra RunE handler.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// report is the per-name result written in json and yaml formats.
// Namespace and Local are set for valid names only; either may be present
// and empty.
type report struct {
	Name      string  `json:"name" yaml:"name"`
	Valid     bool    `json:"valid" yaml:"valid"`
	Namespace *string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Local     *string `json:"local,omitempty" yaml:"local,omitempty"`
	Error     string  `json:"error,omitempty" yaml:"error,omitempty"`
}

type options struct {
	format  string
	quiet   bool
	verbose bool
}

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			if exitErr.err != nil {
				_ = writef(stderr, "error: %v\n", exitErr.err)
			}
			return exitErr.code
		}
		_ = writef(stderr, "error: %v\n", err)
		return exitUsage
	}
	return exitOK
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "qnamecheck [name...]",
		Short: "Validate XML qualified names",
		Long: `qnamecheck validates XML qualified names (prefix:local or local).

Names are taken from the arguments, or read one per line from standard
input when no arguments are given. The exit status is 1 if any name is
invalid.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.verbose)
			switch opts.format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown format %q", opts.format)
			}
			names, err := collectNames(args, stdin)
			if err != nil {
				return &exitError{code: exitInvalid, err: err}
			}
			logger.Debug("checking names", "count", len(names), "format", opts.format)
			return check(names, opts, stdout, logger)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", formatText, "output format: text, json or yaml")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only print invalid names (text format)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "qnamecheck",
		Level:  level,
	})
}

func collectNames(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var names []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return names, nil
}

func check(names []string, opts options, stdout io.Writer, logger *log.Logger) error {
	reports := make([]report, 0, len(names))
	invalid := 0
	for _, name := range names {
		r := checkName(name)
		if !r.Valid {
			invalid++
			logger.Debug("invalid name", "name", name, "err", r.Error)
		}
		reports = append(reports, r)
	}

	if err := writeReports(stdout, reports, opts); err != nil {
		return &exitError{code: exitInvalid, err: fmt.Errorf("write output: %w", err)}
	}
	if invalid > 0 {
		logger.Warn("invalid names found", "invalid", invalid, "total", len(names))
		return &exitError{code: exitInvalid}
	}
	return nil
}

func checkName(name string) report {
	q, err := qname.Parse(name)
	if err != nil {
		return report{Name: name, Error: err.Error()}
	}
	local := q.LocalPart()
	r := report{Name: name, Valid: true, Local: &local}
	if ns, ok := q.Namespace(); ok {
		r.Namespace = &ns
	}
	return r
}

func writeReports(w io.Writer, reports []report, opts options) error {
	switch opts.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range reports {
			if r.Valid {
				if opts.quiet {
					continue
				}
				if err := writef(w, "%s validates\n", r.Name); err != nil {
					return err
				}
				continue
			}
			if err := writef(w, "%q: %s\n", r.Name, r.Error); err != nil {
				return err
			}
		}
		return nil
	}
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
