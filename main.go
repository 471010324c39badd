package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/course-sidebar/internal/app"
	"github.com/atomicstack/course-sidebar/internal/catalog"
	"github.com/atomicstack/course-sidebar/internal/config"
	"github.com/atomicstack/course-sidebar/internal/format/table"
	"github.com/atomicstack/course-sidebar/internal/logging"
	"github.com/atomicstack/course-sidebar/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// execute runs the command tree and maps failures to exit codes: 2 for
// configuration errors, 1 for everything else.
func execute(args, environ []string, stdout, stderr io.Writer) int {
	root := newRootCmd(args, environ)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if errors.Is(err, config.ErrInvalid) {
			fmt.Fprintf(stderr, "Configuration error: %v\n", err)
			return 2
		}
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(argv, environ []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "course-sidebar",
		Short:         "Browse a course catalog in a sidebar with an embedded content pane",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), argv, environ)
			if err != nil {
				return err
			}
			logging.Configure(cfg.Logging.FilePath)
			logging.SetTraceEnabled(cfg.Logging.Trace)
			traceStartup(cfg)
			return app.Run(cfg.App)
		},
	}
	config.Bind(root.Flags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	})
	root.AddCommand(newCatalogCmd(environ))
	return root
}

func newCatalogCmd(environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect course catalogs",
	}
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the configured catalog as an indented table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(cmd.Flags(), nil, environ)
			if err != nil {
				return err
			}
			cat, err := app.LoadCatalog(cfg.App.CatalogPath)
			if err != nil {
				return err
			}
			for _, line := range table.Format(table.CatalogRows(cat), nil) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	config.Bind(printCmd.Flags())
	validate := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a catalog file decodes and is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d nodes, %d roots)\n", args[0], cat.Len(), len(cat.Roots()))
			return nil
		},
	}
	cmd.AddCommand(printCmd, validate)
	return cmd
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
