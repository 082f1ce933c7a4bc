package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/simplipom/pom"
	"github.com/dhamidi/simplipom/simplify"
)

func newModeCmd() *cobra.Command {
	var opts settingsFlags

	cmd := &cobra.Command{
		Use:   "mode [pom.xml|dir|groupId:artifactId:version]",
		Short: "Show the simplify mode picked for a descriptor",
		Long: `Show the simplify mode picked for a descriptor and why.

A coordinate is resolved against the remote repository.

Examples:
  simplipom mode
  simplipom mode org.springframework.boot:spring-boot-dependencies:3.2.0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd.Context(), &opts, args)
		},
	}

	opts.bind(cmd.Flags())
	return cmd
}

func runMode(ctx context.Context, opts *settingsFlags, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var r *pom.Resolved
	mode := ""
	if len(args) > 0 && isCoordinate(args[0]) {
		groupID, artifactID, version, _, err := pom.ParseCoordinate(args[0])
		if err != nil {
			return err
		}
		s, err := opts.settings(".", nil)
		if err != nil {
			return err
		}
		r, err = opts.loader(s).LoadRemote(ctx, groupID, artifactID, version)
		if err != nil {
			return err
		}
		mode = s.Mode
	} else {
		path, err := pomPath(args)
		if err != nil {
			return err
		}
		resolved, s, err := opts.load(ctx, path)
		if err != nil {
			return err
		}
		r, mode = resolved, s.Mode
	}

	c := simplify.Classify(mode, r.Effective)
	fmt.Printf("Project: %s\n", r.Effective)
	fmt.Printf("Mode:    %s\n", c.Mode)
	fmt.Printf("Reason:  %s\n", c.Reason)
	for _, w := range c.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	return nil
}

// isCoordinate reports whether arg names an artifact rather than a path.
func isCoordinate(arg string) bool {
	if _, err := os.Stat(arg); err == nil {
		return false
	}
	return strings.Count(arg, ":") >= 2
}
