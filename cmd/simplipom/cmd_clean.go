package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	var opts settingsFlags
	var recursive bool

	cmd := &cobra.Command{
		Use:   "clean [pom.xml|dir]",
		Short: "Delete the simplified descriptor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(&opts, args, recursive)
		},
	}

	opts.bind(cmd.Flags())
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "clean every module listed under <modules>")

	return cmd
}

func runClean(opts *settingsFlags, args []string, recursive bool) error {
	path, err := pomPath(args)
	if err != nil {
		return err
	}
	modules, err := modulesOf(path, recursive)
	if err != nil {
		return err
	}

	var errs []error
	for _, m := range modules {
		s, err := opts.settings(m.Dir, m.Model)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if s.Skip {
			continue
		}

		file := outputPath(m, s)
		switch err := os.Remove(file); {
		case err == nil:
			fmt.Printf("Deleted %s\n", file)
		case errors.Is(err, os.ErrNotExist):
		default:
			errs = append(errs, fmt.Errorf("delete %s: %w", file, err))
		}
	}
	return errors.Join(errs...)
}
