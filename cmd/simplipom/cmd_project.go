package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/simplipom/project"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [dir]",
		Short: "Show project structure",
		Long:  `Display the build units found by following <modules>, in build order.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runProject(dir)
		},
	}

	return cmd
}

func runProject(dir string) error {
	proj, err := project.LoadFrom(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", proj.Root.Coordinate())
	fmt.Printf("Root:    %s\n", proj.RootDir)
	fmt.Printf("\nModules:\n")

	for _, mod := range proj.ModulesInOrder() {
		fmt.Printf("  %s\n", mod.Coordinate())
		fmt.Printf("    pom: %s\n", mod.POMFile)
		if len(mod.Dependencies) > 0 {
			fmt.Printf("    needs: %s\n", strings.Join(mod.Dependencies, ", "))
		}
	}

	return nil
}
