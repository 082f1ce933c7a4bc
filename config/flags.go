package config

import (
	"strconv"

	"github.com/spf13/pflag"
)

// triState is a boolean flag that distinguishes "not given" from false.
type triState struct {
	value **bool
}

func (t triState) String() string {
	if t.value == nil || *t.value == nil {
		return ""
	}
	return strconv.FormatBool(**t.value)
}

func (t triState) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*t.value = &v
	return nil
}

func (t triState) Type() string { return "bool" }

// BindFlags registers the command line settings on fs, writing into s.
// Use Overlay after parsing to apply only the flags the user gave.
func BindFlags(fs *pflag.FlagSet, s *Settings) {
	fs.StringVarP(&s.Mode, "mode", "m", s.Mode, "simplify mode: auto, noop, jar, war, pom, maven-plugin, dependencies, bom, starter, shade")
	fs.BoolVar(&s.Skip, "skip", s.Skip, "do nothing")

	triFlag(fs, &s.RemoveParent, "remove-parent", "remove the parent declaration (default: decided by the mode)")
	fs.BoolVar(&s.OpenSourceProject, "open-source", s.OpenSourceProject, "copy the project info an open source project must publish from the parents")
	triFlag(fs, &s.KeepProvidedDependencies, "keep-provided", "keep provided dependencies")
	triFlag(fs, &s.KeepOptionalDependencies, "keep-optional", "keep optional dependencies")
	triFlag(fs, &s.KeepTestDependencies, "keep-test", "keep test dependencies")

	fs.StringSliceVar(&s.ExcludeDependencies, "exclude", s.ExcludeDependencies, "groupId:artifactId:version patterns of dependencies to drop")
	fs.StringSliceVar(&s.RemoveLocalProperties, "remove-property", s.RemoveLocalProperties, "properties to remove from the output")
	fs.BoolVar(&s.ExpandImportDependencyManagement, "expand-import", s.ExpandImportDependencyManagement, "inline imported BOMs in bom mode")
	fs.StringVar(&s.ArtifactNameTemplate, "name-template", s.ArtifactNameTemplate, "template for the <name> element, e.g. ${project.groupId}:${project.artifactId}")

	fs.StringVarP(&s.SimplifiedPomFileName, "output", "o", s.SimplifiedPomFileName, "file name of the simplified descriptor")
	fs.StringVar(&s.OutputDirectory, "output-dir", s.OutputDirectory, "directory for the simplified descriptor (default: next to the input)")
	fs.StringVar(&s.FileComment, "comment", s.FileComment, "comment written after the XML declaration")
	fs.BoolVar(&s.UseTabIndent, "tabs", s.UseTabIndent, "indent the output with tabs")

	fs.StringToStringVarP(&s.Properties, "define", "D", s.Properties, "user property name=value")
	fs.StringVar(&s.RepoURL, "repo", s.RepoURL, "remote repository for parents and imported BOMs")
	fs.BoolVar(&s.Offline, "offline", s.Offline, "never fetch from the remote repository")
}

func triFlag(fs *pflag.FlagSet, dst **bool, name, usage string) {
	fs.VarPF(triState{dst}, name, "", usage).NoOptDefVal = "true"
}

// Overlay copies into dst the settings whose flags were set on fs. flags
// holds the values BindFlags wrote.
func Overlay(dst *Settings, flags *Settings, fs *pflag.FlagSet) {
	copies := map[string]func(){
		"mode":            func() { dst.Mode = flags.Mode },
		"skip":            func() { dst.Skip = flags.Skip },
		"remove-parent":   func() { dst.RemoveParent = flags.RemoveParent },
		"open-source":     func() { dst.OpenSourceProject = flags.OpenSourceProject },
		"keep-provided":   func() { dst.KeepProvidedDependencies = flags.KeepProvidedDependencies },
		"keep-optional":   func() { dst.KeepOptionalDependencies = flags.KeepOptionalDependencies },
		"keep-test":       func() { dst.KeepTestDependencies = flags.KeepTestDependencies },
		"exclude":         func() { dst.ExcludeDependencies = flags.ExcludeDependencies },
		"remove-property": func() { dst.RemoveLocalProperties = flags.RemoveLocalProperties },
		"expand-import":   func() { dst.ExpandImportDependencyManagement = flags.ExpandImportDependencyManagement },
		"name-template":   func() { dst.ArtifactNameTemplate = flags.ArtifactNameTemplate },
		"output":          func() { dst.SimplifiedPomFileName = flags.SimplifiedPomFileName },
		"output-dir":      func() { dst.OutputDirectory = flags.OutputDirectory },
		"comment":         func() { dst.FileComment = flags.FileComment },
		"tabs":            func() { dst.UseTabIndent = flags.UseTabIndent },
		"repo":            func() { dst.RepoURL = flags.RepoURL },
		"offline":         func() { dst.Offline = flags.Offline },
	}
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := copies[f.Name]; ok {
			apply()
			return
		}
		if f.Name == "define" {
			if dst.Properties == nil {
				dst.Properties = make(map[string]string, len(flags.Properties))
			}
			for k, v := range flags.Properties {
				dst.Properties[k] = v
			}
		}
	})
}
