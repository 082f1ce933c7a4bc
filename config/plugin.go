package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/simplipom/pom"
	"github.com/dhamidi/simplipom/simplify"
)

// PluginConfiguration returns the configuration block of the tool's plugin
// declared in p, looking at build plugins before plugin management.
func PluginConfiguration(p *pom.Project) *pom.Node {
	if p == nil || p.Build == nil {
		return nil
	}
	plugins := p.Build.Plugins
	if p.Build.PluginManagement != nil {
		plugins = append(append([]pom.Plugin(nil), plugins...), p.Build.PluginManagement.Plugins...)
	}
	for _, plugin := range plugins {
		if plugin.Is(simplify.ToolPluginGroupID, simplify.ToolPluginArtifactID) && plugin.Configuration != nil {
			return plugin.Configuration
		}
	}
	return nil
}

// FromProject overlays the tool's plugin configuration found in p onto s.
func FromProject(p *pom.Project, s *Settings) error {
	return FromPlugin(PluginConfiguration(p), s)
}

// FromPlugin overlays a plugin configuration block onto s. Unknown
// parameters are ignored. Invalid values are skipped and reported together
// in the returned error; the remaining parameters are still applied.
func FromPlugin(conf *pom.Node, s *Settings) error {
	if conf == nil {
		return nil
	}

	var errs []error
	boolean := func(n *pom.Node) (bool, bool) {
		v, err := strconv.ParseBool(strings.TrimSpace(n.Text))
		if err != nil {
			errs = append(errs, fmt.Errorf("<%s>: %q is not a boolean", n.Name, n.Text))
			return false, false
		}
		return v, true
	}
	triState := func(n *pom.Node, dst **bool) {
		if v, ok := boolean(n); ok {
			*dst = &v
		}
	}
	flag := func(n *pom.Node, dst *bool) {
		if v, ok := boolean(n); ok {
			*dst = v
		}
	}

	for _, n := range conf.Children {
		switch n.Name {
		case "mode":
			s.Mode = n.Text
		case "skip":
			flag(n, &s.Skip)
		case "removeParent":
			triState(n, &s.RemoveParent)
		case "isOpenSourceProject":
			flag(n, &s.OpenSourceProject)
		case "keepProvidedDependencies":
			triState(n, &s.KeepProvidedDependencies)
		case "keepOptionalDependencies":
			triState(n, &s.KeepOptionalDependencies)
		case "keepTestDependencies":
			triState(n, &s.KeepTestDependencies)
		case "excludeDependencies":
			s.ExcludeDependencies = listValue(n)
		case "removeLocalProperties":
			s.RemoveLocalProperties = listValue(n)
		case "createProperties":
			s.CreateProperties = nil
			for _, c := range n.Children {
				s.CreateProperties = append(s.CreateProperties, pom.Property{Key: c.Name, Value: c.Text})
			}
		case "expandImportDependencyManagement":
			flag(n, &s.ExpandImportDependencyManagement)
		case "artifactNameTemplate":
			s.ArtifactNameTemplate = n.Text
		case "simplifiedPomFileName":
			if n.Text != "" {
				s.SimplifiedPomFileName = n.Text
			}
		case "outputDirectory":
			s.OutputDirectory = n.Text
		case "fileComment":
			s.FileComment = n.Text
		case "useTabIndent":
			flag(n, &s.UseTabIndent)
		}
	}
	return errors.Join(errs...)
}

// listValue accepts both a comma separated text and one child element per
// item.
func listValue(n *pom.Node) []string {
	var raw []string
	if len(n.Children) > 0 {
		for _, c := range n.Children {
			raw = append(raw, c.Text)
		}
	} else {
		raw = strings.Split(n.Text, ",")
	}

	var out []string
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
