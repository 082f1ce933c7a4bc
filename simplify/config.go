package simplify

import (
	"github.com/dhamidi/simplipom/match"
	"github.com/dhamidi/simplipom/pom"
)

// The build plugin whose configuration block carries settings for this
// tool inside a descriptor.
const (
	ToolPluginGroupID    = "icu.easyj.maven.plugins"
	ToolPluginArtifactID = "easyj-maven-plugin"
)

const ModeAuto = "auto"

// Config is built once per run and never modified by the simplifier.
type Config struct {
	Mode string

	// RemoveParent nil means "policy decides": the parent is removed by
	// every policy except noop. An explicit true makes noop remove it too.
	RemoveParent *bool

	OpenSourceProject bool

	// Unset keep flags take the policy default.
	KeepProvidedDependencies *bool
	KeepOptionalDependencies *bool
	KeepTestDependencies     *bool

	// ExcludeDependencies are patterns matched against groupId:artifactId:version.
	ExcludeDependencies []string

	RemoveLocalProperties []string
	CreateProperties      *pom.Properties

	ExpandImportDependencyManagement bool
	ArtifactNameTemplate             string
}

func DefaultConfig() Config {
	return Config{
		Mode:              ModeAuto,
		OpenSourceProject: true,
	}
}

func (c Config) isExcluded(d pom.Dependency) bool {
	return match.MatchAny(c.ExcludeDependencies, d.GroupID+":"+d.ArtifactID+":"+d.Version)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
