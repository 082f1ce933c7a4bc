package simplify

import (
	"strings"

	"github.com/dhamidi/simplipom/pom"
)

type Strategy int

const (
	// StrategyAuto uses project properties while the descriptor still
	// inherits or has nothing to substitute, literal substitution otherwise.
	StrategyAuto Strategy = iota
	StrategyProjectProperty
	StrategyLiteral
)

func (s Strategy) String() string {
	switch s {
	case StrategyProjectProperty:
		return "project-property"
	case StrategyLiteral:
		return "literal"
	default:
		return "auto"
	}
}

// Variables resolves ${...} placeholders against the effective model.
type Variables struct {
	project    *pom.Project
	parentID   identity
	properties *pom.Properties
}

type identity struct {
	groupID, artifactID, version string
}

func NewVariables(r *pom.Resolved) *Variables {
	eff := r.Effective
	self := identity{eff.GroupID, eff.ArtifactID, eff.Version}
	parent := self
	switch {
	case r.Parent != nil && r.Parent.Effective != nil:
		pe := r.Parent.Effective
		parent = identity{pe.GroupID, pe.ArtifactID, pe.Version}
	case eff.Parent != nil:
		parent = identity{eff.Parent.GroupID, eff.Parent.ArtifactID, eff.Parent.Version}
	}
	return &Variables{project: eff, parentID: parent, properties: eff.Properties}
}

// ProjectProperty resolves the project and parent identity keys. Any other
// key is returned unchanged.
func (v *Variables) ProjectProperty(key string) string {
	if key == "" {
		return key
	}
	name := strings.ToLower(key)
	if strings.HasPrefix(name, "${") && strings.HasSuffix(name, "}") {
		name = name[2 : len(name)-1]
	}

	switch name {
	case "project.groupid":
		return v.project.GroupID
	case "project.artifactid":
		return v.project.ArtifactID
	case "project.version":
		return v.project.Version
	case "project.parent.groupid", "parent.groupid":
		return v.parentID.groupID
	case "project.parent.artifactid", "parent.artifactid":
		return v.parentID.artifactID
	case "project.parent.version", "parent.version":
		return v.parentID.version
	default:
		return key
	}
}

// Property looks key up as a project property first, then among the
// effective declared properties.
func (v *Variables) Property(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	if value := v.ProjectProperty(key); value != key {
		return value, true
	}
	return v.properties.Get(key)
}

// Replace substitutes every ${name} span. Unresolved names become empty.
// Scanning resumes after each inserted value, so a value that itself
// contains a placeholder is not expanded again.
func (v *Variables) Replace(s string) string {
	pos := 0
	for {
		start := strings.Index(s[pos:], "${")
		if start < 0 {
			return s
		}
		start += pos
		end := strings.IndexByte(s[start+2:], '}')
		if end < 0 {
			return s
		}
		end += start + 2

		value, _ := v.Property(strings.TrimSpace(s[start+2 : end]))
		value = strings.TrimSpace(value)
		s = s[:start] + value + s[end+1:]
		pos = start + len(value)
	}
}
