package simplify

import (
	"strings"

	"github.com/dhamidi/simplipom/pom"
)

func (s *Simplifier) RemoveDependencyManagement() {
	s.ResetDependencies()
	if s.original.DependencyManagement != nil {
		s.log.Info("Remove DependencyManagement.")
		s.original.DependencyManagement = nil
	}
}

// ResetDependencyManagement replaces the declared management with a copy
// of the effective one, which includes imported BOM entries.
func (s *Simplifier) ResetDependencyManagement() {
	managed := s.effective.ManagedDependencies()
	if len(managed) == 0 {
		s.warnf("In BOM mode, the <dependencyManagement> cannot be null or empty, otherwise the POM will be meaningless.")
		return
	}
	if !s.config.ExpandImportDependencyManagement {
		return
	}

	s.log.Infof("Reset DependencyManagement: %d -> %d", len(s.original.ManagedDependencies()), len(managed))
	deps := make([]pom.Dependency, len(managed))
	for i, d := range managed {
		deps[i] = copyDependency(d)
	}
	s.original.DependencyManagement = &pom.DependencyManagement{Dependencies: deps}
}

func (s *Simplifier) OptimizeDependencyManagement() {
	deps := s.original.ManagedDependencies()
	if len(deps) == 0 {
		return
	}
	s.log.Infof("Optimize DependencyManagement: (%d)", len(deps))
	s.optimize(deps)
}

func (s *Simplifier) RemoveDependencies() {
	if len(s.original.Dependencies) > 0 {
		s.log.Info("Remove Dependencies.")
		s.original.Dependencies = nil
	}
}

// ResetDependencies aligns the declared dependencies with the effective
// list position by position. Matching entries take their coordinates from
// the effective entry or are dropped by the removal rules. A declared entry
// that does not match is dropped and the next one is tried against the same
// effective entry. Effective entries left over are appended.
func (s *Simplifier) ResetDependencies() {
	if s.dependenciesReset {
		return
	}
	s.dependenciesReset = true
	if s.policy.KeepDeclaredDependencies {
		s.filterDeclaredDependencies()
		return
	}

	declared := s.original.Dependencies
	if len(declared) == 0 {
		return
	}
	s.log.Infof("Reset dependencies: groupId, version, exclusions (Contains %d dependencies)", len(declared))

	out := make([]pom.Dependency, 0, len(s.effective.Dependencies))
	n := 0
	for _, dep := range s.effective.Dependencies {
		matched := false
		for n < len(declared) {
			od := declared[n]
			n++
			before := od.String()
			od.GroupID = s.vars.Replace(od.GroupID)
			od.ArtifactID = s.vars.Replace(od.ArtifactID)

			if od.GroupID != dep.GroupID || od.ArtifactID != dep.ArtifactID {
				s.log.Infof("  Remove duplicate dependency: %s", before)
				continue
			}
			matched = true

			if cause := s.removalCause(dep); cause != "" {
				s.log.Infof("  Remove dependency by %s: %s", cause, dep)
				break
			}
			od.Version = dep.Version
			od.Type = dep.Type
			od.Classifier = dep.Classifier
			od.Scope = normalizeScope(dep.Scope)
			od.Optional = normalizeOptional(dep)
			od.SystemPath = dep.SystemPath
			od.Exclusions = cloneExclusions(dep.Exclusions)
			s.log.Infof("  Reset dependency: %s -> %s", before, od)
			out = append(out, od)
			break
		}
		if matched {
			continue
		}

		if cause := s.removalCause(dep); cause == "" {
			added := copyDependency(dep)
			s.log.Infof("  Add dependency: %s", added)
			out = append(out, added)
		}
	}
	for ; n < len(declared); n++ {
		s.log.Infof("  Remove dependency missing from the effective model: %s", declared[n])
	}

	s.original.Dependencies = out
	s.log.Infof("Remaining %d dependencies.", len(out))
}

// filterDeclaredDependencies applies the removal rules to the declared
// list without aligning it to the effective one.
func (s *Simplifier) filterDeclaredDependencies() {
	declared := s.original.Dependencies
	if len(declared) == 0 {
		return
	}

	out := make([]pom.Dependency, 0, len(declared))
	for _, od := range declared {
		d := od
		d.GroupID = s.vars.Replace(d.GroupID)
		d.ArtifactID = s.vars.Replace(d.ArtifactID)
		d.Version = s.vars.Replace(d.Version)
		d.Scope = s.vars.Replace(d.Scope)
		d.Optional = s.vars.Replace(d.Optional)
		if cause := s.removalCause(d); cause != "" {
			s.log.Infof("  Remove dependency by %s: %s", cause, od)
			continue
		}
		out = append(out, od)
	}
	s.original.Dependencies = out
}

func (s *Simplifier) OptimizeDependencies() {
	if len(s.original.Dependencies) == 0 {
		return
	}
	s.log.Infof("Optimize Dependencies: (%d)", len(s.original.Dependencies))
	s.optimize(s.original.Dependencies)
}

func (s *Simplifier) optimize(deps []pom.Dependency) {
	resolve := s.resolver()
	for i := range deps {
		d := &deps[i]
		before := d.String()
		d.GroupID = resolve(d.GroupID)
		d.ArtifactID = resolve(d.ArtifactID)
		d.Version = resolve(d.Version)
		clearDefaults(d)
		if after := d.String(); after != before {
			s.log.Infof("  optimize dependency: %s -> %s", before, after)
		}
	}
}

// removalCause names the rule that drops d, or returns "".
func (s *Simplifier) removalCause(d pom.Dependency) string {
	switch {
	case !s.keepProvided() && strings.EqualFold(d.Scope, "provided"):
		return "scope=provided"
	case !s.keepTest() && strings.EqualFold(d.Scope, "test"):
		return "scope=test"
	case !s.keepOptional() && d.IsOptional():
		return "optional=true"
	case s.config.isExcluded(d):
		return "isExclude=true"
	}
	return ""
}

func copyDependency(d pom.Dependency) pom.Dependency {
	return pom.Dependency{
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Version:    d.Version,
		Type:       d.Type,
		Classifier: d.Classifier,
		Scope:      normalizeScope(d.Scope),
		SystemPath: d.SystemPath,
		Exclusions: cloneExclusions(d.Exclusions),
		Optional:   normalizeOptional(d),
	}
}

func cloneExclusions(e []pom.Exclusion) []pom.Exclusion {
	if len(e) == 0 {
		return nil
	}
	return append([]pom.Exclusion(nil), e...)
}

func normalizeScope(scope string) string {
	if strings.EqualFold(scope, "compile") {
		return ""
	}
	return scope
}

func normalizeOptional(d pom.Dependency) string {
	if d.IsOptional() {
		return "true"
	}
	return ""
}

func clearDefaults(d *pom.Dependency) {
	d.Scope = normalizeScope(d.Scope)
	if d.Optional != "" && !strings.EqualFold(d.Optional, "true") {
		d.Optional = ""
	}
}
