package simplify

import "strings"

// Revision is the placeholder commonly used for a version shared across
// the modules of a build.
const (
	Revision    = "${revision}"
	RevisionKey = "revision"
)

func (s *Simplifier) RemoveParent() {
	if s.original.Parent != nil && boolOr(s.config.RemoveParent, true) {
		s.log.Info("Remove Parent.")
		s.original.Parent = nil
	}
	s.ResetArtifactIdentification()
	s.ResetNameAndDescription()
}

// RemoveParentByConfig removes the parent only when the configuration asks
// for it explicitly.
func (s *Simplifier) RemoveParentByConfig() {
	if s.original.Parent != nil && boolOr(s.config.RemoveParent, false) {
		s.RemoveParent()
	}
}

func (s *Simplifier) ReplaceParentRevision() {
	if op := s.original.Parent; op != nil && op.Version == Revision && s.effective.Parent != nil {
		s.log.Infof("Set parent version from '%s' to '%s'.", op.Version, s.effective.Parent.Version)
		op.Version = s.effective.Parent.Version
	}

	if !s.original.Properties.Has(RevisionKey) {
		return
	}
	if v, _ := s.effective.Properties.Get(RevisionKey); v == s.effective.Version {
		s.log.Infof("Remove the special property '<%s>'.", RevisionKey)
		s.original.Properties.Delete(RevisionKey)
	}
}

func (s *Simplifier) RemoveParentRelativePath() {
	if s.original.Parent != nil && s.original.Parent.RelativePath != "" {
		s.log.Info("Remove Parent RelativePath.")
		s.original.Parent.RelativePath = ""
	}
}

// ResetArtifactIdentification copies groupId, artifactId, version and
// packaging from the effective model. groupId and version stay omitted
// while a parent link remains that provides the same values.
func (s *Simplifier) ResetArtifactIdentification() {
	s.RemoveGroupIDAndVersionIfEqualsToParent()

	eff, orig := s.effective, s.original
	inheritsGroupID, inheritsVersion := s.inheritsFromParent()

	if !inheritsGroupID && eff.GroupID != orig.GroupID {
		s.log.Infof("Set GroupId from '%s' to '%s'.", orig.GroupID, eff.GroupID)
		orig.GroupID = eff.GroupID
	}
	if eff.ArtifactID != orig.ArtifactID {
		s.log.Infof("Set ArtifactId from '%s' to '%s'.", orig.ArtifactID, eff.ArtifactID)
		orig.ArtifactID = eff.ArtifactID
	}
	if !inheritsVersion && eff.Version != orig.Version {
		s.log.Infof("Set Version from '%s' to '%s'.", orig.Version, eff.Version)
		orig.Version = eff.Version
	}
	if eff.Packaging != "" && eff.Packaging != orig.Packaging && !strings.EqualFold(eff.Packaging, "jar") {
		s.log.Infof("Set Packaging from '%s' to '%s'.", orig.Packaging, eff.Packaging)
		orig.Packaging = eff.Packaging
	}
}

func (s *Simplifier) RemoveGroupIDAndVersionIfEqualsToParent() {
	inheritsGroupID, inheritsVersion := s.inheritsFromParent()
	if inheritsGroupID && s.original.GroupID != "" {
		s.log.Info("Remove GroupId, because it's equal to the groupId of the parent.")
		s.original.GroupID = ""
	}
	if inheritsVersion && s.original.Version != "" {
		s.log.Info("Remove Version, because it's equal to the version of the parent.")
		s.original.Version = ""
	}
}

// inheritsFromParent reports whether the original still links a parent
// whose groupId and version equal the effective ones.
func (s *Simplifier) inheritsFromParent() (groupID, version bool) {
	parent := s.effective.Parent
	if s.original.Parent == nil || parent == nil {
		return false, false
	}
	return parent.GroupID == s.effective.GroupID, parent.Version == s.effective.Version
}

func (s *Simplifier) ResetNameAndDescription() {
	eff, orig := s.effective, s.original
	if eff.Name != "" && orig.Name != "" && eff.Name != orig.Name {
		s.log.Infof("Set Name from '%s' to '%s'.", orig.Name, eff.Name)
		orig.Name = eff.Name
	}
	if eff.Description != "" && orig.Description != "" && eff.Description != orig.Description {
		s.log.Infof("Set Description from '%s' to '%s'.", orig.Description, eff.Description)
		orig.Description = eff.Description
	}
}
