package simplify

import (
	"fmt"
	"strings"

	"github.com/dhamidi/simplipom/pom"
)

type Mode string

const (
	ModeNoop         Mode = "noop"
	ModeJar          Mode = "jar"
	ModeWar          Mode = "war"
	ModePom          Mode = "pom"
	ModeMavenPlugin  Mode = "maven-plugin"
	ModeDependencies Mode = "dependencies"
	ModeBom          Mode = "bom"
	ModeStarter      Mode = "starter"
	ModeShade        Mode = "shade"
)

var Modes = []Mode{
	ModeNoop, ModeJar, ModeWar, ModePom, ModeMavenPlugin,
	ModeDependencies, ModeBom, ModeStarter, ModeShade,
}

// ParseMode accepts any case and either '-' or '_' as separator. "none" is
// an alias for noop.
func ParseMode(s string) (Mode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if name == "none" {
		return ModeNoop, nil
	}
	for _, m := range Modes {
		if string(m) == name {
			return m, nil
		}
	}
	return ModeNoop, fmt.Errorf("unknown simplify mode %q", s)
}

type Classification struct {
	Mode     Mode
	Reason   string
	Warnings []string
}

// Classify picks the mode for a project. Mismatches between an explicit
// mode and the packaging are reported as warnings and the requested mode
// is kept.
func Classify(requested string, p *pom.Project) Classification {
	var c Classification
	packaging := p.EffectivePackaging()
	artifactID := p.ArtifactID
	modeStr := strings.TrimSpace(requested)

	if strings.EqualFold(modeStr, ModeAuto) {
		modeStr = ""
		switch {
		case isPackaging(packaging, "pom") && strings.HasSuffix(artifactID, "-bom"):
			modeStr = string(ModeBom)
			c.Reason = fmt.Sprintf("artifactId %q ends with \"-bom\"", artifactID)
		case isPackaging(packaging, "jar") && strings.HasSuffix(artifactID, "-all"):
			modeStr = string(ModeShade)
			c.Reason = fmt.Sprintf("artifactId %q ends with \"-all\"", artifactID)
		case isPackaging(packaging, "jar", "pom") && strings.HasSuffix(artifactID, "-starter"):
			modeStr = string(ModeStarter)
			c.Reason = fmt.Sprintf("artifactId %q ends with \"-starter\"", artifactID)
		case isPackaging(packaging, "jar", "pom") && strings.Contains(artifactID, "-starter-"):
			modeStr = string(ModeStarter)
			c.Reason = fmt.Sprintf("artifactId %q contains \"-starter-\"", artifactID)
		}
	} else if modeStr != "" {
		c.Reason = "configured"
		c.Warnings = validateMode(modeStr, p)
	}

	if modeStr == "" {
		modeStr = packaging
		c.Reason = fmt.Sprintf("packaging %q", packaging)
	}

	mode, err := ParseMode(modeStr)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("get the mode by %q failed, falling back to noop: %s", modeStr, err))
	}
	c.Mode = mode

	if (mode == ModeDependencies || mode == ModeBom) && len(p.ManagedDependencies()) == 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("mode %q needs a non-empty <dependencyManagement>, otherwise the POM will be meaningless", mode))
	}
	return c
}

func validateMode(modeStr string, p *pom.Project) []string {
	packaging := p.EffectivePackaging()
	mismatch := fmt.Sprintf("the mode %q can't be used for packaging %q", modeStr, packaging)

	switch strings.ReplaceAll(strings.ToLower(modeStr), "_", "-") {
	case string(ModePom), string(ModeJar), string(ModeWar), string(ModeMavenPlugin):
		if !strings.EqualFold(strings.ReplaceAll(modeStr, "_", "-"), packaging) {
			return []string{mismatch}
		}
	case string(ModeShade):
		if !isPackaging(packaging, "jar") {
			return []string{mismatch}
		}
		if !hasPlugin(p, "org.apache.maven.plugins", "maven-shade-plugin") {
			return []string{fmt.Sprintf("the mode %q expects the maven-shade-plugin to be declared", modeStr)}
		}
	case string(ModeDependencies), string(ModeBom):
		if !isPackaging(packaging, "pom") {
			return []string{mismatch}
		}
	case string(ModeStarter):
		if !isPackaging(packaging, "jar", "pom") {
			return []string{mismatch}
		}
	}
	return nil
}

func isPackaging(packaging string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.EqualFold(packaging, c) {
			return true
		}
	}
	return false
}

func hasPlugin(p *pom.Project, groupID, artifactID string) bool {
	if p.Build == nil {
		return false
	}
	for _, plugin := range p.Build.Plugins {
		if plugin.Is(groupID, artifactID) {
			return true
		}
	}
	return false
}
