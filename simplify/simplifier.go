// Package simplify rewrites the author-written descriptor of a build unit
// into a minimal standalone descriptor, using the effective model as the
// source of truth.
//
// A Simplifier runs four phases in order: beforeSimplify, the mode policy,
// the configuration driven adjustments and afterSimplify. Every step
// mutates the original model in place; nothing is rolled back.
package simplify

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/simplipom/pom"
)

type Report struct {
	Mode     Mode
	Reason   string
	Warnings []string
}

type Simplifier struct {
	project   *pom.Resolved
	original  *pom.Project
	effective *pom.Project
	config    Config
	policy    Policy
	vars      *Variables
	log       commonlog.Logger
	warnings  []string

	copiedParentInfo     bool
	copiedOpenSourceInfo bool
	dependenciesReset    bool
}

func New(project *pom.Resolved, cfg Config, policy Policy, log commonlog.Logger) *Simplifier {
	if log == nil {
		log = commonlog.GetLogger("simplipom.simplify")
	}
	return &Simplifier{
		project:   project,
		original:  project.Original,
		effective: project.Effective,
		config:    cfg,
		policy:    policy,
		vars:      NewVariables(project),
		log:       log,
	}
}

// Simplify classifies the project, picks its policy and runs every phase.
func Simplify(project *pom.Resolved, cfg Config, log commonlog.Logger) (*Report, error) {
	if err := validate(project); err != nil {
		return nil, err
	}

	c := Classify(cfg.Mode, project.Effective)
	s := New(project, cfg, PolicyFor(c.Mode), log)
	for _, w := range c.Warnings {
		s.warnf("%s", w)
	}
	s.log.Infof("The simplify mode is %q (%s)", c.Mode, c.Reason)
	s.Run()

	return &Report{Mode: c.Mode, Reason: c.Reason, Warnings: s.Warnings()}, nil
}

// AfterSimplifyOnly regenerates a descriptor without simplifying it: only
// the parent revision, identity and dependency coordinates are fixed up.
func AfterSimplifyOnly(project *pom.Resolved, log commonlog.Logger) (*Report, error) {
	if err := validate(project); err != nil {
		return nil, err
	}
	s := New(project, DefaultConfig(), Policy{Mode: ModePom, Strategy: StrategyAuto}, log)
	s.afterSimplify()
	return &Report{Mode: ModePom, Reason: "create-pom-file", Warnings: s.Warnings()}, nil
}

func validate(project *pom.Resolved) error {
	if project == nil || project.Original == nil || project.Effective == nil {
		return errors.New("simplify: project has no original or effective model")
	}
	return nil
}

func (s *Simplifier) Run() {
	s.beforeSimplify()
	s.doSimplify()
	s.doSimplifyByConfig()
	s.afterSimplify()
}

func (s *Simplifier) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

func (s *Simplifier) Original() *pom.Project {
	return s.original
}

func (s *Simplifier) beforeSimplify() {
	s.log.Infof("Simplify %s with mode %q", s.effective, s.policy.Mode)
}

func (s *Simplifier) doSimplify() {
	for _, step := range s.policy.Simplify {
		step(s)
	}
}

func (s *Simplifier) doSimplifyByConfig() {
	s.CopyProjectInfoFromParentForOpenSourceProject()
	s.RemoveLocalProperties()
	s.ApplyArtifactNameTemplate()
	s.CreatePropertiesByConfig()
}

func (s *Simplifier) afterSimplify() {
	s.ReplaceParentRevision()
	s.RemoveGroupIDAndVersionIfEqualsToParent()
	s.OptimizeDependencyManagement()
	s.OptimizeDependencies()
	for _, step := range s.policy.AfterSimplify {
		step(s)
	}
}

func (s *Simplifier) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.warnings = append(s.warnings, msg)
	s.log.Warning(msg)
}

func (s *Simplifier) keepProvided() bool {
	return boolOr(s.config.KeepProvidedDependencies, s.policy.KeepProvided)
}

func (s *Simplifier) keepOptional() bool {
	return boolOr(s.config.KeepOptionalDependencies, s.policy.KeepOptional)
}

func (s *Simplifier) keepTest() bool {
	return boolOr(s.config.KeepTestDependencies, s.policy.KeepTest)
}

// resolver returns the substitution used when optimizing coordinates.
func (s *Simplifier) resolver() func(string) string {
	strategy := s.policy.Strategy
	if strategy == StrategyAuto {
		if s.original.Parent != nil || s.effective.Properties.Len() == 0 {
			strategy = StrategyProjectProperty
		} else {
			strategy = StrategyLiteral
		}
	}
	s.log.Debugf("Optimize with the %s strategy", strategy)
	if strategy == StrategyLiteral {
		return s.vars.Replace
	}
	return s.vars.ProjectProperty
}
