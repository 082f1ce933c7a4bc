package pom

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
)

var ErrParentNotFound = errors.New("parent POM not found")

const maxParentDepth = 32

// Resolved pairs the effective model of a build unit with the model as its
// author wrote it. Parent links the same pair for the parent descriptor.
//
// Effective is read-only once Load returns. Original is the tree that gets
// rewritten and serialized.
type Resolved struct {
	File      string
	Effective *Project
	Original  *Project
	Parent    *Resolved
}

// Ancestors returns the parent chain starting with the direct parent.
func (r *Resolved) Ancestors() []*Resolved {
	var chain []*Resolved
	for p := r.Parent; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	return chain
}

// Loader builds effective models from descriptors on disk, falling back to
// Fetcher for parents and imported BOMs that are not available locally.
type Loader struct {
	Fetcher    POMFetcher
	Properties map[string]string

	log commonlog.Logger
}

func NewLoader(fetcher POMFetcher, properties map[string]string) *Loader {
	return &Loader{
		Fetcher:    fetcher,
		Properties: properties,
		log:        commonlog.GetLogger("simplipom.pom"),
	}
}

func (l *Loader) Load(ctx context.Context, path string) (*Resolved, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("load POM: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read POM: %w", err)
	}
	return l.build(ctx, abs, data, 0)
}

// LoadRemote resolves a descriptor that only exists in the repository.
func (l *Loader) LoadRemote(ctx context.Context, groupID, artifactID, version string) (*Resolved, error) {
	return l.loadRemote(ctx, groupID, artifactID, version, 0)
}

func (l *Loader) loadRemote(ctx context.Context, groupID, artifactID, version string, depth int) (*Resolved, error) {
	if l.Fetcher == nil {
		return nil, fmt.Errorf("%w: %s:%s:%s (offline)", ErrParentNotFound, groupID, artifactID, version)
	}
	original, err := l.Fetcher.FetchPOM(ctx, groupID, artifactID, version)
	if err != nil {
		return nil, err
	}
	effective, err := l.Fetcher.FetchPOM(ctx, groupID, artifactID, version)
	if err != nil {
		return nil, err
	}
	return l.resolve(ctx, "", original, effective, depth)
}

func (l *Loader) build(ctx context.Context, file string, data []byte, depth int) (*Resolved, error) {
	// Two independent parses: the original is rewritten later and must not
	// share memory with the effective model.
	original, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse POM %s: %w", file, err)
	}
	effective, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse POM %s: %w", file, err)
	}
	return l.resolve(ctx, file, original, effective, depth)
}

func (l *Loader) resolve(ctx context.Context, file string, original, effective *Project, depth int) (*Resolved, error) {
	if depth > maxParentDepth {
		return nil, fmt.Errorf("resolve %s: parent chain deeper than %d", effective, maxParentDepth)
	}

	resolved := &Resolved{File: file, Original: original, Effective: effective}

	if effective.Parent != nil {
		parent, err := l.loadParent(ctx, file, effective, depth)
		if err != nil {
			return nil, err
		}
		resolved.Parent = parent
		inherit(parent.Effective, effective)
	}

	l.applyUserProperties(effective)
	interpolate(effective)
	l.importManagement(ctx, effective, depth)
	applyManagement(effective)

	return resolved, nil
}

func (l *Loader) applyUserProperties(p *Project) {
	if len(l.Properties) == 0 {
		return
	}
	if p.Properties == nil {
		p.Properties = NewProperties()
	}
	for k, v := range l.Properties {
		p.Properties.Set(k, v)
	}
}

func (l *Loader) loadParent(ctx context.Context, file string, child *Project, depth int) (*Resolved, error) {
	ref := *child.Parent
	ref.Version = l.parentVersion(child)

	if file != "" {
		candidate := ref.RelativePath
		if candidate == "" {
			candidate = DefaultRelativePath
		}
		candidate = filepath.Join(filepath.Dir(file), candidate)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			candidate = filepath.Join(candidate, "pom.xml")
		}

		if data, err := os.ReadFile(candidate); err == nil {
			if l.matchesParent(data, ref) {
				return l.build(ctx, candidate, data, depth+1)
			}
			l.log.Debugf("%s is not the parent %s:%s", candidate, ref.GroupID, ref.ArtifactID)
		}
	}

	if l.Fetcher == nil {
		return nil, fmt.Errorf("%w: %s:%s:%s", ErrParentNotFound, ref.GroupID, ref.ArtifactID, ref.Version)
	}
	parent, err := l.loadRemote(ctx, ref.GroupID, ref.ArtifactID, ref.Version, depth+1)
	if err != nil {
		return nil, fmt.Errorf("fetch parent POM: %w", err)
	}
	return parent, nil
}

// parentVersion interpolates the parent version with the child's own
// properties, which is how ${revision} style versions get resolved.
func (l *Loader) parentVersion(child *Project) string {
	version := child.Parent.Version
	if !strings.Contains(version, "${") {
		return version
	}
	scope := &Project{Properties: child.Properties.Clone()}
	l.applyUserProperties(scope)
	return newInterpolator(scope).expand(version)
}

func (l *Loader) matchesParent(data []byte, ref Parent) bool {
	candidate, err := Parse(data)
	if err != nil {
		return false
	}
	groupID := candidate.GroupID
	if groupID == "" && candidate.Parent != nil {
		groupID = candidate.Parent.GroupID
	}
	return groupID == ref.GroupID && candidate.ArtifactID == ref.ArtifactID
}

// importManagement replaces import-scoped pom entries of the dependency
// management with the entries they import.
func (l *Loader) importManagement(ctx context.Context, p *Project, depth int) {
	if p.DependencyManagement == nil {
		return
	}

	var managed, imported []Dependency
	for _, d := range p.DependencyManagement.Dependencies {
		if d.Scope != "import" || d.Type != "pom" {
			managed = append(managed, d)
			continue
		}
		bom, err := l.loadRemote(ctx, d.GroupID, d.ArtifactID, d.Version, depth+1)
		if err != nil {
			l.log.Warningf("could not import dependency management %s: %s", d, err)
			managed = append(managed, d)
			continue
		}
		imported = append(imported, bom.Effective.ManagedDependencies()...)
	}

	p.DependencyManagement.Dependencies = mergeDependencies(managed, imported)
}

func applyManagement(p *Project) {
	managed := p.ManagedDependencies()
	if len(managed) == 0 {
		return
	}
	index := make(map[string]Dependency, len(managed))
	for _, d := range managed {
		if _, ok := index[d.ManagementKey()]; !ok {
			index[d.ManagementKey()] = d
		}
	}

	for i := range p.Dependencies {
		d := &p.Dependencies[i]
		m, ok := index[d.ManagementKey()]
		if !ok {
			continue
		}
		if d.Version == "" {
			d.Version = m.Version
		}
		if d.Scope == "" {
			d.Scope = m.Scope
		}
		if d.SystemPath == "" {
			d.SystemPath = m.SystemPath
		}
		if len(d.Exclusions) == 0 && len(m.Exclusions) > 0 {
			d.Exclusions = append([]Exclusion(nil), m.Exclusions...)
		}
	}
}
