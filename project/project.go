package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/simplipom/pom"
)

// POMFile is the descriptor file name looked up in every module directory.
const POMFile = "pom.xml"

// Project represents a multi-module build rooted at a descriptor.
type Project struct {
	RootDir string
	Root    *Module
	Modules []*Module // every module, the root included, in discovery order
}

// Module represents a single build unit of the project.
type Module struct {
	Name    string // artifactId as written
	Dir     string
	POMFile string
	Model   *pom.Project
	Project *Project

	// Dependencies names the modules of this project this one needs
	// first: its parent and any sibling it depends on.
	Dependencies []string
}

// Load reads the project rooted in the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom reads the descriptor in rootDir and follows its <modules>
// entries recursively.
func LoadFrom(rootDir string) (*Project, error) {
	proj := &Project{RootDir: rootDir}
	seen := make(map[string]bool)

	root, err := proj.scan(rootDir, seen)
	if err != nil {
		return nil, err
	}
	proj.Root = root

	for _, m := range proj.Modules {
		m.Dependencies = proj.internalDependencies(m)
	}
	return proj, nil
}

func (p *Project) scan(dir string, seen map[string]bool) (*Module, error) {
	path := filepath.Join(dir, POMFile)
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		path = dir
		dir = filepath.Dir(dir)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if seen[abs] {
		return nil, nil
	}
	seen[abs] = true

	model, err := pom.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := &Module{
		Name:    model.ArtifactID,
		Dir:     dir,
		POMFile: path,
		Model:   model,
		Project: p,
	}
	p.Modules = append(p.Modules, m)

	var errs []error
	for _, child := range model.Modules {
		if _, err := p.scan(filepath.Join(dir, filepath.FromSlash(child)), seen); err != nil {
			errs = append(errs, fmt.Errorf("module %s of %s: %w", child, m.Name, err))
		}
	}
	return m, errors.Join(errs...)
}

// internalDependencies lists the modules of this project m refers to.
func (p *Project) internalDependencies(m *Module) []string {
	var deps []string
	add := func(name string) {
		if name == m.Name || p.Module(name) == nil {
			return
		}
		for _, d := range deps {
			if d == name {
				return
			}
		}
		deps = append(deps, name)
	}

	if parent := m.Model.Parent; parent != nil {
		add(parent.ArtifactID)
	}
	for _, d := range m.Model.Dependencies {
		add(d.ArtifactID)
	}
	for _, d := range m.Model.ManagedDependencies() {
		if d.Scope == "import" {
			add(d.ArtifactID)
		}
	}
	return deps
}

// Module returns the module with the given name, or nil if not found.
func (p *Project) Module(name string) *Module {
	for _, m := range p.Modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// ModulesInOrder returns modules sorted in dependency order (dependencies first).
// Modules with no dependencies come first, then modules that depend only on
// already-listed modules.
func (p *Project) ModulesInOrder() []*Module {
	inDegree := make(map[string]int)
	for _, m := range p.Modules {
		inDegree[m.Name] = len(m.Dependencies)
	}

	var queue []string
	for _, m := range p.Modules {
		if inDegree[m.Name] == 0 {
			queue = append(queue, m.Name)
		}
	}

	var result []*Module
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		if mod := p.Module(name); mod != nil {
			result = append(result, mod)
		}

		for _, m := range p.Modules {
			for _, dep := range m.Dependencies {
				if dep == name {
					inDegree[m.Name]--
					if inDegree[m.Name] == 0 {
						queue = append(queue, m.Name)
					}
				}
			}
		}
	}

	// If we didn't get all modules, there's a cycle - return original order
	if len(result) != len(p.Modules) {
		return p.Modules
	}
	return result
}

// SimplifiedFile returns the path of the simplified descriptor named name
// inside the module directory.
func (m *Module) SimplifiedFile(name string) string {
	return filepath.Join(m.Dir, name)
}

// Coordinate returns groupId:artifactId:version as written, falling back
// to the parent's groupId and version.
func (m *Module) Coordinate() string {
	g, v := m.Model.GroupID, m.Model.Version
	if parent := m.Model.Parent; parent != nil {
		if g == "" {
			g = parent.GroupID
		}
		if v == "" {
			v = parent.Version
		}
	}
	return g + ":" + m.Name + ":" + v
}
