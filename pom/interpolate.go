package pom

import "strings"

const maxInterpolationDepth = 10

type interpolator struct {
	values map[string]string
}

func newInterpolator(project *Project) *interpolator {
	values := make(map[string]string)
	for _, e := range project.Properties.Entries() {
		values[e.Key] = e.Value
	}

	identity := map[string]string{
		"groupId":    project.GroupID,
		"artifactId": project.ArtifactID,
		"version":    project.Version,
		"packaging":  project.EffectivePackaging(),
		"name":       project.Name,
		"url":        project.URL,
	}
	for k, v := range identity {
		values["project."+k] = v
		values["pom."+k] = v
	}
	if project.Parent != nil {
		for k, v := range map[string]string{
			"groupId":    project.Parent.GroupID,
			"artifactId": project.Parent.ArtifactID,
			"version":    project.Parent.Version,
		} {
			values["project.parent."+k] = v
			values["parent."+k] = v
		}
	}
	return &interpolator{values: values}
}

// expand replaces every known ${key}. Unknown placeholders are kept as
// written.
func (in *interpolator) expand(s string) string {
	return in.expandDepth(s, 0)
}

func (in *interpolator) expandDepth(s string, depth int) string {
	if depth > maxInterpolationDepth || !strings.Contains(s, "${") {
		return s
	}

	var sb strings.Builder
	rest := s
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			sb.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			sb.WriteString(rest)
			break
		}
		end += start

		sb.WriteString(rest[:start])
		key := rest[start+2 : end]
		if v, ok := in.values[key]; ok {
			sb.WriteString(in.expandDepth(v, depth+1))
		} else {
			sb.WriteString(rest[start : end+1])
		}
		rest = rest[end+1:]
	}
	return sb.String()
}

func (in *interpolator) dependencies(deps []Dependency) {
	for i := range deps {
		d := &deps[i]
		d.GroupID = in.expand(d.GroupID)
		d.ArtifactID = in.expand(d.ArtifactID)
		d.Version = in.expand(d.Version)
		d.Type = in.expand(d.Type)
		d.Classifier = in.expand(d.Classifier)
		d.Scope = in.expand(d.Scope)
		d.SystemPath = in.expand(d.SystemPath)
		d.Optional = in.expand(d.Optional)
	}
}

func (in *interpolator) plugins(plugins []Plugin) {
	for i := range plugins {
		p := &plugins[i]
		p.GroupID = in.expand(p.GroupID)
		p.ArtifactID = in.expand(p.ArtifactID)
		p.Version = in.expand(p.Version)
	}
}

// interpolate rewrites the model in place. Properties are expanded first so
// later lookups see resolved values.
func interpolate(project *Project) {
	in := newInterpolator(project)
	if project.Properties != nil {
		for _, e := range project.Properties.Entries() {
			v := in.expand(e.Value)
			project.Properties.Set(e.Key, v)
			in.values[e.Key] = v
		}
	}

	project.GroupID = in.expand(project.GroupID)
	project.ArtifactID = in.expand(project.ArtifactID)
	project.Version = in.expand(project.Version)
	project.Packaging = in.expand(project.Packaging)
	if project.Parent != nil {
		project.Parent.GroupID = in.expand(project.Parent.GroupID)
		project.Parent.ArtifactID = in.expand(project.Parent.ArtifactID)
		project.Parent.Version = in.expand(project.Parent.Version)
	}
	project.Name = in.expand(project.Name)
	project.Description = in.expand(project.Description)
	project.URL = in.expand(project.URL)

	in.dependencies(project.Dependencies)
	if project.DependencyManagement != nil {
		in.dependencies(project.DependencyManagement.Dependencies)
	}
	if project.Build != nil {
		in.plugins(project.Build.Plugins)
		if project.Build.PluginManagement != nil {
			in.plugins(project.Build.PluginManagement.Plugins)
		}
	}
}
