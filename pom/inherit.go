package pom

import "strings"

// inherit merges the effective parent into the child's effective model.
// artifactId, packaging, name, prerequisites, profiles and modules are
// never inherited.
func inherit(parent, child *Project) {
	if child.GroupID == "" {
		child.GroupID = parent.GroupID
	}
	if child.Version == "" {
		child.Version = parent.Version
	}
	if child.Description == "" {
		child.Description = parent.Description
	}
	if child.URL == "" && parent.URL != "" {
		child.URL = appendPath(parent.URL, child.ArtifactID)
	}
	if child.InceptionYear == "" {
		child.InceptionYear = parent.InceptionYear
	}
	if child.Organization == nil {
		child.Organization = parent.Organization
	}
	if len(child.Licenses) == 0 {
		child.Licenses = parent.Licenses
	}
	if len(child.Developers) == 0 {
		child.Developers = parent.Developers
	}
	if len(child.Contributors) == 0 {
		child.Contributors = parent.Contributors
	}
	if len(child.MailingLists) == 0 {
		child.MailingLists = parent.MailingLists
	}
	child.SCM = inheritSCM(parent.SCM, child.SCM, child.ArtifactID)
	if child.IssueManagement == nil {
		child.IssueManagement = parent.IssueManagement
	}
	if child.CIManagement == nil {
		child.CIManagement = parent.CIManagement
	}
	if child.DistributionManagement == nil {
		child.DistributionManagement = parent.DistributionManagement
	}

	if parent.Properties.Len() > 0 {
		merged := parent.Properties.Clone()
		for _, e := range child.Properties.Entries() {
			merged.Set(e.Key, e.Value)
		}
		child.Properties = merged
	}

	if managed := parent.ManagedDependencies(); len(managed) > 0 {
		if child.DependencyManagement == nil {
			child.DependencyManagement = &DependencyManagement{}
		}
		child.DependencyManagement.Dependencies = mergeDependencies(child.DependencyManagement.Dependencies, managed)
	}
	child.Dependencies = mergeDependencies(child.Dependencies, parent.Dependencies)
	child.Repositories = mergeRepositories(child.Repositories, parent.Repositories)
	child.PluginRepositories = mergeRepositories(child.PluginRepositories, parent.PluginRepositories)

	if parent.Build != nil {
		if child.Build == nil {
			child.Build = &Build{}
		}
		child.Build.Plugins = mergePlugins(child.Build.Plugins, parent.Build.Plugins)
		if parent.Build.PluginManagement != nil {
			if child.Build.PluginManagement == nil {
				child.Build.PluginManagement = &PluginManagement{}
			}
			child.Build.PluginManagement.Plugins = mergePlugins(child.Build.PluginManagement.Plugins, parent.Build.PluginManagement.Plugins)
		}
	}
	if child.Reporting == nil {
		child.Reporting = parent.Reporting
	}
}

func appendPath(base, artifactID string) string {
	if artifactID == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + artifactID
}

func inheritSCM(parent, child *SCM, artifactID string) *SCM {
	if parent == nil {
		return child
	}
	if child == nil {
		child = &SCM{}
	}
	if child.Connection == "" && parent.Connection != "" {
		child.Connection = appendPath(parent.Connection, artifactID)
	}
	if child.DeveloperConnection == "" && parent.DeveloperConnection != "" {
		child.DeveloperConnection = appendPath(parent.DeveloperConnection, artifactID)
	}
	if child.URL == "" && parent.URL != "" {
		child.URL = appendPath(parent.URL, artifactID)
	}
	if child.Tag == "" {
		child.Tag = parent.Tag
	}
	return child
}

// mergeDependencies returns own followed by the inherited entries whose
// management key is not already present.
func mergeDependencies(own, inherited []Dependency) []Dependency {
	if len(inherited) == 0 {
		return own
	}
	seen := make(map[string]bool, len(own))
	out := make([]Dependency, 0, len(own)+len(inherited))
	for _, d := range own {
		seen[d.ManagementKey()] = true
		out = append(out, d)
	}
	for _, d := range inherited {
		if seen[d.ManagementKey()] {
			continue
		}
		seen[d.ManagementKey()] = true
		out = append(out, d.Clone())
	}
	return out
}

func mergeRepositories(own, inherited []Repository) []Repository {
	if len(inherited) == 0 {
		return own
	}
	seen := make(map[string]bool, len(own))
	out := make([]Repository, 0, len(own)+len(inherited))
	for _, r := range own {
		seen[r.ID] = true
		out = append(out, r)
	}
	for _, r := range inherited {
		if !seen[r.ID] {
			seen[r.ID] = true
			out = append(out, r)
		}
	}
	return out
}

func mergePlugins(own, inherited []Plugin) []Plugin {
	if len(inherited) == 0 {
		return own
	}
	seen := make(map[ArtifactKey]bool, len(own))
	out := make([]Plugin, 0, len(own)+len(inherited))
	for _, p := range own {
		seen[p.Key()] = true
		out = append(out, p)
	}
	for _, p := range inherited {
		if strings.EqualFold(p.Inherited, "false") || seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		out = append(out, p)
	}
	return out
}
