package pom

// Clone returns a deep copy of p. The two models share no mutable state.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	if p.Parent != nil {
		parent := *p.Parent
		c.Parent = &parent
	}
	c.Organization = cloneOrganization(p.Organization)
	c.Licenses = cloneLicenses(p.Licenses)
	c.Developers = cloneDevelopers(p.Developers)
	c.Contributors = cloneContributors(p.Contributors)
	c.MailingLists = cloneMailingLists(p.MailingLists)
	if p.Prerequisites != nil {
		pre := *p.Prerequisites
		c.Prerequisites = &pre
	}
	c.Modules = cloneStrings(p.Modules)
	c.SCM = cloneSCM(p.SCM)
	c.IssueManagement = cloneIssueManagement(p.IssueManagement)
	c.CIManagement = cloneCIManagement(p.CIManagement)
	c.DistributionManagement = p.DistributionManagement.clone()
	c.Properties = p.Properties.Clone()
	c.DependencyManagement = p.DependencyManagement.Clone()
	c.Dependencies = CloneDependencies(p.Dependencies)
	c.Repositories = cloneRepositories(p.Repositories)
	c.PluginRepositories = cloneRepositories(p.PluginRepositories)
	c.Build = p.Build.clone()
	c.Reports = p.Reports.Clone()
	c.Reporting = p.Reporting.clone()
	if p.Profiles != nil {
		c.Profiles = make([]Profile, len(p.Profiles))
		for i, profile := range p.Profiles {
			c.Profiles[i] = profile.clone()
		}
	}
	return &c
}

func CloneDependencies(deps []Dependency) []Dependency {
	if deps == nil {
		return nil
	}
	out := make([]Dependency, len(deps))
	for i, d := range deps {
		out[i] = d.Clone()
	}
	return out
}

func (m *DependencyManagement) Clone() *DependencyManagement {
	if m == nil {
		return nil
	}
	return &DependencyManagement{Dependencies: CloneDependencies(m.Dependencies)}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneOrganization(o *Organization) *Organization {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func cloneLicenses(l []License) []License {
	if l == nil {
		return nil
	}
	return append([]License(nil), l...)
}

func cloneDevelopers(devs []Developer) []Developer {
	if devs == nil {
		return nil
	}
	out := make([]Developer, len(devs))
	for i, d := range devs {
		out[i] = d.clone()
	}
	return out
}

func cloneContributors(cs []Contributor) []Contributor {
	if cs == nil {
		return nil
	}
	out := make([]Contributor, len(cs))
	for i, c := range cs {
		out[i] = c.clone()
	}
	return out
}

func cloneMailingLists(ls []MailingList) []MailingList {
	if ls == nil {
		return nil
	}
	out := make([]MailingList, len(ls))
	for i, l := range ls {
		l.OtherArchives = cloneStrings(l.OtherArchives)
		out[i] = l
	}
	return out
}

func cloneSCM(s *SCM) *SCM {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func cloneIssueManagement(im *IssueManagement) *IssueManagement {
	if im == nil {
		return nil
	}
	c := *im
	return &c
}

func cloneCIManagement(ci *CIManagement) *CIManagement {
	if ci == nil {
		return nil
	}
	c := *ci
	if ci.Notifiers != nil {
		c.Notifiers = make([]Notifier, len(ci.Notifiers))
		for i, n := range ci.Notifiers {
			n.Configuration = n.Configuration.Clone()
			c.Notifiers[i] = n
		}
	}
	return &c
}

func clonePolicy(p *RepositoryPolicy) *RepositoryPolicy {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneRepositories(repos []Repository) []Repository {
	if repos == nil {
		return nil
	}
	out := make([]Repository, len(repos))
	for i, r := range repos {
		r.Releases = clonePolicy(r.Releases)
		r.Snapshots = clonePolicy(r.Snapshots)
		out[i] = r
	}
	return out
}

func cloneDeploymentRepository(r *DeploymentRepository) *DeploymentRepository {
	if r == nil {
		return nil
	}
	c := *r
	c.Releases = clonePolicy(r.Releases)
	c.Snapshots = clonePolicy(r.Snapshots)
	return &c
}

func (dm *DistributionManagement) clone() *DistributionManagement {
	if dm == nil {
		return nil
	}
	c := *dm
	c.Repository = cloneDeploymentRepository(dm.Repository)
	c.SnapshotRepository = cloneDeploymentRepository(dm.SnapshotRepository)
	if dm.Site != nil {
		site := *dm.Site
		c.Site = &site
	}
	if dm.Relocation != nil {
		rel := *dm.Relocation
		c.Relocation = &rel
	}
	return &c
}

func (p Plugin) clone() Plugin {
	if p.Executions != nil {
		execs := make([]PluginExecution, len(p.Executions))
		for i, e := range p.Executions {
			e.Goals = cloneStrings(e.Goals)
			e.Configuration = e.Configuration.Clone()
			execs[i] = e
		}
		p.Executions = execs
	}
	p.Dependencies = CloneDependencies(p.Dependencies)
	p.Goals = p.Goals.Clone()
	p.Configuration = p.Configuration.Clone()
	return p
}

func clonePlugins(plugins []Plugin) []Plugin {
	if plugins == nil {
		return nil
	}
	out := make([]Plugin, len(plugins))
	for i, p := range plugins {
		out[i] = p.clone()
	}
	return out
}

func cloneResources(rs []Resource) []Resource {
	if rs == nil {
		return nil
	}
	out := make([]Resource, len(rs))
	for i, r := range rs {
		r.Includes = cloneStrings(r.Includes)
		r.Excludes = cloneStrings(r.Excludes)
		out[i] = r
	}
	return out
}

func (b *Build) clone() *Build {
	if b == nil {
		return nil
	}
	c := *b
	if b.Extensions != nil {
		c.Extensions = append([]Extension(nil), b.Extensions...)
	}
	c.Resources = cloneResources(b.Resources)
	c.TestResources = cloneResources(b.TestResources)
	c.Filters = cloneStrings(b.Filters)
	if b.PluginManagement != nil {
		c.PluginManagement = &PluginManagement{Plugins: clonePlugins(b.PluginManagement.Plugins)}
	}
	c.Plugins = clonePlugins(b.Plugins)
	return &c
}

func (r *Reporting) clone() *Reporting {
	if r == nil {
		return nil
	}
	c := *r
	if r.Plugins != nil {
		c.Plugins = make([]ReportPlugin, len(r.Plugins))
		for i, p := range r.Plugins {
			if p.ReportSets != nil {
				sets := make([]ReportSet, len(p.ReportSets))
				for j, s := range p.ReportSets {
					s.Reports = cloneStrings(s.Reports)
					s.Configuration = s.Configuration.Clone()
					sets[j] = s
				}
				p.ReportSets = sets
			}
			p.Configuration = p.Configuration.Clone()
			c.Plugins[i] = p
		}
	}
	return &c
}

func (p Profile) clone() Profile {
	if p.Activation != nil {
		a := *p.Activation
		if a.OS != nil {
			os := *a.OS
			a.OS = &os
		}
		if a.Property != nil {
			prop := *a.Property
			a.Property = &prop
		}
		if a.File != nil {
			f := *a.File
			a.File = &f
		}
		p.Activation = &a
	}
	p.Build = p.Build.clone()
	p.Modules = cloneStrings(p.Modules)
	p.DistributionManagement = p.DistributionManagement.clone()
	p.Properties = p.Properties.Clone()
	p.DependencyManagement = p.DependencyManagement.Clone()
	p.Dependencies = CloneDependencies(p.Dependencies)
	p.Repositories = cloneRepositories(p.Repositories)
	p.PluginRepositories = cloneRepositories(p.PluginRepositories)
	p.Reports = p.Reports.Clone()
	p.Reporting = p.Reporting.clone()
	return p
}

// Exported single-value copies used when descriptive metadata is copied
// from an ancestor into a child.

func CloneOrganization(o *Organization) *Organization { return cloneOrganization(o) }
func CloneLicenses(l []License) []License { return cloneLicenses(l) }
func CloneDevelopers(d []Developer) []Developer { return cloneDevelopers(d) }
func CloneContributors(c []Contributor) []Contributor { return cloneContributors(c) }
func CloneMailingLists(l []MailingList) []MailingList { return cloneMailingLists(l) }
func CloneSCM(s *SCM) *SCM { return cloneSCM(s) }
func CloneIssueManagement(im *IssueManagement) *IssueManagement { return cloneIssueManagement(im) }
func CloneCIManagement(ci *CIManagement) *CIManagement { return cloneCIManagement(ci) }
