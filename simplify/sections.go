package simplify

import "github.com/dhamidi/simplipom/pom"

func (s *Simplifier) RemoveProperties() {
	if s.original.Properties.Len() > 0 {
		s.log.Info("Remove Properties.")
		s.original.Properties = nil
		s.ResetDependencies()
	}
}

func (s *Simplifier) RemoveLocalProperties() {
	for _, key := range s.config.RemoveLocalProperties {
		if s.original.Properties.Delete(key) {
			s.log.Infof("Remove local property '%s'.", key)
		}
	}
}

// CreatePropertiesByConfig adds the configured properties, creating the
// properties section when it is missing. The settings that asked for this
// are then removed from the tool's own plugin block so a second run
// against the output does not repeat them.
func (s *Simplifier) CreatePropertiesByConfig() {
	defer s.removeToolConfiguration("createProperties", "removeParent")

	for _, e := range s.config.CreateProperties.Entries() {
		if e.Key == "" || e.Value == "" {
			continue
		}
		if s.original.Properties == nil {
			s.original.Properties = pom.NewProperties()
		}
		s.log.Infof("Create Properties: %s = %s", e.Key, e.Value)
		s.original.Properties.Set(e.Key, e.Value)
	}
}

func (s *Simplifier) removeToolConfiguration(names ...string) {
	if s.original.Build == nil {
		return
	}
	plugins := s.original.Build.Plugins
	for i := range plugins {
		plugin := &plugins[i]
		if !plugin.Is(ToolPluginGroupID, ToolPluginArtifactID) || plugin.Configuration == nil {
			continue
		}
		for _, c := range plugin.Configuration.Children {
			for _, name := range names {
				if c.Name == name {
					s.log.Infof("Remove one config '%s' from the plugin '%s'.", name, plugin.Key())
				}
			}
		}
		plugin.Configuration.RemoveChildren(names...)
		if len(plugin.Configuration.Children) == 0 {
			s.log.Infof("Remove Configuration from the plugin '%s'.", plugin.Key())
			plugin.Configuration = nil
		}
		return
	}
}

// ApplyArtifactNameTemplate sets the name from the configured template,
// e.g. "${project.groupId}:${project.artifactId}".
func (s *Simplifier) ApplyArtifactNameTemplate() {
	tmpl := s.config.ArtifactNameTemplate
	if tmpl == "" {
		return
	}
	name := s.vars.Replace(tmpl)
	if name != "" && name != s.original.Name {
		s.log.Infof("Set Name from '%s' to '%s' by the template.", s.original.Name, name)
		s.original.Name = name
	}
}

func (s *Simplifier) RemovePrerequisites() {
	if s.original.Prerequisites != nil {
		s.log.Info("Remove Prerequisites.")
		s.original.Prerequisites = nil
	}
}

func (s *Simplifier) RemoveBuild() {
	if s.original.Build != nil {
		s.log.Info("Remove Build.")
		s.original.Build = nil
	}
}

func (s *Simplifier) RemoveReporting() {
	if s.original.Reporting != nil {
		s.log.Info("Remove Reporting.")
		s.original.Reporting = nil
	}
}

func (s *Simplifier) RemoveReports() {
	if s.original.Reports != nil {
		s.log.Info("Remove Reports.")
		s.original.Reports = nil
	}
}

func (s *Simplifier) RemoveRepositories() {
	if len(s.original.Repositories) > 0 {
		s.log.Info("Remove Repositories.")
		s.original.Repositories = nil
	}
}

func (s *Simplifier) RemovePluginRepositories() {
	if len(s.original.PluginRepositories) > 0 {
		s.log.Info("Remove PluginRepositories.")
		s.original.PluginRepositories = nil
	}
}

func (s *Simplifier) RemoveDistributionManagement() {
	if s.original.DistributionManagement != nil {
		s.log.Info("Remove DistributionManagement.")
		s.original.DistributionManagement = nil
	}
}

func (s *Simplifier) RemoveProfiles() {
	if len(s.original.Profiles) > 0 {
		s.log.Info("Remove Profiles.")
		s.original.Profiles = nil
	}
}
