package pom

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

const (
	DefaultEncoding = "UTF-8"

	projectNamespace      = "http://maven.apache.org/POM/4.0.0"
	projectSchemaLocation = "http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd"
	xsiNamespace          = "http://www.w3.org/2001/XMLSchema-instance"
)

var (
	blankLines   = regexp.MustCompile(`\n{2,}`)
	textEscaper  = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper  = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	projectAttrs = []xml.Attr{
		{Name: xml.Name{Local: "xmlns"}, Value: projectNamespace},
		{Name: xml.Name{Local: "xsi:schemaLocation"}, Value: projectSchemaLocation},
		{Name: xml.Name{Local: "xmlns:xsi"}, Value: xsiNamespace},
	}
)

// Writer serializes a model in Maven's element order, leaving out values
// that equal Maven's defaults.
type Writer struct {
	Indent      string
	FileComment string
}

func NewWriter() *Writer {
	return &Writer{Indent: "  "}
}

func (w *Writer) Marshal(p *Project) ([]byte, error) {
	indent := w.Indent
	if indent == "" {
		indent = "  "
	}

	enc := p.ModelEncoding
	if enc == "" {
		enc = DefaultEncoding
	}

	x := &xmlWriter{indent: indent}
	x.buf.WriteString(`<?xml version="1.0" encoding="` + enc + `"?>`)
	if w.FileComment != "" {
		x.buf.WriteString("\n<!--" + w.FileComment + "-->")
	}
	x.writeProject(p)
	x.buf.WriteString("\n")

	out := normalize(x.buf.String())
	return encodeAs(out, enc)
}

// WriteFile writes the serialized model to path. An identical existing
// file is left alone and written is false.
func (w *Writer) WriteFile(path string, p *Project) (written bool, err error) {
	data, err := w.Marshal(p)
	if err != nil {
		return false, err
	}
	return writeIfChanged(path, data)
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = blankLines.ReplaceAllString(s, "\n")
	return strings.ReplaceAll(s, " />", "/>")
}

func encodeAs(s, name string) ([]byte, error) {
	if strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		return []byte(s), nil
	}
	enc, _ := charset.Lookup(name)
	if enc == nil {
		return nil, fmt.Errorf("write POM: unsupported encoding %q", name)
	}
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("write POM: encode %s: %w", name, err)
	}
	return out, nil
}

func writeIfChanged(path string, data []byte) (bool, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create directory %s: %w", dir, err)
	}
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return false, fmt.Errorf("write POM: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return false, fmt.Errorf("write POM: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return false, fmt.Errorf("write POM: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return false, fmt.Errorf("write POM: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return false, fmt.Errorf("write POM: %w", err)
	}
	return true, nil
}

type xmlWriter struct {
	buf     bytes.Buffer
	indent  string
	depth   int
	pending bool
}

func (x *xmlWriter) line() {
	x.buf.WriteByte('\n')
	x.buf.WriteString(strings.Repeat(x.indent, x.depth))
}

func (x *xmlWriter) flush() {
	if x.pending {
		x.buf.WriteByte('>')
		x.pending = false
	}
}

func (x *xmlWriter) writeAttrs(attrs []xml.Attr) {
	for _, a := range attrs {
		x.buf.WriteString(" " + a.Name.Local + `="` + attrEscaper.Replace(a.Value) + `"`)
	}
}

func (x *xmlWriter) open(name string, attrs ...xml.Attr) {
	x.flush()
	x.line()
	x.buf.WriteString("<" + name)
	x.writeAttrs(attrs)
	x.pending = true
	x.depth++
}

func (x *xmlWriter) close(name string) {
	x.depth--
	if x.pending {
		x.buf.WriteString("/>")
		x.pending = false
		return
	}
	x.line()
	x.buf.WriteString("</" + name + ">")
}

func (x *xmlWriter) element(name, value string, attrs ...xml.Attr) {
	x.flush()
	x.line()
	x.buf.WriteString("<" + name)
	x.writeAttrs(attrs)
	if value == "" {
		x.buf.WriteString("/>")
		return
	}
	x.buf.WriteString(">" + textEscaper.Replace(value) + "</" + name + ">")
}

// leaf writes name only when value is set.
func (x *xmlWriter) leaf(name, value string) {
	if value != "" {
		x.element(name, value)
	}
}

// leafUnless writes name when value is set and differs from def.
func (x *xmlWriter) leafUnless(name, value, def string) {
	if value != "" && value != def {
		x.element(name, value)
	}
}

func (x *xmlWriter) list(outer, inner string, values []string) {
	if len(values) == 0 {
		return
	}
	x.open(outer)
	for _, v := range values {
		x.element(inner, v)
	}
	x.close(outer)
}

func (x *xmlWriter) node(n *Node) {
	if n == nil {
		return
	}
	if len(n.Children) == 0 {
		x.element(n.Name, n.Text, n.Attrs...)
		return
	}
	x.open(n.Name, n.Attrs...)
	for _, c := range n.Children {
		x.node(c)
	}
	x.close(n.Name)
}

// properties writes props as name, or nothing when props is empty.
func (x *xmlWriter) properties(name string, props *Properties) {
	if props.Len() == 0 {
		return
	}
	x.open(name)
	for _, e := range props.Entries() {
		x.element(e.Key, e.Value)
	}
	x.close(name)
}

func (x *xmlWriter) writeProject(p *Project) {
	x.open("project", projectAttrs...)
	x.leaf("modelVersion", p.ModelVersion)
	if p.Parent != nil {
		x.open("parent")
		x.leaf("groupId", p.Parent.GroupID)
		x.leaf("artifactId", p.Parent.ArtifactID)
		x.leaf("version", p.Parent.Version)
		x.leafUnless("relativePath", p.Parent.RelativePath, DefaultRelativePath)
		x.close("parent")
	}
	x.leaf("groupId", p.GroupID)
	x.leaf("artifactId", p.ArtifactID)
	x.leaf("version", p.Version)
	x.leafUnless("packaging", p.Packaging, DefaultPackaging)
	x.leaf("name", p.Name)
	x.leaf("description", p.Description)
	x.leaf("url", p.URL)
	x.leaf("inceptionYear", p.InceptionYear)
	if p.Organization != nil {
		x.open("organization")
		x.leaf("name", p.Organization.Name)
		x.leaf("url", p.Organization.URL)
		x.close("organization")
	}
	if len(p.Licenses) > 0 {
		x.open("licenses")
		for _, l := range p.Licenses {
			x.open("license")
			x.leaf("name", l.Name)
			x.leaf("url", l.URL)
			x.leaf("distribution", l.Distribution)
			x.leaf("comments", l.Comments)
			x.close("license")
		}
		x.close("licenses")
	}
	if len(p.Developers) > 0 {
		x.open("developers")
		for _, d := range p.Developers {
			x.open("developer")
			x.leaf("id", d.ID)
			x.writePerson(d.Name, d.Email, d.URL, d.Organization, d.OrganizationURL, d.Roles, d.Timezone, d.Properties)
			x.close("developer")
		}
		x.close("developers")
	}
	if len(p.Contributors) > 0 {
		x.open("contributors")
		for _, c := range p.Contributors {
			x.open("contributor")
			x.writePerson(c.Name, c.Email, c.URL, c.Organization, c.OrganizationURL, c.Roles, c.Timezone, c.Properties)
			x.close("contributor")
		}
		x.close("contributors")
	}
	if len(p.MailingLists) > 0 {
		x.open("mailingLists")
		for _, m := range p.MailingLists {
			x.open("mailingList")
			x.leaf("name", m.Name)
			x.leaf("subscribe", m.Subscribe)
			x.leaf("unsubscribe", m.Unsubscribe)
			x.leaf("post", m.Post)
			x.leaf("archive", m.Archive)
			x.list("otherArchives", "otherArchive", m.OtherArchives)
			x.close("mailingList")
		}
		x.close("mailingLists")
	}
	if p.Prerequisites != nil && p.Prerequisites.Maven != "" && p.Prerequisites.Maven != "2.0" {
		x.open("prerequisites")
		x.leaf("maven", p.Prerequisites.Maven)
		x.close("prerequisites")
	}
	x.list("modules", "module", p.Modules)
	if p.SCM != nil {
		x.open("scm")
		x.leaf("connection", p.SCM.Connection)
		x.leaf("developerConnection", p.SCM.DeveloperConnection)
		x.leafUnless("tag", p.SCM.Tag, "HEAD")
		x.leaf("url", p.SCM.URL)
		x.close("scm")
	}
	if p.IssueManagement != nil {
		x.open("issueManagement")
		x.leaf("system", p.IssueManagement.System)
		x.leaf("url", p.IssueManagement.URL)
		x.close("issueManagement")
	}
	if p.CIManagement != nil {
		x.writeCIManagement(p.CIManagement)
	}
	x.writeDistributionManagement(p.DistributionManagement)
	x.properties("properties", p.Properties)
	x.writeDependencyManagement(p.DependencyManagement)
	x.writeDependencies(p.Dependencies)
	x.writeRepositories("repositories", "repository", p.Repositories)
	x.writeRepositories("pluginRepositories", "pluginRepository", p.PluginRepositories)
	if p.Build != nil {
		x.writeBuild(p.Build, true)
	}
	x.node(p.Reports)
	x.writeReporting(p.Reporting)
	if len(p.Profiles) > 0 {
		x.open("profiles")
		for _, profile := range p.Profiles {
			x.writeProfile(profile)
		}
		x.close("profiles")
	}
	x.close("project")
}

func (x *xmlWriter) writePerson(name, email, url, org, orgURL string, roles []string, timezone string, props *Properties) {
	x.leaf("name", name)
	x.leaf("email", email)
	x.leaf("url", url)
	x.leaf("organization", org)
	x.leaf("organizationUrl", orgURL)
	x.list("roles", "role", roles)
	x.leaf("timezone", timezone)
	x.properties("properties", props)
}

func (x *xmlWriter) writeCIManagement(ci *CIManagement) {
	x.open("ciManagement")
	x.leaf("system", ci.System)
	x.leaf("url", ci.URL)
	if len(ci.Notifiers) > 0 {
		x.open("notifiers")
		for _, n := range ci.Notifiers {
			x.open("notifier")
			x.leafUnless("type", n.Type, "mail")
			x.leafUnless("sendOnError", n.SendOnError, "true")
			x.leafUnless("sendOnFailure", n.SendOnFailure, "true")
			x.leafUnless("sendOnSuccess", n.SendOnSuccess, "true")
			x.leafUnless("sendOnWarning", n.SendOnWarning, "true")
			x.leaf("address", n.Address)
			x.properties("configuration", n.Configuration)
			x.close("notifier")
		}
		x.close("notifiers")
	}
	x.close("ciManagement")
}

func (x *xmlWriter) writePolicy(name string, p *RepositoryPolicy) {
	if p == nil {
		return
	}
	x.open(name)
	x.leaf("enabled", p.Enabled)
	x.leaf("updatePolicy", p.UpdatePolicy)
	x.leaf("checksumPolicy", p.ChecksumPolicy)
	x.close(name)
}

func (x *xmlWriter) writeDistributionManagement(dm *DistributionManagement) {
	if dm == nil {
		return
	}
	x.open("distributionManagement")
	for _, r := range []struct {
		name string
		repo *DeploymentRepository
	}{{"repository", dm.Repository}, {"snapshotRepository", dm.SnapshotRepository}} {
		if r.repo == nil {
			continue
		}
		x.open(r.name)
		x.leafUnless("uniqueVersion", r.repo.UniqueVersion, "true")
		x.writePolicy("releases", r.repo.Releases)
		x.writePolicy("snapshots", r.repo.Snapshots)
		x.leaf("id", r.repo.ID)
		x.leaf("name", r.repo.Name)
		x.leaf("url", r.repo.URL)
		x.leafUnless("layout", r.repo.Layout, "default")
		x.close(r.name)
	}
	if dm.Site != nil {
		x.open("site")
		x.leaf("id", dm.Site.ID)
		x.leaf("name", dm.Site.Name)
		x.leaf("url", dm.Site.URL)
		x.close("site")
	}
	x.leaf("downloadUrl", dm.DownloadURL)
	if dm.Relocation != nil {
		x.open("relocation")
		x.leaf("groupId", dm.Relocation.GroupID)
		x.leaf("artifactId", dm.Relocation.ArtifactID)
		x.leaf("version", dm.Relocation.Version)
		x.leaf("message", dm.Relocation.Message)
		x.close("relocation")
	}
	x.leaf("status", dm.Status)
	x.close("distributionManagement")
}

func (x *xmlWriter) writeDependencyManagement(dm *DependencyManagement) {
	if dm == nil || len(dm.Dependencies) == 0 {
		return
	}
	x.open("dependencyManagement")
	x.writeDependencies(dm.Dependencies)
	x.close("dependencyManagement")
}

func (x *xmlWriter) writeDependencies(deps []Dependency) {
	if len(deps) == 0 {
		return
	}
	x.open("dependencies")
	for _, d := range deps {
		x.open("dependency")
		x.leaf("groupId", d.GroupID)
		x.leaf("artifactId", d.ArtifactID)
		x.leaf("version", d.Version)
		x.leafUnless("type", d.Type, DefaultDependencyType)
		x.leaf("classifier", d.Classifier)
		x.leafUnless("scope", d.Scope, "compile")
		x.leaf("systemPath", d.SystemPath)
		if len(d.Exclusions) > 0 {
			x.open("exclusions")
			for _, e := range d.Exclusions {
				x.open("exclusion")
				x.leaf("groupId", e.GroupID)
				x.leaf("artifactId", e.ArtifactID)
				x.close("exclusion")
			}
			x.close("exclusions")
		}
		x.leafUnless("optional", d.Optional, "false")
		x.close("dependency")
	}
	x.close("dependencies")
}

func (x *xmlWriter) writeRepositories(outer, inner string, repos []Repository) {
	if len(repos) == 0 {
		return
	}
	x.open(outer)
	for _, r := range repos {
		x.open(inner)
		x.writePolicy("releases", r.Releases)
		x.writePolicy("snapshots", r.Snapshots)
		x.leaf("id", r.ID)
		x.leaf("name", r.Name)
		x.leaf("url", r.URL)
		x.leafUnless("layout", r.Layout, "default")
		x.close(inner)
	}
	x.close(outer)
}

func (x *xmlWriter) writeBuild(b *Build, full bool) {
	x.open("build")
	if full {
		x.leaf("sourceDirectory", b.SourceDirectory)
		x.leaf("scriptSourceDirectory", b.ScriptSourceDirectory)
		x.leaf("testSourceDirectory", b.TestSourceDirectory)
		x.leaf("outputDirectory", b.OutputDirectory)
		x.leaf("testOutputDirectory", b.TestOutputDirectory)
		if len(b.Extensions) > 0 {
			x.open("extensions")
			for _, e := range b.Extensions {
				x.open("extension")
				x.leaf("groupId", e.GroupID)
				x.leaf("artifactId", e.ArtifactID)
				x.leaf("version", e.Version)
				x.close("extension")
			}
			x.close("extensions")
		}
	}
	x.leaf("defaultGoal", b.DefaultGoal)
	x.writeResources("resources", "resource", b.Resources)
	x.writeResources("testResources", "testResource", b.TestResources)
	x.leaf("directory", b.Directory)
	x.leaf("finalName", b.FinalName)
	x.list("filters", "filter", b.Filters)
	if b.PluginManagement != nil && len(b.PluginManagement.Plugins) > 0 {
		x.open("pluginManagement")
		x.writePlugins(b.PluginManagement.Plugins)
		x.close("pluginManagement")
	}
	x.writePlugins(b.Plugins)
	x.close("build")
}

func (x *xmlWriter) writeResources(outer, inner string, resources []Resource) {
	if len(resources) == 0 {
		return
	}
	x.open(outer)
	for _, r := range resources {
		x.open(inner)
		x.leaf("targetPath", r.TargetPath)
		x.leafUnless("filtering", r.Filtering, "false")
		x.leaf("directory", r.Directory)
		x.list("includes", "include", r.Includes)
		x.list("excludes", "exclude", r.Excludes)
		x.close(inner)
	}
	x.close(outer)
}

func (x *xmlWriter) writePlugins(plugins []Plugin) {
	if len(plugins) == 0 {
		return
	}
	x.open("plugins")
	for _, p := range plugins {
		x.open("plugin")
		x.leafUnless("groupId", p.GroupID, DefaultPluginGroupID)
		x.leaf("artifactId", p.ArtifactID)
		x.leaf("version", p.Version)
		x.leafUnless("extensions", p.Extensions, "false")
		if len(p.Executions) > 0 {
			x.open("executions")
			for _, e := range p.Executions {
				x.open("execution")
				x.leafUnless("id", e.ID, "default")
				x.leaf("phase", e.Phase)
				x.list("goals", "goal", e.Goals)
				x.leaf("inherited", e.Inherited)
				x.node(e.Configuration)
				x.close("execution")
			}
			x.close("executions")
		}
		x.writeDependencies(p.Dependencies)
		x.node(p.Goals)
		x.leaf("inherited", p.Inherited)
		x.node(p.Configuration)
		x.close("plugin")
	}
	x.close("plugins")
}

func (x *xmlWriter) writeReporting(r *Reporting) {
	if r == nil {
		return
	}
	x.open("reporting")
	x.leaf("excludeDefaults", r.ExcludeDefaults)
	x.leaf("outputDirectory", r.OutputDirectory)
	if len(r.Plugins) > 0 {
		x.open("plugins")
		for _, p := range r.Plugins {
			x.open("plugin")
			x.leafUnless("groupId", p.GroupID, DefaultPluginGroupID)
			x.leaf("artifactId", p.ArtifactID)
			x.leaf("version", p.Version)
			if len(p.ReportSets) > 0 {
				x.open("reportSets")
				for _, s := range p.ReportSets {
					x.open("reportSet")
					x.leafUnless("id", s.ID, "default")
					x.list("reports", "report", s.Reports)
					x.leaf("inherited", s.Inherited)
					x.node(s.Configuration)
					x.close("reportSet")
				}
				x.close("reportSets")
			}
			x.leaf("inherited", p.Inherited)
			x.node(p.Configuration)
			x.close("plugin")
		}
		x.close("plugins")
	}
	x.close("reporting")
}

func (x *xmlWriter) writeProfile(p Profile) {
	x.open("profile")
	x.leafUnless("id", p.ID, "default")
	if a := p.Activation; a != nil {
		x.open("activation")
		x.leafUnless("activeByDefault", a.ActiveByDefault, "false")
		x.leaf("jdk", a.JDK)
		if a.OS != nil {
			x.open("os")
			x.leaf("name", a.OS.Name)
			x.leaf("family", a.OS.Family)
			x.leaf("arch", a.OS.Arch)
			x.leaf("version", a.OS.Version)
			x.close("os")
		}
		if a.Property != nil {
			x.open("property")
			x.leaf("name", a.Property.Name)
			x.leaf("value", a.Property.Value)
			x.close("property")
		}
		if a.File != nil {
			x.open("file")
			x.leaf("missing", a.File.Missing)
			x.leaf("exists", a.File.Exists)
			x.close("file")
		}
		x.close("activation")
	}
	if p.Build != nil {
		x.writeBuild(p.Build, false)
	}
	x.list("modules", "module", p.Modules)
	x.writeDistributionManagement(p.DistributionManagement)
	x.properties("properties", p.Properties)
	x.writeDependencyManagement(p.DependencyManagement)
	x.writeDependencies(p.Dependencies)
	x.writeRepositories("repositories", "repository", p.Repositories)
	x.writeRepositories("pluginRepositories", "pluginRepository", p.PluginRepositories)
	x.node(p.Reports)
	x.writeReporting(p.Reporting)
	x.close("profile")
}
