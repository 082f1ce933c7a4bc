package pom

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	DefaultPackaging      = "jar"
	DefaultDependencyType = "jar"
	DefaultPluginGroupID  = "org.apache.maven.plugins"
	DefaultRelativePath   = "../pom.xml"
)

type Project struct {
	XMLName                xml.Name                `xml:"project"`
	ModelVersion           string                  `xml:"modelVersion"`
	Parent                 *Parent                 `xml:"parent"`
	GroupID                string                  `xml:"groupId"`
	ArtifactID             string                  `xml:"artifactId"`
	Version                string                  `xml:"version"`
	Packaging              string                  `xml:"packaging"`
	Name                   string                  `xml:"name"`
	Description            string                  `xml:"description"`
	URL                    string                  `xml:"url"`
	InceptionYear          string                  `xml:"inceptionYear"`
	Organization           *Organization           `xml:"organization"`
	Licenses               []License               `xml:"licenses>license"`
	Developers             []Developer             `xml:"developers>developer"`
	Contributors           []Contributor           `xml:"contributors>contributor"`
	MailingLists           []MailingList           `xml:"mailingLists>mailingList"`
	Prerequisites          *Prerequisites          `xml:"prerequisites"`
	Modules                []string                `xml:"modules>module"`
	SCM                    *SCM                    `xml:"scm"`
	IssueManagement        *IssueManagement        `xml:"issueManagement"`
	CIManagement           *CIManagement           `xml:"ciManagement"`
	DistributionManagement *DistributionManagement `xml:"distributionManagement"`
	Properties             *Properties             `xml:"properties"`
	DependencyManagement   *DependencyManagement   `xml:"dependencyManagement"`
	Dependencies           []Dependency            `xml:"dependencies>dependency"`
	Repositories           []Repository            `xml:"repositories>repository"`
	PluginRepositories     []Repository            `xml:"pluginRepositories>pluginRepository"`
	Build                  *Build                  `xml:"build"`
	Reports                *Node                   `xml:"reports"`
	Reporting              *Reporting              `xml:"reporting"`
	Profiles               []Profile               `xml:"profiles>profile"`

	// ModelEncoding is the encoding named in the XML declaration.
	ModelEncoding string `xml:"-"`
}

// EffectivePackaging returns the packaging, defaulting to jar.
func (p *Project) EffectivePackaging() string {
	if p.Packaging == "" {
		return DefaultPackaging
	}
	return p.Packaging
}

// ManagedDependencies returns the dependencyManagement entries, or nil.
func (p *Project) ManagedDependencies() []Dependency {
	if p.DependencyManagement == nil {
		return nil
	}
	return p.DependencyManagement.Dependencies
}

func (p *Project) String() string {
	return p.GroupID + ":" + p.ArtifactID + ":" + p.Version
}

type Parent struct {
	GroupID      string `xml:"groupId"`
	ArtifactID   string `xml:"artifactId"`
	Version      string `xml:"version"`
	RelativePath string `xml:"relativePath"`
}

type ArtifactKey struct {
	GroupID    string
	ArtifactID string
}

func (k ArtifactKey) String() string {
	return k.GroupID + ":" + k.ArtifactID
}

type Dependency struct {
	GroupID    string      `xml:"groupId"`
	ArtifactID string      `xml:"artifactId"`
	Version    string      `xml:"version"`
	Type       string      `xml:"type"`
	Classifier string      `xml:"classifier"`
	Scope      string      `xml:"scope"`
	SystemPath string      `xml:"systemPath"`
	Exclusions []Exclusion `xml:"exclusions>exclusion"`
	Optional   string      `xml:"optional"`
}

func (d Dependency) Key() ArtifactKey {
	return ArtifactKey{GroupID: d.GroupID, ArtifactID: d.ArtifactID}
}

// ManagementKey identifies a dependency the way dependencyManagement does:
// groupId:artifactId:type[:classifier].
func (d Dependency) ManagementKey() string {
	typ := d.Type
	if typ == "" {
		typ = DefaultDependencyType
	}
	key := d.GroupID + ":" + d.ArtifactID + ":" + typ
	if d.Classifier != "" {
		key += ":" + d.Classifier
	}
	return key
}

func (d Dependency) IsOptional() bool {
	return strings.EqualFold(d.Optional, "true")
}

// Clone returns a copy that shares no slices with d.
func (d Dependency) Clone() Dependency {
	if d.Exclusions != nil {
		d.Exclusions = append([]Exclusion(nil), d.Exclusions...)
	}
	return d
}

func (d Dependency) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s:%s:%s", d.GroupID, d.ArtifactID, d.Version)
	if d.Type != "" && !strings.EqualFold(d.Type, DefaultDependencyType) {
		sb.WriteString(":" + d.Type)
	}
	if d.Classifier != "" {
		sb.WriteString(":" + d.Classifier)
	}
	if d.Scope != "" {
		sb.WriteString(":" + d.Scope)
	}
	if d.Optional != "" {
		sb.WriteString(":" + d.Optional)
	}
	sb.WriteString("]")
	return sb.String()
}

type Exclusion struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

type DependencyManagement struct {
	Dependencies []Dependency `xml:"dependencies>dependency"`
}

type Build struct {
	SourceDirectory       string            `xml:"sourceDirectory"`
	ScriptSourceDirectory string            `xml:"scriptSourceDirectory"`
	TestSourceDirectory   string            `xml:"testSourceDirectory"`
	OutputDirectory       string            `xml:"outputDirectory"`
	TestOutputDirectory   string            `xml:"testOutputDirectory"`
	Extensions            []Extension       `xml:"extensions>extension"`
	DefaultGoal           string            `xml:"defaultGoal"`
	Resources             []Resource        `xml:"resources>resource"`
	TestResources         []Resource        `xml:"testResources>testResource"`
	Directory             string            `xml:"directory"`
	FinalName             string            `xml:"finalName"`
	Filters               []string          `xml:"filters>filter"`
	PluginManagement      *PluginManagement `xml:"pluginManagement"`
	Plugins               []Plugin          `xml:"plugins>plugin"`
}

type Resource struct {
	TargetPath string   `xml:"targetPath"`
	Filtering  string   `xml:"filtering"`
	Directory  string   `xml:"directory"`
	Includes   []string `xml:"includes>include"`
	Excludes   []string `xml:"excludes>exclude"`
}

type Plugin struct {
	GroupID       string            `xml:"groupId"`
	ArtifactID    string            `xml:"artifactId"`
	Version       string            `xml:"version"`
	Extensions    string            `xml:"extensions"`
	Executions    []PluginExecution `xml:"executions>execution"`
	Dependencies  []Dependency      `xml:"dependencies>dependency"`
	Goals         *Node             `xml:"goals"`
	Inherited     string            `xml:"inherited"`
	Configuration *Node             `xml:"configuration"`
}

// Key returns groupId:artifactId with the default plugin groupId applied.
func (p Plugin) Key() ArtifactKey {
	groupID := p.GroupID
	if groupID == "" {
		groupID = DefaultPluginGroupID
	}
	return ArtifactKey{GroupID: groupID, ArtifactID: p.ArtifactID}
}

func (p Plugin) Is(groupID, artifactID string) bool {
	key := p.Key()
	return strings.EqualFold(key.GroupID, groupID) && strings.EqualFold(key.ArtifactID, artifactID)
}

type PluginExecution struct {
	ID            string   `xml:"id"`
	Phase         string   `xml:"phase"`
	Goals         []string `xml:"goals>goal"`
	Inherited     string   `xml:"inherited"`
	Configuration *Node    `xml:"configuration"`
}

type PluginManagement struct {
	Plugins []Plugin `xml:"plugins>plugin"`
}

type Extension struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type Reporting struct {
	ExcludeDefaults string         `xml:"excludeDefaults"`
	OutputDirectory string         `xml:"outputDirectory"`
	Plugins         []ReportPlugin `xml:"plugins>plugin"`
}

type ReportPlugin struct {
	GroupID       string      `xml:"groupId"`
	ArtifactID    string      `xml:"artifactId"`
	Version       string      `xml:"version"`
	ReportSets    []ReportSet `xml:"reportSets>reportSet"`
	Inherited     string      `xml:"inherited"`
	Configuration *Node       `xml:"configuration"`
}

type ReportSet struct {
	ID            string   `xml:"id"`
	Reports       []string `xml:"reports>report"`
	Inherited     string   `xml:"inherited"`
	Configuration *Node    `xml:"configuration"`
}

type License struct {
	Name         string `xml:"name"`
	URL          string `xml:"url"`
	Distribution string `xml:"distribution"`
	Comments     string `xml:"comments"`
}

type Organization struct {
	Name string `xml:"name"`
	URL  string `xml:"url"`
}

type Developer struct {
	ID              string      `xml:"id"`
	Name            string      `xml:"name"`
	Email           string      `xml:"email"`
	URL             string      `xml:"url"`
	Organization    string      `xml:"organization"`
	OrganizationURL string      `xml:"organizationUrl"`
	Roles           []string    `xml:"roles>role"`
	Timezone        string      `xml:"timezone"`
	Properties      *Properties `xml:"properties"`
}

func (d Developer) clone() Developer {
	d.Roles = append([]string(nil), d.Roles...)
	d.Properties = d.Properties.Clone()
	return d
}

type Contributor struct {
	Name            string      `xml:"name"`
	Email           string      `xml:"email"`
	URL             string      `xml:"url"`
	Organization    string      `xml:"organization"`
	OrganizationURL string      `xml:"organizationUrl"`
	Roles           []string    `xml:"roles>role"`
	Timezone        string      `xml:"timezone"`
	Properties      *Properties `xml:"properties"`
}

func (c Contributor) clone() Contributor {
	c.Roles = append([]string(nil), c.Roles...)
	c.Properties = c.Properties.Clone()
	return c
}

type IssueManagement struct {
	System string `xml:"system"`
	URL    string `xml:"url"`
}

type CIManagement struct {
	System    string     `xml:"system"`
	URL       string     `xml:"url"`
	Notifiers []Notifier `xml:"notifiers>notifier"`
}

type Notifier struct {
	Type          string      `xml:"type"`
	SendOnError   string      `xml:"sendOnError"`
	SendOnFailure string      `xml:"sendOnFailure"`
	SendOnSuccess string      `xml:"sendOnSuccess"`
	SendOnWarning string      `xml:"sendOnWarning"`
	Address       string      `xml:"address"`
	Configuration *Properties `xml:"configuration"`
}

type MailingList struct {
	Name          string   `xml:"name"`
	Subscribe     string   `xml:"subscribe"`
	Unsubscribe   string   `xml:"unsubscribe"`
	Post          string   `xml:"post"`
	Archive       string   `xml:"archive"`
	OtherArchives []string `xml:"otherArchives>otherArchive"`
}

type SCM struct {
	Connection          string `xml:"connection"`
	DeveloperConnection string `xml:"developerConnection"`
	Tag                 string `xml:"tag"`
	URL                 string `xml:"url"`
}

type Prerequisites struct {
	Maven string `xml:"maven"`
}

type Repository struct {
	Releases  *RepositoryPolicy `xml:"releases"`
	Snapshots *RepositoryPolicy `xml:"snapshots"`
	ID        string            `xml:"id"`
	Name      string            `xml:"name"`
	URL       string            `xml:"url"`
	Layout    string            `xml:"layout"`
}

type RepositoryPolicy struct {
	Enabled        string `xml:"enabled"`
	UpdatePolicy   string `xml:"updatePolicy"`
	ChecksumPolicy string `xml:"checksumPolicy"`
}

type DistributionManagement struct {
	Repository         *DeploymentRepository `xml:"repository"`
	SnapshotRepository *DeploymentRepository `xml:"snapshotRepository"`
	Site               *Site                 `xml:"site"`
	DownloadURL        string                `xml:"downloadUrl"`
	Relocation         *Relocation           `xml:"relocation"`
	Status             string                `xml:"status"`
}

type DeploymentRepository struct {
	UniqueVersion string            `xml:"uniqueVersion"`
	Releases      *RepositoryPolicy `xml:"releases"`
	Snapshots     *RepositoryPolicy `xml:"snapshots"`
	ID            string            `xml:"id"`
	Name          string            `xml:"name"`
	URL           string            `xml:"url"`
	Layout        string            `xml:"layout"`
}

type Site struct {
	ID   string `xml:"id"`
	Name string `xml:"name"`
	URL  string `xml:"url"`
}

type Relocation struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Message    string `xml:"message"`
}

type Profile struct {
	ID                     string                  `xml:"id"`
	Activation             *Activation             `xml:"activation"`
	Build                  *Build                  `xml:"build"`
	Modules                []string                `xml:"modules>module"`
	DistributionManagement *DistributionManagement `xml:"distributionManagement"`
	Properties             *Properties             `xml:"properties"`
	DependencyManagement   *DependencyManagement   `xml:"dependencyManagement"`
	Dependencies           []Dependency            `xml:"dependencies>dependency"`
	Repositories           []Repository            `xml:"repositories>repository"`
	PluginRepositories     []Repository            `xml:"pluginRepositories>pluginRepository"`
	Reports                *Node                   `xml:"reports"`
	Reporting              *Reporting              `xml:"reporting"`
}

type Activation struct {
	ActiveByDefault string              `xml:"activeByDefault"`
	JDK             string              `xml:"jdk"`
	OS              *ActivationOS       `xml:"os"`
	Property        *ActivationProperty `xml:"property"`
	File            *ActivationFile     `xml:"file"`
}

type ActivationOS struct {
	Name    string `xml:"name"`
	Family  string `xml:"family"`
	Arch    string `xml:"arch"`
	Version string `xml:"version"`
}

type ActivationProperty struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

type ActivationFile struct {
	Missing string `xml:"missing"`
	Exists  string `xml:"exists"`
}
