// Package config gathers the settings of a run. Sources are applied in
// order, each overriding the previous one: built-in defaults and the
// environment, the tool's plugin block in the descriptor, a YAML file and
// finally command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/simplipom/pom"
	"github.com/dhamidi/simplipom/simplify"
)

const (
	DefaultSimplifiedPomFileName = ".simplified-pom.xml"
	DefaultFileName              = ".simplipom.yaml"

	EnvMode    = "SIMPLIPOM_MODE"
	EnvRepoURL = "MAVEN_REPO_URL"
)

type Settings struct {
	Mode string `yaml:"mode"`
	Skip bool   `yaml:"skip"`

	RemoveParent      *bool `yaml:"removeParent"`
	OpenSourceProject bool  `yaml:"isOpenSourceProject"`

	KeepProvidedDependencies *bool `yaml:"keepProvidedDependencies"`
	KeepOptionalDependencies *bool `yaml:"keepOptionalDependencies"`
	KeepTestDependencies     *bool `yaml:"keepTestDependencies"`

	ExcludeDependencies   []string   `yaml:"excludeDependencies"`
	RemoveLocalProperties []string   `yaml:"removeLocalProperties"`
	CreateProperties      Properties `yaml:"createProperties"`

	ExpandImportDependencyManagement bool   `yaml:"expandImportDependencyManagement"`
	ArtifactNameTemplate             string `yaml:"artifactNameTemplate"`

	SimplifiedPomFileName string `yaml:"simplifiedPomFileName"`
	OutputDirectory       string `yaml:"outputDirectory"`
	FileComment           string `yaml:"fileComment"`
	UseTabIndent          bool   `yaml:"useTabIndent"`

	// Properties are user properties; they override the ones declared in
	// descriptors while the effective model is built.
	Properties map[string]string `yaml:"properties"`
	RepoURL    string            `yaml:"repositoryUrl"`
	Offline    bool              `yaml:"offline"`
}

// Properties keeps YAML mapping entries in document order.
type Properties []pom.Property

func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: createProperties must be a mapping", node.Line)
	}
	out := make(Properties, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, pom.Property{Key: node.Content[i].Value, Value: node.Content[i+1].Value})
	}
	*p = out
	return nil
}

// Defaults returns the built-in settings, with the mode taken from
// SIMPLIPOM_MODE when set.
func Defaults() Settings {
	s := Settings{
		Mode:                  simplify.ModeAuto,
		OpenSourceProject:     true,
		SimplifiedPomFileName: DefaultSimplifiedPomFileName,
		RepoURL:               os.Getenv(EnvRepoURL),
	}
	if mode := strings.TrimSpace(os.Getenv(EnvMode)); mode != "" {
		s.Mode = mode
	}
	return s
}

// LoadEnv loads the given dotenv files into the process environment.
// Files that do not exist are skipped; variables already set win.
func LoadEnv(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// LoadFile overlays the YAML file at path onto s. Keys missing from the
// file leave s unchanged.
func LoadFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}
	return nil
}

// LoadFileIfExists is LoadFile for an optional file.
func LoadFileIfExists(path string, s *Settings) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return true, LoadFile(path, s)
}

// SimplifyConfig converts the settings into the configuration of one
// simplification run.
func (s *Settings) SimplifyConfig() simplify.Config {
	cfg := simplify.Config{
		Mode:                             s.Mode,
		RemoveParent:                     s.RemoveParent,
		OpenSourceProject:                s.OpenSourceProject,
		KeepProvidedDependencies:         s.KeepProvidedDependencies,
		KeepOptionalDependencies:         s.KeepOptionalDependencies,
		KeepTestDependencies:             s.KeepTestDependencies,
		ExcludeDependencies:              append([]string(nil), s.ExcludeDependencies...),
		RemoveLocalProperties:            append([]string(nil), s.RemoveLocalProperties...),
		ExpandImportDependencyManagement: s.ExpandImportDependencyManagement,
		ArtifactNameTemplate:             s.ArtifactNameTemplate,
	}
	if len(s.CreateProperties) > 0 {
		cfg.CreateProperties = pom.NewProperties()
		for _, p := range s.CreateProperties {
			cfg.CreateProperties.Set(p.Key, p.Value)
		}
	}
	if cfg.Mode == "" {
		cfg.Mode = simplify.ModeAuto
	}
	return cfg
}

// Writer returns the serializer configured by the settings.
func (s *Settings) Writer() *pom.Writer {
	w := pom.NewWriter()
	if s.UseTabIndent {
		w.Indent = "\t"
	}
	w.FileComment = s.FileComment
	return w
}
