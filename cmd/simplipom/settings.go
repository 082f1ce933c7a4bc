package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/simplipom/config"
	"github.com/dhamidi/simplipom/pom"
	"github.com/dhamidi/simplipom/project"
)

// settingsFlags holds the flags shared by the commands that read
// descriptors.
type settingsFlags struct {
	configFile string
	flags      config.Settings
	fs         *pflag.FlagSet

	once    sync.Once
	fetcher *pom.MavenFetcher
}

func (o *settingsFlags) bind(fs *pflag.FlagSet) {
	o.flags = config.Defaults()
	o.fs = fs
	config.BindFlags(fs, &o.flags)
	fs.StringVarP(&o.configFile, "config", "c", "", "settings file (default: "+config.DefaultFileName+" next to the pom.xml)")
}

// settings layers the settings for a descriptor in dir. model, when not
// nil, contributes its plugin configuration.
func (o *settingsFlags) settings(dir string, model *pom.Project) (config.Settings, error) {
	s := config.Defaults()
	if model != nil {
		if err := config.FromProject(model, &s); err != nil {
			commonlog.GetLogger("simplipom.cmd").Warningf("Plugin configuration of %s: %s", model, err)
		}
	}

	if o.configFile != "" {
		if err := config.LoadFile(o.configFile, &s); err != nil {
			return s, err
		}
	} else if _, err := config.LoadFileIfExists(filepath.Join(dir, config.DefaultFileName), &s); err != nil {
		return s, err
	}

	config.Overlay(&s, &o.flags, o.fs)
	return s, nil
}

// loader returns a Loader for s. Loaders of one run share a fetcher and
// so its cache; the repository of the first settings wins.
func (o *settingsFlags) loader(s config.Settings) *pom.Loader {
	if s.Offline {
		return pom.NewLoader(nil, s.Properties)
	}
	o.once.Do(func() {
		o.fetcher = pom.NewMavenFetcher()
		if s.RepoURL != "" {
			o.fetcher.RepoURL = strings.TrimSuffix(s.RepoURL, "/")
		}
	})
	return pom.NewLoader(o.fetcher, s.Properties)
}

// load builds the tree pair of the descriptor at path together with its
// final settings.
func (o *settingsFlags) load(ctx context.Context, path string) (*pom.Resolved, config.Settings, error) {
	dir := filepath.Dir(path)
	pre, err := o.settings(dir, nil)
	if err != nil {
		return nil, pre, err
	}
	r, err := o.loader(pre).Load(ctx, path)
	if err != nil {
		return nil, pre, err
	}
	s, err := o.settings(dir, r.Effective)
	return r, s, err
}

// pomPath turns a command argument into the path of a descriptor.
func pomPath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read POM: %w", err)
	}
	if info.IsDir() {
		path = filepath.Join(path, project.POMFile)
	}
	return path, nil
}

// modulesOf returns the build unit at path, or every unit of the project
// rooted there when recursive is set.
func modulesOf(path string, recursive bool) ([]*project.Module, error) {
	if recursive {
		proj, err := project.LoadFrom(path)
		if err != nil {
			return nil, err
		}
		return proj.ModulesInOrder(), nil
	}

	model, err := pom.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return []*project.Module{{
		Name:    model.ArtifactID,
		Dir:     filepath.Dir(path),
		POMFile: path,
		Model:   model,
	}}, nil
}

func outputPath(m *project.Module, s config.Settings) string {
	switch {
	case s.OutputDirectory == "":
		return m.SimplifiedFile(s.SimplifiedPomFileName)
	case filepath.IsAbs(s.OutputDirectory):
		return filepath.Join(s.OutputDirectory, s.SimplifiedPomFileName)
	default:
		return m.SimplifiedFile(filepath.Join(s.OutputDirectory, s.SimplifiedPomFileName))
	}
}
