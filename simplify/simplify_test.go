package simplify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/simplipom/pom"
)

func parse(t *testing.T, xml string) *pom.Project {
	t.Helper()
	p, err := pom.Parse([]byte(xml))
	require.NoError(t, err)
	return p
}

func resolved(t *testing.T, original, effective string) *pom.Resolved {
	t.Helper()
	return &pom.Resolved{Original: parse(t, original), Effective: parse(t, effective)}
}

func marshal(t *testing.T, p *pom.Project) string {
	t.Helper()
	out, err := pom.NewWriter().Marshal(p)
	require.NoError(t, err)
	return string(out)
}

func ptr(b bool) *bool { return &b }

const depsOriginal = `<project>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0</version>
  <dependencies>
    <dependency><groupId>${project.groupId}</groupId><artifactId>example-api</artifactId></dependency>
    <dependency><groupId>com.other</groupId><artifactId>dup</artifactId></dependency>
    <dependency><groupId>org.slf4j</groupId><artifactId>slf4j-api</artifactId></dependency>
    <dependency><groupId>junit</groupId><artifactId>junit</artifactId><scope>test</scope></dependency>
  </dependencies>
</project>`

const depsEffective = `<project>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0</version>
  <dependencies>
    <dependency>
      <groupId>com.example</groupId><artifactId>example-api</artifactId><version>1.0</version>
      <scope>compile</scope><optional>false</optional>
    </dependency>
    <dependency>
      <groupId>org.slf4j</groupId><artifactId>slf4j-api</artifactId><version>2.0.9</version>
      <classifier>jdk</classifier><scope>runtime</scope>
      <exclusions><exclusion><groupId>x</groupId><artifactId>y</artifactId></exclusion></exclusions>
    </dependency>
    <dependency><groupId>junit</groupId><artifactId>junit</artifactId><version>4.13</version><scope>test</scope></dependency>
    <dependency><groupId>com.example</groupId><artifactId>extra</artifactId><version>1.0</version></dependency>
    <dependency><groupId>com.example</groupId><artifactId>opt</artifactId><version>1.0</version><optional>true</optional></dependency>
  </dependencies>
</project>`

func TestResetDependencies(t *testing.T) {
	r := resolved(t, depsOriginal, depsEffective)
	s := New(r, DefaultConfig(), PolicyFor(ModeJar), nil)

	s.ResetDependencies()

	deps := r.Original.Dependencies
	require.Len(t, deps, 3)

	assert.Equal(t, pom.Dependency{GroupID: "com.example", ArtifactID: "example-api", Version: "1.0"}, deps[0])

	assert.Equal(t, "org.slf4j", deps[1].GroupID)
	assert.Equal(t, "2.0.9", deps[1].Version)
	assert.Equal(t, "jdk", deps[1].Classifier)
	assert.Equal(t, "runtime", deps[1].Scope)
	assert.Empty(t, deps[1].Optional)
	assert.Equal(t, []pom.Exclusion{{GroupID: "x", ArtifactID: "y"}}, deps[1].Exclusions)

	assert.Equal(t, "extra", deps[2].ArtifactID)
	assert.Equal(t, "1.0", deps[2].Version)

	deps[1].Exclusions[0].GroupID = "changed"
	assert.Equal(t, "x", r.Effective.Dependencies[1].Exclusions[0].GroupID, "exclusions must be copied")

	before := marshal(t, r.Original)
	s.ResetDependencies()
	assert.Equal(t, before, marshal(t, r.Original), "second reset must be a no-op")
}

func TestResetDependenciesKeepFlags(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		config Config
		want   []string
	}{
		{
			name:   "library defaults drop test and optional",
			mode:   ModeJar,
			config: DefaultConfig(),
			want:   []string{"example-api", "slf4j-api", "extra"},
		},
		{
			name:   "starter keeps everything",
			mode:   ModeStarter,
			config: DefaultConfig(),
			want:   []string{"example-api", "slf4j-api", "junit", "extra", "opt"},
		},
		{
			name:   "starter with test dependencies disabled",
			mode:   ModeStarter,
			config: Config{OpenSourceProject: true, KeepTestDependencies: ptr(false)},
			want:   []string{"example-api", "slf4j-api", "extra", "opt"},
		},
		{
			name:   "exclude pattern",
			mode:   ModeJar,
			config: Config{ExcludeDependencies: []string{"com.example:extra:*", "^org\\.slf4j:.*"}},
			want:   []string{"example-api"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resolved(t, depsOriginal, depsEffective)
			New(r, tt.config, PolicyFor(tt.mode), nil).ResetDependencies()

			var got []string
			for _, d := range r.Original.Dependencies {
				got = append(got, d.ArtifactID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShadeKeepsDeclaredDependencies(t *testing.T) {
	r := resolved(t, `<project>
  <artifactId>demo-all</artifactId>
  <properties><lib.version>3.1</lib.version></properties>
  <dependencies>
    <dependency><groupId>${project.groupId}</groupId><artifactId>lib</artifactId><version>${lib.version}</version><scope>compile</scope></dependency>
  </dependencies>
</project>`, `<project>
  <groupId>com.example</groupId>
  <artifactId>demo-all</artifactId>
  <version>1.0</version>
  <properties><lib.version>3.1</lib.version></properties>
  <dependencies>
    <dependency><groupId>com.example</groupId><artifactId>lib</artifactId><version>3.1</version></dependency>
    <dependency><groupId>com.example</groupId><artifactId>transitive-only</artifactId><version>1</version></dependency>
  </dependencies>
</project>`)

	report, err := Simplify(r, DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, ModeShade, report.Mode)

	require.Len(t, r.Original.Dependencies, 1)
	assert.Equal(t, pom.Dependency{GroupID: "com.example", ArtifactID: "lib", Version: "3.1"}, r.Original.Dependencies[0])
	assert.Nil(t, r.Original.Properties)
}

func TestShadeAppliesRemovalRulesToDeclaredDependencies(t *testing.T) {
	r := resolved(t, `<project>
  <artifactId>demo-all</artifactId>
  <properties><junit.scope>test</junit.scope></properties>
  <dependencies>
    <dependency><groupId>com.example</groupId><artifactId>lib</artifactId><version>3.1</version></dependency>
    <dependency><groupId>junit</groupId><artifactId>junit</artifactId><version>4.13</version><scope>${junit.scope}</scope></dependency>
    <dependency><groupId>com.example</groupId><artifactId>opt</artifactId><version>1</version><optional>true</optional></dependency>
    <dependency><groupId>javax.servlet</groupId><artifactId>servlet-api</artifactId><version>2.5</version><scope>provided</scope></dependency>
    <dependency><groupId>com.example</groupId><artifactId>legacy</artifactId><version>1</version></dependency>
  </dependencies>
</project>`, `<project>
  <groupId>com.example</groupId>
  <artifactId>demo-all</artifactId>
  <version>1.0</version>
  <properties><junit.scope>test</junit.scope></properties>
</project>`)
	cfg := DefaultConfig()
	cfg.ExcludeDependencies = []string{"com.example:legacy:*"}

	New(r, cfg, PolicyFor(ModeShade), nil).ResetDependencies()

	var got []string
	for _, d := range r.Original.Dependencies {
		got = append(got, d.ArtifactID)
	}
	assert.Equal(t, []string{"lib"}, got)
}

func TestOptimizeDependenciesDropsDefaults(t *testing.T) {
	r := resolved(t, `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <artifactId>demo</artifactId>
  <dependencies>
    <dependency>
      <groupId>${project.groupId}</groupId><artifactId>lib</artifactId><version>${project.version}</version>
      <scope>compile</scope><optional>false</optional>
    </dependency>
  </dependencies>
</project>`, `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0</version>
</project>`)

	New(r, DefaultConfig(), PolicyFor(ModePom), nil).OptimizeDependencies()

	out := marshal(t, r.Original)
	assert.NotContains(t, out, "<scope>")
	assert.NotContains(t, out, "<optional>")
	assert.Equal(t, pom.Dependency{GroupID: "com.example", ArtifactID: "lib", Version: "1.0"}, r.Original.Dependencies[0])
}

func TestReplaceParentRevision(t *testing.T) {
	original := `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>${revision}</version></parent>
  <artifactId>demo</artifactId>
  <properties><revision>%s</revision><other>x</other></properties>
</project>`
	effective := `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.2.3</version></parent>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.2.3</version>
  <properties><revision>%s</revision><other>x</other></properties>
</project>`

	t.Run("matching revision is removed", func(t *testing.T) {
		r := resolved(t, fmt.Sprintf(original, "1.2.3"), fmt.Sprintf(effective, "1.2.3"))
		New(r, DefaultConfig(), PolicyFor(ModePom), nil).ReplaceParentRevision()

		assert.Equal(t, "1.2.3", r.Original.Parent.Version)
		assert.False(t, r.Original.Properties.Has(RevisionKey))
		assert.True(t, r.Original.Properties.Has("other"))
	})

	t.Run("different revision is kept", func(t *testing.T) {
		r := resolved(t, fmt.Sprintf(original, "9"), fmt.Sprintf(effective, "9"))
		New(r, DefaultConfig(), PolicyFor(ModePom), nil).ReplaceParentRevision()

		assert.Equal(t, "1.2.3", r.Original.Parent.Version)
		assert.True(t, r.Original.Properties.Has(RevisionKey))
	})
}

func TestRemoveParentIdentity(t *testing.T) {
	original := `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <name>Demo ${project.artifactId}</name>
</project>`
	effective := `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0</version>
  <packaging>war</packaging>
  <name>Demo demo</name>
</project>`

	t.Run("removed", func(t *testing.T) {
		r := resolved(t, original, effective)
		New(r, DefaultConfig(), PolicyFor(ModeWar), nil).RemoveParent()

		o := r.Original
		assert.Nil(t, o.Parent)
		assert.Equal(t, "com.example", o.GroupID)
		assert.Equal(t, "1.0", o.Version)
		assert.Equal(t, "war", o.Packaging)
		assert.Equal(t, "Demo demo", o.Name)
	})

	t.Run("kept by configuration", func(t *testing.T) {
		r := resolved(t, original, effective)
		cfg := DefaultConfig()
		cfg.RemoveParent = ptr(false)
		New(r, cfg, PolicyFor(ModeWar), nil).RemoveParent()

		o := r.Original
		require.NotNil(t, o.Parent)
		assert.Empty(t, o.GroupID, "groupId equal to the parent's stays omitted")
		assert.Empty(t, o.Version, "version equal to the parent's stays omitted")
		assert.Equal(t, "war", o.Packaging)
	})
}

func TestNoopRemovesParentOnlyWhenAsked(t *testing.T) {
	original := `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <artifactId>tool</artifactId>
  <packaging>bundle</packaging>
</project>`
	effective := `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <groupId>com.example</groupId>
  <artifactId>tool</artifactId>
  <version>1.0</version>
  <packaging>bundle</packaging>
</project>`

	r := resolved(t, original, effective)
	report, err := Simplify(r, DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, ModeNoop, report.Mode)
	assert.NotEmpty(t, report.Warnings)
	assert.NotNil(t, r.Original.Parent)

	r = resolved(t, original, effective)
	cfg := DefaultConfig()
	cfg.RemoveParent = ptr(true)
	_, err = Simplify(r, cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, r.Original.Parent)
	assert.Equal(t, "com.example", r.Original.GroupID)
}

func TestBomWithEmptyManagement(t *testing.T) {
	r := resolved(t, `<project>
  <groupId>com.example</groupId>
  <artifactId>demo-bom</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
</project>`, `<project>
  <groupId>com.example</groupId>
  <artifactId>demo-bom</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
</project>`)
	cfg := DefaultConfig()
	cfg.Mode = "bom"
	cfg.ExpandImportDependencyManagement = true

	report, err := Simplify(r, cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, ModeBom, report.Mode)
	assert.Len(t, report.Warnings, 2)
	assert.Nil(t, r.Original.DependencyManagement)
	assert.NotContains(t, marshal(t, r.Original), "dependencyManagement")
}

func TestBomExpandsManagement(t *testing.T) {
	r := resolved(t, `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <artifactId>demo-bom</artifactId>
  <packaging>pom</packaging>
  <properties><lib.version>2.0</lib.version></properties>
  <dependencyManagement>
    <dependencies>
      <dependency><groupId>${project.groupId}</groupId><artifactId>lib</artifactId><version>${lib.version}</version></dependency>
      <dependency><groupId>org.other</groupId><artifactId>other-bom</artifactId><version>3</version><type>pom</type><scope>import</scope></dependency>
    </dependencies>
  </dependencyManagement>
</project>`, `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <groupId>com.example</groupId>
  <artifactId>demo-bom</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
  <properties><lib.version>2.0</lib.version></properties>
  <dependencyManagement>
    <dependencies>
      <dependency><groupId>com.example</groupId><artifactId>lib</artifactId><version>2.0</version><scope>compile</scope></dependency>
      <dependency><groupId>org.other</groupId><artifactId>other-lib</artifactId><version>3</version></dependency>
    </dependencies>
  </dependencyManagement>
</project>`)

	t.Run("expanded", func(t *testing.T) {
		r := &pom.Resolved{Original: r.Original.Clone(), Effective: r.Effective}
		cfg := DefaultConfig()
		cfg.ExpandImportDependencyManagement = true

		report, err := Simplify(r, cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, ModeBom, report.Mode)
		assert.Empty(t, report.Warnings)

		assert.Equal(t, []pom.Dependency{
			{GroupID: "com.example", ArtifactID: "lib", Version: "2.0"},
			{GroupID: "org.other", ArtifactID: "other-lib", Version: "3"},
		}, r.Original.ManagedDependencies())
		assert.Nil(t, r.Original.Parent)
		assert.Nil(t, r.Original.Properties)
	})

	t.Run("declared entries resolved literally", func(t *testing.T) {
		r := &pom.Resolved{Original: r.Original.Clone(), Effective: r.Effective}

		_, err := Simplify(r, DefaultConfig(), nil)
		require.NoError(t, err)

		managed := r.Original.ManagedDependencies()
		require.Len(t, managed, 2)
		assert.Equal(t, pom.Dependency{GroupID: "com.example", ArtifactID: "lib", Version: "2.0"}, managed[0])
		assert.Equal(t, "import", managed[1].Scope)
	})
}

func TestCreatePropertiesByConfig(t *testing.T) {
	original := `<project>
  <artifactId>demo</artifactId>
  <properties><a>1</a></properties>
  <build>
    <plugins>
      <plugin>
        <groupId>icu.easyj.maven.plugins</groupId>
        <artifactId>easyj-maven-plugin</artifactId>
        <configuration>
          <createProperties><b>2</b></createProperties>
          <removeParent>true</removeParent>
          %s
        </configuration>
      </plugin>
    </plugins>
  </build>
</project>`
	cfg := DefaultConfig()
	cfg.CreateProperties = pom.NewProperties("b", "2", "", "skipped", "empty", "")

	t.Run("configuration emptied", func(t *testing.T) {
		r := resolved(t, fmt.Sprintf(original, ""), `<project><artifactId>demo</artifactId></project>`)
		New(r, cfg, PolicyFor(ModePom), nil).CreatePropertiesByConfig()

		assert.Equal(t, []string{"a", "b"}, r.Original.Properties.Keys())
		assert.Nil(t, r.Original.Build.Plugins[0].Configuration)
	})

	t.Run("other settings kept", func(t *testing.T) {
		r := resolved(t, fmt.Sprintf(original, "<mode>jar</mode>"), `<project><artifactId>demo</artifactId></project>`)
		New(r, cfg, PolicyFor(ModePom), nil).CreatePropertiesByConfig()

		conf := r.Original.Build.Plugins[0].Configuration
		require.NotNil(t, conf)
		require.Len(t, conf.Children, 1)
		assert.Equal(t, "mode", conf.Children[0].Name)
	})

	t.Run("no properties section", func(t *testing.T) {
		r := resolved(t, `<project><artifactId>demo</artifactId></project>`, `<project><artifactId>demo</artifactId></project>`)
		New(r, cfg, PolicyFor(ModePom), nil).CreatePropertiesByConfig()

		assert.Equal(t, []string{"b"}, r.Original.Properties.Keys())
	})

	t.Run("nothing to create", func(t *testing.T) {
		r := resolved(t, `<project><artifactId>demo</artifactId></project>`, `<project><artifactId>demo</artifactId></project>`)
		empty := DefaultConfig()
		empty.CreateProperties = pom.NewProperties("empty", "")
		New(r, empty, PolicyFor(ModePom), nil).CreatePropertiesByConfig()

		assert.Nil(t, r.Original.Properties)
	})
}

func TestCreatePropertiesAfterRemoveProperties(t *testing.T) {
	const descriptor = `<project>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0</version>
  <properties><lib.version>3.1</lib.version></properties>
</project>`
	r := resolved(t, descriptor, descriptor)
	cfg := DefaultConfig()
	cfg.CreateProperties = pom.NewProperties("created", "yes")

	report, err := Simplify(r, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, ModeJar, report.Mode)

	assert.Equal(t, []string{"created"}, r.Original.Properties.Keys())
	out := marshal(t, r.Original)
	assert.Contains(t, out, "<created>yes</created>")
	assert.NotContains(t, out, "lib.version")
}

func TestRevisionOnlyPropertiesAreOmitted(t *testing.T) {
	r := resolved(t, `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>${revision}</version></parent>
  <artifactId>aggregator</artifactId>
  <packaging>pom</packaging>
  <properties><revision>1.0</revision></properties>
</project>`, `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <groupId>com.example</groupId>
  <artifactId>aggregator</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
  <properties><revision>1.0</revision></properties>
</project>`)

	report, err := Simplify(r, DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, ModePom, report.Mode)

	assert.Zero(t, r.Original.Properties.Len())
	assert.NotContains(t, marshal(t, r.Original), "properties")
}

func TestLocalPropertiesAndNameTemplate(t *testing.T) {
	r := resolved(t, `<project>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
  <properties><keep>1</keep><local.only>2</local.only></properties>
</project>`, `<project>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
  <properties><keep>1</keep><local.only>2</local.only></properties>
</project>`)
	cfg := DefaultConfig()
	cfg.RemoveLocalProperties = []string{"local.only", "absent"}
	cfg.ArtifactNameTemplate = "${project.groupId}:${project.artifactId}"

	_, err := Simplify(r, cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"keep"}, r.Original.Properties.Keys())
	assert.Equal(t, "com.example:demo", r.Original.Name)
}

func TestAfterSimplifyOnly(t *testing.T) {
	r := resolved(t, `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>${revision}</version></parent>
  <artifactId>demo</artifactId>
  <build><plugins><plugin><artifactId>maven-jar-plugin</artifactId></plugin></plugins></build>
</project>`, `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0</version>
</project>`)

	report, err := AfterSimplifyOnly(r, nil)
	require.NoError(t, err)
	assert.Equal(t, ModePom, report.Mode)
	assert.Equal(t, "1.0", r.Original.Parent.Version)
	assert.NotNil(t, r.Original.Build, "build is untouched")
}

func TestSimplifyRejectsIncompleteProject(t *testing.T) {
	_, err := Simplify(&pom.Resolved{}, DefaultConfig(), nil)
	assert.Error(t, err)
}

func TestMavenPluginKeepsPrerequisites(t *testing.T) {
	const descriptor = `<project>
  <groupId>com.example</groupId>
  <artifactId>demo-maven-plugin</artifactId>
  <version>1.0</version>
  <packaging>maven-plugin</packaging>
  <prerequisites><maven>3.6.3</maven></prerequisites>
  <build><plugins><plugin><artifactId>maven-plugin-plugin</artifactId></plugin></plugins></build>
  <profiles><profile><id>release</id></profile></profiles>
</project>`
	r := resolved(t, descriptor, descriptor)

	report, err := Simplify(r, DefaultConfig(), nil)
	require.NoError(t, err)

	assert.Equal(t, ModeMavenPlugin, report.Mode)
	require.NotNil(t, r.Original.Prerequisites)
	assert.Nil(t, r.Original.Build)
	assert.Empty(t, r.Original.Profiles)
}

func TestRemoveParentRelativePath(t *testing.T) {
	const descriptor = `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version><relativePath>../build/pom.xml</relativePath></parent>
  <artifactId>demo</artifactId>
</project>`
	r := resolved(t, descriptor, descriptor)

	New(r, DefaultConfig(), PolicyFor(ModePom), nil).RemoveParentRelativePath()

	assert.Empty(t, r.Original.Parent.RelativePath)
	assert.Equal(t, "../build/pom.xml", r.Effective.Parent.RelativePath)
}

func TestKeptParentLosesRelativePath(t *testing.T) {
	const original = `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version><relativePath>../build/pom.xml</relativePath></parent>
  <artifactId>demo</artifactId>
  <packaging>pom</packaging>
</project>`
	const effective = `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version><relativePath>../build/pom.xml</relativePath></parent>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
</project>`

	tests := []struct {
		name string
		mode string
	}{
		{name: "pom", mode: ModeAuto},
		{name: "noop", mode: string(ModeNoop)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resolved(t, original, effective)
			cfg := DefaultConfig()
			cfg.Mode = tt.mode
			cfg.RemoveParent = ptr(false)

			_, err := Simplify(r, cfg, nil)
			require.NoError(t, err)

			require.NotNil(t, r.Original.Parent)
			assert.Empty(t, r.Original.Parent.RelativePath)
			assert.NotContains(t, marshal(t, r.Original), "relativePath")
		})
	}

	t.Run("create-pom-file keeps it", func(t *testing.T) {
		r := resolved(t, original, effective)
		_, err := AfterSimplifyOnly(r, nil)
		require.NoError(t, err)
		assert.Equal(t, "../build/pom.xml", r.Original.Parent.RelativePath)
	})
}
