package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePOM(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, POMFile), []byte(content), 0o644))
}

func TestLoadFrom(t *testing.T) {
	root := t.TempDir()
	writePOM(t, root, `<project>
  <groupId>com.example</groupId>
  <artifactId>parent</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
  <modules>
    <module>app</module>
    <module>core</module>
    <module>core</module>
  </modules>
</project>`)
	writePOM(t, filepath.Join(root, "core"), `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <artifactId>core</artifactId>
</project>`)
	writePOM(t, filepath.Join(root, "app"), `<project>
  <parent><groupId>com.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <artifactId>app</artifactId>
  <dependencies>
    <dependency><groupId>com.example</groupId><artifactId>core</artifactId></dependency>
    <dependency><groupId>org.slf4j</groupId><artifactId>slf4j-api</artifactId></dependency>
  </dependencies>
</project>`)

	proj, err := LoadFrom(root)
	require.NoError(t, err)

	require.Len(t, proj.Modules, 3)
	assert.Equal(t, "parent", proj.Root.Name)
	assert.Equal(t, []string{"parent"}, proj.Module("core").Dependencies)
	assert.Equal(t, []string{"parent", "core"}, proj.Module("app").Dependencies)
	assert.Nil(t, proj.Module("missing"))

	var order []string
	for _, m := range proj.ModulesInOrder() {
		order = append(order, m.Name)
	}
	assert.Equal(t, []string{"parent", "core", "app"}, order)

	app := proj.Module("app")
	assert.Equal(t, "com.example:app:1.0", app.Coordinate())
	assert.Equal(t, filepath.Join(root, "app", ".simplified-pom.xml"), app.SimplifiedFile(".simplified-pom.xml"))
	assert.Same(t, proj, app.Project)
}

func TestLoadFromMissingModule(t *testing.T) {
	root := t.TempDir()
	writePOM(t, root, `<project>
  <artifactId>parent</artifactId>
  <modules><module>gone</module></modules>
</project>`)

	_, err := LoadFrom(root)
	assert.ErrorContains(t, err, "module gone of parent")
}

func TestLoadFromFile(t *testing.T) {
	root := t.TempDir()
	writePOM(t, root, `<project><artifactId>single</artifactId></project>`)

	proj, err := LoadFrom(filepath.Join(root, POMFile))
	require.NoError(t, err)
	assert.Equal(t, root, proj.Root.Dir)
}
