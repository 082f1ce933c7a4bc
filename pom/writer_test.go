package pom

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const projectStart = `<project xmlns="http://maven.apache.org/POM/4.0.0" xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`

func TestMarshalHeaderAndEmptyElements(t *testing.T) {
	p := &Project{
		ModelVersion: "4.0.0",
		GroupID:      "com.example",
		ArtifactID:   "demo",
		Version:      "1.0",
		Packaging:    "jar",
		SCM:          &SCM{},
		Properties:   NewProperties("aaa", "111", "bbb", ""),
	}
	w := &Writer{Indent: "\t", FileComment: "comment"}

	got, err := w.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<!--comment-->`,
		projectStart,
		"\t<modelVersion>4.0.0</modelVersion>",
		"\t<groupId>com.example</groupId>",
		"\t<artifactId>demo</artifactId>",
		"\t<version>1.0</version>",
		"\t<scm/>",
		"\t<properties>",
		"\t\t<aaa>111</aaa>",
		"\t\t<bbb/>",
		"\t</properties>",
		"</project>",
		"",
	}, "\n")

	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalOmitsDefaults(t *testing.T) {
	p := &Project{
		ArtifactID: "demo",
		Parent: &Parent{
			GroupID:      "com.example",
			ArtifactID:   "parent",
			Version:      "1",
			RelativePath: "../pom.xml",
		},
		Prerequisites:        &Prerequisites{Maven: "2.0"},
		Properties:           NewProperties(),
		DependencyManagement: &DependencyManagement{},
		Dependencies: []Dependency{{
			GroupID:    "org.slf4j",
			ArtifactID: "slf4j-api",
			Version:    "2.0.9",
			Type:       "jar",
			Scope:      "compile",
			Optional:   "false",
		}},
		Repositories: []Repository{{ID: "central", URL: "https://repo", Layout: "default"}},
		Build: &Build{Plugins: []Plugin{{
			GroupID:    "org.apache.maven.plugins",
			ArtifactID: "maven-jar-plugin",
			Executions: []PluginExecution{{ID: "default", Goals: []string{"jar"}}},
		}}},
	}

	got, err := NewWriter().Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		projectStart,
		"  <parent>",
		"    <groupId>com.example</groupId>",
		"    <artifactId>parent</artifactId>",
		"    <version>1</version>",
		"  </parent>",
		"  <artifactId>demo</artifactId>",
		"  <dependencies>",
		"    <dependency>",
		"      <groupId>org.slf4j</groupId>",
		"      <artifactId>slf4j-api</artifactId>",
		"      <version>2.0.9</version>",
		"    </dependency>",
		"  </dependencies>",
		"  <repositories>",
		"    <repository>",
		"      <id>central</id>",
		"      <url>https://repo</url>",
		"    </repository>",
		"  </repositories>",
		"  <build>",
		"    <plugins>",
		"      <plugin>",
		"        <artifactId>maven-jar-plugin</artifactId>",
		"        <executions>",
		"          <execution>",
		"            <goals>",
		"              <goal>jar</goal>",
		"            </goals>",
		"          </execution>",
		"        </executions>",
		"      </plugin>",
		"    </plugins>",
		"  </build>",
		"</project>",
		"",
	}, "\n")

	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalOmitsEmptyProperties(t *testing.T) {
	props := NewProperties("revision", "1.0")
	props.Delete("revision")
	p := &Project{
		ArtifactID: "demo",
		Properties: props,
		Profiles:   []Profile{{ID: "ci", Properties: NewProperties()}},
	}

	got, err := NewWriter().Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(got), "properties") {
		t.Errorf("Marshal() wrote an empty properties section:\n%s", got)
	}
	if !strings.Contains(string(got), "<id>ci</id>") {
		t.Errorf("Marshal() dropped the profile:\n%s", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	p, err := Parse([]byte(samplePOM))
	if err != nil {
		t.Fatal(err)
	}
	w := NewWriter()

	first, err := w.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := Parse(first)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v\n%s", err, first)
	}
	second, err := w.Marshal(reparsed)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("serialization is not stable (-first +second):\n%s", diff)
	}
	for _, fragment := range []string{
		`<items combine.children="append">`,
		"<item>a</item>",
		"<alpha>2</alpha>",
		"<type>test-jar</type>",
		"<optional>TRUE</optional>",
	} {
		if !strings.Contains(string(first), fragment) {
			t.Errorf("output is missing %q", fragment)
		}
	}
	if strings.Contains(string(first), "<optional>false</optional>") {
		t.Error("optional=false should be omitted")
	}
}

func TestMarshalEncoding(t *testing.T) {
	p := &Project{ArtifactID: "demo", Name: "café", ModelEncoding: "ISO-8859-1"}

	got, err := NewWriter().Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.HasPrefix(got, []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>`)) {
		t.Errorf("declaration = %q", got[:40])
	}
	if !bytes.Contains(got, []byte{'c', 'a', 'f', 0xe9}) {
		t.Error("name was not encoded as ISO-8859-1")
	}

	back, err := Parse(got)
	if err != nil {
		t.Fatal(err)
	}
	if back.Name != "café" {
		t.Errorf("Name = %q after round trip", back.Name)
	}
}

func TestNormalize(t *testing.T) {
	got := normalize("<a>\r\n\n\n<b />\n</a>")
	if want := "<a>\n<b/>\n</a>"; got != want {
		t.Errorf("normalize() = %q, want %q", got, want)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", ".simplified-pom.xml")
	p := &Project{ModelVersion: "4.0.0", ArtifactID: "demo"}
	w := NewWriter()

	written, err := w.WriteFile(path, p)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if !written {
		t.Error("first WriteFile() should write")
	}

	written, err = w.WriteFile(path, p)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if written {
		t.Error("identical content should not be rewritten")
	}

	p.Version = "2.0"
	if written, _ = w.WriteFile(path, p); !written {
		t.Error("changed content should be written")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<version>2.0</version>") {
		t.Errorf("file content = %s", data)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only the output file", len(entries))
	}
}
