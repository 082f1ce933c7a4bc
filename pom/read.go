package pom

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"regexp"

	"golang.org/x/net/html/charset"
)

var (
	utf8BOM      = []byte("\xef\xbb\xbf")
	declEncoding = regexp.MustCompile(`^\s*<\?xml[^>]*\sencoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)
)

// Parse decodes a descriptor. Documents declaring a non UTF-8 encoding are
// transcoded while reading; the declared name is kept in ModelEncoding.
func Parse(data []byte) (*Project, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var project Project
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&project); err != nil {
		return nil, err
	}

	if m := declEncoding.FindSubmatch(data); m != nil {
		project.ModelEncoding = string(m[1])
	}
	return &project, nil
}

func ReadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read POM: %w", err)
	}
	project, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse POM %s: %w", path, err)
	}
	return project, nil
}
