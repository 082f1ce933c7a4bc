package pom

import (
	"encoding/xml"
	"strings"
)

type Property struct {
	Key   string
	Value string
}

// Properties is a string map that remembers insertion order so the
// serializer writes keys back in the order the author declared them.
type Properties struct {
	entries []Property
}

func NewProperties(kv ...string) *Properties {
	p := &Properties{}
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}
	return p
}

func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

func (p *Properties) index(key string) int {
	if p == nil {
		return -1
	}
	for i, e := range p.entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

func (p *Properties) Get(key string) (string, bool) {
	i := p.index(key)
	if i < 0 {
		return "", false
	}
	return p.entries[i].Value, true
}

func (p *Properties) Has(key string) bool {
	return p.index(key) >= 0
}

// Set replaces the value of an existing key in place or appends a new one.
func (p *Properties) Set(key, value string) {
	if i := p.index(key); i >= 0 {
		p.entries[i].Value = value
		return
	}
	p.entries = append(p.entries, Property{Key: key, Value: value})
}

func (p *Properties) Delete(key string) bool {
	i := p.index(key)
	if i < 0 {
		return false
	}
	p.entries = append(p.entries[:i], p.entries[i+1:]...)
	return true
}

func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.Key
	}
	return keys
}

func (p *Properties) Entries() []Property {
	if p == nil {
		return nil
	}
	return append([]Property(nil), p.entries...)
}

func (p *Properties) Clone() *Properties {
	if p == nil {
		return nil
	}
	return &Properties{entries: append([]Property(nil), p.entries...)}
}

func (p *Properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.entries = nil
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			p.Set(t.Name.Local, strings.TrimSpace(value))
		case xml.EndElement:
			return nil
		}
	}
}
