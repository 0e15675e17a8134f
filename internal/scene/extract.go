package scene

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extractor pulls the typed fields out of one record block. Implementations
// never fail: unrecognised blocks come back as KindUnknown and blocks missing
// required fields come back without a payload.
type Extractor interface {
	Extract(block string) Record
}

// Extractor strategy names accepted by ParseExtractor.
const (
	ExtractorScan = "scan"
	ExtractorYAML = "yaml"
)

// ParseExtractor returns the extractor registered under name.
func ParseExtractor(name string) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ExtractorScan, "":
		return LineExtractor{}, nil
	case ExtractorYAML:
		return YAMLExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extractor: %q (valid options: scan, yaml)", name)
	}
}

const (
	objectMarker    = "1 &"
	transformMarker = "4 &"

	tagName       = "m_Name:"
	tagIsActive   = "m_IsActive:"
	tagGameObject = "m_GameObject:"
	tagFather     = "m_Father:"
	tagChildren   = "m_Children:"
)

var fileIDPattern = regexp.MustCompile(`fileID:\s*(\d+)`)

// classify inspects the header line of a block.
func classify(block string) Kind {
	switch {
	case strings.HasPrefix(block, objectMarker):
		return KindObject
	case strings.HasPrefix(block, transformMarker):
		return KindTransform
	default:
		return KindUnknown
	}
}

// headerID returns the anchor id of a header line such as "4 &123 stripped".
func headerID(line string) string {
	_, after, ok := strings.Cut(line, "&")
	if !ok {
		return ""
	}
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// fileRef returns the first "fileID: <digits>" reference on a line.
func fileRef(line string) string {
	if m := fileIDPattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// activeFlag treats any flag text containing a "1" as active.
func activeFlag(text string) bool {
	return strings.Contains(text, "1")
}

// LineExtractor scans a block line by line for the handful of fields the
// hierarchy needs. It is tolerant of unknown fields and never parses the
// block as a whole.
type LineExtractor struct{}

// Extract implements Extractor.
func (LineExtractor) Extract(block string) Record {
	kind := classify(block)
	switch kind {
	case KindObject:
		return Record{Kind: kind, Object: scanObject(block)}
	case KindTransform:
		return Record{Kind: kind, Transform: scanTransform(block)}
	default:
		return Record{Kind: KindUnknown}
	}
}

func scanObject(block string) *GameObject {
	var id, name string
	active := true

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, objectMarker):
			id = headerID(line)
		case strings.HasPrefix(trimmed, tagName):
			_, after, _ := strings.Cut(line, tagName)
			name = strings.TrimSpace(after)
		case strings.HasPrefix(trimmed, tagIsActive):
			_, after, _ := strings.Cut(line, tagIsActive)
			active = activeFlag(after)
		}
	}

	if id == "" || name == "" {
		return nil
	}
	return &GameObject{ID: id, Name: name, Active: active}
}

func scanTransform(block string) *Transform {
	lines := strings.Split(block, "\n")
	t := &Transform{}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, transformMarker):
			t.ID = headerID(line)
		case strings.HasPrefix(trimmed, tagGameObject):
			if ref := fileRef(line); ref != "" {
				t.GameObject = ref
			}
		case strings.HasPrefix(trimmed, tagFather):
			if ref := fileRef(line); ref != "" {
				t.Father = ref
			}
		case strings.HasPrefix(trimmed, tagChildren):
			for _, item := range lines[i+1:] {
				if !strings.HasPrefix(strings.TrimSpace(item), "-") {
					break
				}
				if ref := fileRef(item); ref != "" {
					t.Children = append(t.Children, ref)
				}
			}
		}
	}

	if t.ID == "" || t.GameObject == "" {
		return nil
	}
	return t
}

// YAMLExtractor decodes the body of a block with a YAML decoder instead of
// scanning lines. Classification and emission rules match LineExtractor.
// Unity writes names unquoted, so a body that does not decode (or decodes
// without the required fields) is handed to the line scan instead.
type YAMLExtractor struct{}

type yamlRef struct {
	FileID string `yaml:"fileID"`
}

type yamlObjectBody struct {
	Name     *string `yaml:"m_Name"`
	IsActive *string `yaml:"m_IsActive"`
}

type yamlTransformBody struct {
	GameObject *yamlRef  `yaml:"m_GameObject"`
	Father     *yamlRef  `yaml:"m_Father"`
	Children   []yamlRef `yaml:"m_Children"`
}

// Extract implements Extractor.
func (YAMLExtractor) Extract(block string) Record {
	kind := classify(block)
	header, body, _ := strings.Cut(block, "\n")
	id := headerID(header)

	switch kind {
	case KindObject:
		if o := decodeObject(id, body); o != nil {
			return Record{Kind: kind, Object: o}
		}
		return Record{Kind: kind, Object: scanObject(block)}
	case KindTransform:
		if t := decodeTransform(id, body); t != nil {
			return Record{Kind: kind, Transform: t}
		}
		return Record{Kind: kind, Transform: scanTransform(block)}
	default:
		return Record{Kind: KindUnknown}
	}
}

func decodeObject(id, body string) *GameObject {
	var doc map[string]yamlObjectBody
	if id == "" || yaml.Unmarshal([]byte(body), &doc) != nil {
		return nil
	}
	for _, v := range doc {
		if v.Name == nil || strings.TrimSpace(*v.Name) == "" {
			continue
		}
		active := true
		if v.IsActive != nil {
			active = activeFlag(*v.IsActive)
		}
		return &GameObject{ID: id, Name: strings.TrimSpace(*v.Name), Active: active}
	}
	return nil
}

func decodeTransform(id, body string) *Transform {
	var doc map[string]yamlTransformBody
	if id == "" || yaml.Unmarshal([]byte(body), &doc) != nil {
		return nil
	}
	for _, v := range doc {
		if v.GameObject == nil || !isFileID(v.GameObject.FileID) {
			continue
		}
		t := &Transform{ID: id, GameObject: v.GameObject.FileID}
		if v.Father != nil && isFileID(v.Father.FileID) {
			t.Father = v.Father.FileID
		}
		for _, c := range v.Children {
			if isFileID(c.FileID) {
				t.Children = append(t.Children, c.FileID)
			}
		}
		return t
	}
	return nil
}

// isFileID reports whether s is a non-empty run of decimal digits.
func isFileID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
