// Package patch turns a finished seed into per-course edit manifests for the
// patch writer.
package patch

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"gopkg.in/yaml.v3"

	"ravio/pkg/game/generate"
)

// IndexPath is where the manifest index is written inside a container.
const IndexPath = "index.yaml"

// Edit replaces the contents of one check.
type Edit struct {
	Check string `yaml:"check"`
	Kind  string `yaml:"kind"`
	Item  string `yaml:"item"`
}

// Course is every edit made to one course resource.
type Course struct {
	Name  string `yaml:"course"`
	Edits []Edit `yaml:"edits"`
}

// Path is where the course manifest is written inside a container.
func (c Course) Path() string { return "courses/" + c.Name + ".yaml" }

// Index lists the course manifests of one seed.
type Index struct {
	Version string       `yaml:"version"`
	Seed    uint32       `yaml:"seed"`
	Hash    string       `yaml:"hash"`
	Courses []IndexEntry `yaml:"courses"`
}

type IndexEntry struct {
	Course string `yaml:"course"`
	File   string `yaml:"file"`
	Edits  int    `yaml:"edits"`
}

// Manifest groups the randomized checks of seed by course, in course name
// order and world order within a course.
func Manifest(seed *generate.Seed) []Course {
	byCourse := make(map[string]*Course)
	for _, c := range seed.World().Checks() {
		if c.IsQuest() {
			continue
		}
		name := c.Location().Course
		course, ok := byCourse[name]
		if !ok {
			course = &Course{Name: name}
			byCourse[name] = course
		}
		course.Edits = append(course.Edits, Edit{
			Check: c.Name,
			Kind:  c.Kind.String(),
			Item:  seed.Plan.Get(c).String(),
		})
	}

	out := make([]Course, 0, len(byCourse))
	for _, c := range byCourse {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b Course) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// Patcher writes manifests into a container.
type Patcher struct {
	Container Container
	Codec     Codec
	Logger    *slog.Logger
}

// Apply writes one manifest per course plus the index and returns the index.
// Container errors come back unwrapped so callers can inspect them.
func (p *Patcher) Apply(seed *generate.Seed) (*Index, error) {
	codec := p.Codec
	if codec == nil {
		codec = Plain{}
	}
	log := p.Logger
	if log == nil {
		log = slog.Default()
	}

	idx := &Index{Version: generate.Version, Seed: seed.Seed, Hash: seed.Hash}
	for _, course := range Manifest(seed) {
		if course.Name == "" {
			return nil, fmt.Errorf("check %q has no course", course.Edits[0].Check)
		}
		if err := p.write(codec, course.Path(), course); err != nil {
			return nil, err
		}
		idx.Courses = append(idx.Courses, IndexEntry{Course: course.Name, File: course.Path(), Edits: len(course.Edits)})
		log.Debug("course written", slog.String("course", course.Name), slog.Int("edits", len(course.Edits)))
	}
	if err := p.write(codec, IndexPath, idx); err != nil {
		return nil, err
	}
	return idx, nil
}

func (p *Patcher) write(codec Codec, path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	packed, err := codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}
	return p.Container.Write(path, packed)
}

// ReadIndex loads an index written by Apply.
func ReadIndex(c Container, codec Codec) (*Index, error) {
	if codec == nil {
		codec = Plain{}
	}
	packed, err := c.Load(IndexPath)
	if err != nil {
		return nil, err
	}
	data, err := codec.Decompress(packed)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", IndexPath, err)
	}
	var idx Index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("decode %s: %w", IndexPath, err)
	}
	return &idx, nil
}

// ReadCourse loads the manifest of one course written by Apply.
func ReadCourse(c Container, codec Codec, name string) (*Course, error) {
	if codec == nil {
		codec = Plain{}
	}
	course := Course{Name: name}
	packed, err := c.Load(course.Path())
	if err != nil {
		return nil, err
	}
	data, err := codec.Decompress(packed)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", course.Path(), err)
	}
	if err := yaml.Unmarshal(data, &course); err != nil {
		return nil, fmt.Errorf("decode %s: %w", course.Path(), err)
	}
	return &course, nil
}

var _ Container = DirContainer{}
