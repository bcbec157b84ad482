package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

var (
	//go:embed catalog.yaml
	defaultCatalog []byte

	//go:embed schema.json
	schemaJSON []byte
)

var (
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrUnsupportedVersion = errors.New("unsupported catalog version")
)

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads and validates the catalog at path. An empty path returns the
// built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog and validates it against the catalog schema.
func Parse(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate runs the JSON Schema over the decoded YAML document.
func validate(doc any) error {
	compileOnce.Do(func() {
		compiled, compileErr = compileSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile catalog schema: %w", compileErr)
	}

	// Round-trip through JSON so the validator sees plain JSON values
	// instead of YAML's Go types.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(schemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	const url = "schema://catalog.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
}

// check enforces the rules the schema can't express.
func (c *Catalog) check() error {
	if !semver.IsValid(c.Version) {
		return fmt.Errorf("%w: version %q is not semver", ErrInvalidCatalog, c.Version)
	}
	if major := semver.Major(c.Version); major != SupportedMajor {
		return fmt.Errorf("%w: %s (this build reads %s.x)", ErrUnsupportedVersion, c.Version, SupportedMajor)
	}

	seen := make(map[string]bool, len(c.Lessons))
	for _, l := range c.Lessons {
		if seen[l.Key] {
			return fmt.Errorf("%w: duplicate lesson key %q", ErrInvalidCatalog, l.Key)
		}
		seen[l.Key] = true
	}
	for _, card := range c.Dashboard.Cards {
		if _, err := card.Target(); err != nil {
			return fmt.Errorf("%w: dashboard card %q: %v", ErrInvalidCatalog, card.Title, err)
		}
	}
	for _, p := range c.Portal.Progress {
		if !seen[p.Lesson] {
			return fmt.Errorf("%w: portal progress references unknown lesson %q", ErrInvalidCatalog, p.Lesson)
		}
	}
	return nil
}

// Lesson looks up a lesson by key.
func (c *Catalog) Lesson(key string) (Lesson, bool) {
	for _, l := range c.Lessons {
		if l.Key == key {
			return l, true
		}
	}
	return Lesson{}, false
}

// LessonTitle returns the title for key, or key itself when unknown.
func (c *Catalog) LessonTitle(key string) string {
	if l, ok := c.Lesson(key); ok {
		return l.Title
	}
	return key
}
