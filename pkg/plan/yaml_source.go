package plan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlPlan is the on-disk representation of a plan. Limits use null for
// unlimited, matching the billing API convention, and are converted to the
// Unlimited sentinel on load.
type yamlPlan struct {
	ID          string            `yaml:"id"`
	Description string            `yaml:"description"`
	Tier        int               `yaml:"tier"`
	Limits      map[string]*int64 `yaml:"limits"`
	Features    []string          `yaml:"features"`
}

type yamlCatalog struct {
	Plans map[string]yamlPlan `yaml:"plans"`
}

// yamlSource implements Source over a YAML document.
type yamlSource struct {
	read func() (io.Reader, func(), error)
}

// NewYAMLSource returns a Source that parses a catalog from r on Load.
// The reader is consumed on the first Load; use NewYAMLFileSource for a
// reusable Source.
func NewYAMLSource(r io.Reader) Source {
	return &yamlSource{
		read: func() (io.Reader, func(), error) {
			return r, func() {}, nil
		},
	}
}

// NewYAMLFileSource returns a Source that reads the catalog from a file path.
// The file is opened on every Load, so reloads pick up edits.
func NewYAMLFileSource(path string) Source {
	return &yamlSource{
		read: func() (io.Reader, func(), error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, nil, err
			}
			return f, func() { _ = f.Close() }, nil
		},
	}
}

func (s *yamlSource) Load(ctx context.Context) (Catalog, error) {
	r, cleanup, err := s.read()
	if err != nil {
		return Catalog{}, errors.Join(ErrFailedToLoadCatalog, err)
	}
	defer cleanup()

	var doc yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Catalog{}, errors.Join(ErrFailedToLoadCatalog,
			fmt.Errorf("parse catalog yaml: %w", err))
	}

	plans := make(map[string]Plan, len(doc.Plans))
	for name, yp := range doc.Plans {
		p := Plan{
			ID:          yp.ID,
			Name:        name,
			Description: yp.Description,
			Tier:        Tier(yp.Tier),
			Limits:      make(map[Resource]int64, len(yp.Limits)),
			Features:    make([]Feature, 0, len(yp.Features)),
		}
		for res, limit := range yp.Limits {
			if limit == nil {
				p.Limits[Resource(res)] = Unlimited
			} else {
				p.Limits[Resource(res)] = *limit
			}
		}
		for _, f := range yp.Features {
			p.Features = append(p.Features, Feature(f))
		}
		plans[name] = p
	}

	return NewCatalog(plans)
}
