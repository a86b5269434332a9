package plan

import "context"

// Source defines how a plan catalog is loaded into the application.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// inMemSource implements Source over a pre-built plan map.
type inMemSource struct {
	plans map[string]Plan
}

// NewInMemSource returns a Source backed by the given plans. The map is
// validated and deep-copied on every Load, so the Source is safe to reuse.
func NewInMemSource(plans map[string]Plan) Source {
	return &inMemSource{plans: plans}
}

func (s *inMemSource) Load(ctx context.Context) (Catalog, error) {
	return NewCatalog(s.plans)
}
