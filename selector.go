package pathai

// Selector picks the first model in priority order whose ledger can absorb
// the estimated cost. First-fit, not best-fit: the priority list is a
// static quality/cost ranking, independent of current load.
type Selector struct {
	registry *Registry
}

// NewSelector creates a selector over the given registry.
func NewSelector(registry *Registry) *Selector {
	return &Selector{registry: registry}
}

// Select returns the first model with capacity for estimatedTokens.
// ok is false only when every model in the priority list is at a limit.
func (s *Selector) Select(estimatedTokens int64) (model string, ok bool) {
	for _, name := range s.registry.priority {
		if s.registry.ledgers[name].CanServe(estimatedTokens) {
			return name, true
		}
	}
	return "", false
}
