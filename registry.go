package pathai

import "fmt"

// Registry owns one Ledger per configured model plus the static priority
// order used for selection. The model set is fixed at construction; ledgers
// live for the registry's lifetime and only their entries are pruned.
type Registry struct {
	ledgers  map[string]*Ledger
	priority []string
}

// NewRegistry builds a registry from cfg. The config is validated first,
// so every priority entry is guaranteed to reference a configured model.
// If clock is nil, the system clock is used.
func NewRegistry(cfg Config, clock Clock) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock()
	}

	ledgers := make(map[string]*Ledger, len(cfg.Models))
	for _, m := range cfg.Models {
		ledgers[m.Name] = NewLedger(m.Name, Limits{RPM: m.RPM, TPM: m.TPM, RPD: m.RPD}, clock)
	}

	priority := cfg.Priority
	if len(priority) == 0 {
		priority = make([]string, 0, len(cfg.Models))
		for _, m := range cfg.Models {
			priority = append(priority, m.Name)
		}
	}

	return &Registry{ledgers: ledgers, priority: priority}, nil
}

// Record charges one request and tokensUsed tokens against model's ledger.
func (r *Registry) Record(model string, tokensUsed int64) error {
	l, ok := r.ledgers[model]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	l.Record(tokensUsed)
	return nil
}

// Status returns a usage snapshot for one model.
func (r *Registry) Status(model string) (ModelStatus, error) {
	l, ok := r.ledgers[model]
	if !ok {
		return ModelStatus{}, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	return l.Status(), nil
}

// StatusAll returns snapshots for every model in priority order.
func (r *Registry) StatusAll() []ModelStatus {
	statuses := make([]ModelStatus, 0, len(r.priority))
	for _, model := range r.priority {
		statuses = append(statuses, r.ledgers[model].Status())
	}
	return statuses
}

// Priority returns a copy of the static model priority order.
func (r *Registry) Priority() []string {
	out := make([]string, len(r.priority))
	copy(out, r.priority)
	return out
}
