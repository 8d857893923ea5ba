package registry

// Registry is the deployment's model capability registry. It is built once at
// startup from config and read-only afterwards, so it is safe to share across
// concurrent classifications without locking.
type Registry struct {
	models       map[string]struct{}
	defaultModel string
}

// New builds a Registry from the configured model list and default model.
// The default model is always registered, even if missing from models.
func New(models []string, defaultModel string) *Registry {
	known := make(map[string]struct{}, len(models)+1)
	for _, m := range models {
		if m != "" {
			known[m] = struct{}{}
		}
	}
	known[defaultModel] = struct{}{}

	return &Registry{
		models:       known,
		defaultModel: defaultModel,
	}
}

// Known reports whether id is a model deployed on this installation.
func (r *Registry) Known(id string) bool {
	_, ok := r.models[id]
	return ok
}

// Default returns the configured default model.
func (r *Registry) Default() string {
	return r.defaultModel
}

// Models returns the registered model ids. Order is not significant.
func (r *Registry) Models() []string {
	out := make([]string, 0, len(r.models))
	for m := range r.models {
		out = append(out, m)
	}
	return out
}
