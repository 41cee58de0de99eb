package registry

// defaultRegistry is built during package initialisation, so an
// inconsistent compiled-in catalogue stops the process at start-up rather
// than at the first lookup inside an error path.
var defaultRegistry = MustNew(builtin)

// Default returns the process-wide registry built from the compiled-in
// catalogue.
func Default() *Registry {
	return defaultRegistry
}
