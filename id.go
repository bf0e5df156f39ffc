package flow

import "github.com/google/uuid"

// autoName generates a short, distinguishable name for a transient that was
// constructed without an explicit one, so Name() never returns an anonymous
// blank string. Grounded on the corpus-wide use
// of google/uuid for identifier generation (cue-lang-cue, smilemakc-mbflow).
func autoName(kind string) string {
	return kind + "-" + uuid.New().String()[:8]
}
