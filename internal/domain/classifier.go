package domain

import "strings"

// Classifier assigns a layer to a single module. It is pure: given the same
// taxonomy and inputs it always returns the same layer.
type Classifier struct {
	taxonomy *Taxonomy
}

func NewClassifier(t *Taxonomy) *Classifier {
	return &Classifier{taxonomy: t}
}

// Classify decides the layer of a module from its path and an optional
// content excerpt. Content markers are an explicit author annotation, so they
// are checked first and outrank path heuristics entirely; within each tier
// the classification priority order breaks ties toward the more specific,
// boundary-facing layer. An empty excerpt (unreadable file) degrades to
// path-only classification.
func (c *Classifier) Classify(path, excerpt string) Layer {
	if excerpt != "" {
		for _, layer := range ClassificationPriority {
			for _, m := range c.taxonomy.descriptors[layer].markers {
				if m.MatchString(excerpt) {
					return layer
				}
			}
		}
	}
	return c.ClassifyPath(path)
}

// ClassifyPath runs only the path-pattern tier. It is what the graph builder
// uses for dependency targets, where no content is available.
func (c *Classifier) ClassifyPath(path string) Layer {
	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, layer := range ClassificationPriority {
		for _, p := range c.taxonomy.descriptors[layer].paths {
			if p.MatchString(normalized) {
				return layer
			}
		}
	}
	return LayerUnknown
}
