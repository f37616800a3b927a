package domain

import (
	"fmt"
	"regexp"
)

// LayerDescriptor holds the detection configuration for a single layer:
// ordered path patterns, ordered content markers, and a display color.
// Both lists are evaluated left-to-right, first match wins.
type LayerDescriptor struct {
	PathPatterns []string
	Markers      []string
	Color        string
}

// Taxonomy is the read-only descriptor table indexed by layer. Patterns are
// compiled once at construction; descriptors are never mutated afterwards.
type Taxonomy struct {
	descriptors map[Layer]compiledDescriptor
}

type compiledDescriptor struct {
	paths   []*regexp.Regexp
	markers []*regexp.Regexp
	color   string
}

// defaultDescriptors maps every layer to its built-in detection descriptor.
// Path patterns match against slash-normalized project-relative paths.
// The default marker convention is an explicit "@hexagonal <layer>" annotation
// in the module's content.
var defaultDescriptors = map[Layer]LayerDescriptor{
	LayerInboundAdapters: {
		PathPatterns: []string{
			`adapters?/in(bound)?/`,
			`(^|/)inbound/`,
			`(^|/)controllers?/`,
			`(^|/)handlers?/`,
		},
		Markers: []string{`@hexagonal[ \t]+inboundAdapters`},
		Color:   "#86EFAC",
	},
	LayerOutboundAdapters: {
		PathPatterns: []string{
			`adapters?/out(bound)?/`,
			`(^|/)outbound/`,
			`(^|/)repositor(y|ies)/`,
			`(^|/)gateways?/`,
			`(^|/)clients?/`,
		},
		Markers: []string{`@hexagonal[ \t]+outboundAdapters`},
		Color:   "#6EE7B7",
	},
	LayerPorts: {
		PathPatterns: []string{`(^|/)ports?/`},
		Markers:      []string{`@hexagonal[ \t]+ports`},
		Color:        "#C4B5FD",
	},
	LayerApplication: {
		PathPatterns: []string{
			`(^|/)application/`,
			`(^|/)app/`,
			`(^|/)use[-_]?cases?/`,
			`(^|/)services?/`,
		},
		Markers: []string{`@hexagonal[ \t]+application`},
		Color:   "#93C5FD",
	},
	LayerDomain: {
		PathPatterns: []string{
			`(^|/)domain/`,
			`(^|/)core/`,
			`(^|/)entit(y|ies)/`,
			`(^|/)models?/`,
		},
		Markers: []string{`@hexagonal[ \t]+domain`},
		Color:   "#FDE68A",
	},
	LayerInfrastructure: {
		PathPatterns: []string{
			`(^|/)infra(structure)?/`,
			`(^|/)persistence/`,
			`(^|/)db/`,
			`(^|/)config/`,
		},
		Markers: []string{`@hexagonal[ \t]+infrastructure`},
		Color:   "#FCA5A5",
	},
}

const unknownColor = "#D1D5DB"

// NewTaxonomy builds the descriptor table from defaults overlaid with the
// config's per-layer overrides. A layer present in cfg.Layers replaces its
// default descriptor entirely.
func NewTaxonomy(cfg AnalysisConfig) (*Taxonomy, error) {
	t := &Taxonomy{descriptors: make(map[Layer]compiledDescriptor, len(ClassificationPriority))}

	for _, layer := range ClassificationPriority {
		desc := defaultDescriptors[layer]
		if override, ok := cfg.Layers[string(layer)]; ok {
			desc = LayerDescriptor{
				PathPatterns: override.Paths,
				Markers:      override.Markers,
				Color:        override.Color,
			}
			if desc.Color == "" {
				desc.Color = defaultDescriptors[layer].Color
			}
		}

		cd := compiledDescriptor{color: desc.Color}
		for _, p := range desc.PathPatterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("compiling path pattern %q for layer %q: %w", p, layer, err)
			}
			cd.paths = append(cd.paths, re)
		}
		for _, m := range desc.Markers {
			re, err := regexp.Compile(m)
			if err != nil {
				return nil, fmt.Errorf("compiling marker %q for layer %q: %w", m, layer, err)
			}
			cd.markers = append(cd.markers, re)
		}
		t.descriptors[layer] = cd
	}

	return t, nil
}

// DefaultTaxonomy returns the taxonomy built from the built-in descriptors.
func DefaultTaxonomy() *Taxonomy {
	t, err := NewTaxonomy(DefaultConfig())
	if err != nil {
		panic("building default taxonomy: " + err.Error())
	}
	return t
}

// Color returns the display color for a layer.
func (t *Taxonomy) Color(l Layer) string {
	if d, ok := t.descriptors[l]; ok && d.color != "" {
		return d.color
	}
	return unknownColor
}
