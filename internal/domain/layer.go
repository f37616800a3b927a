package domain

// Layer identifies one tier of the hexagonal layering discipline.
type Layer string

const (
	LayerDomain           Layer = "domain"
	LayerApplication      Layer = "application"
	LayerPorts            Layer = "ports"
	LayerInboundAdapters  Layer = "inboundAdapters"
	LayerOutboundAdapters Layer = "outboundAdapters"
	LayerInfrastructure   Layer = "infrastructure"

	// LayerUnknown marks modules matching no descriptor. It carries no rules
	// and no classification priority.
	LayerUnknown Layer = "unknown"
)

// AllLayers enumerates every classifiable layer plus the unknown sentinel.
// This is the iteration order for report output, not the classification order.
var AllLayers = []Layer{
	LayerDomain,
	LayerApplication,
	LayerPorts,
	LayerInboundAdapters,
	LayerOutboundAdapters,
	LayerInfrastructure,
	LayerUnknown,
}

// ClassificationPriority orders layers for tie-breaking during classification:
// boundary-facing layers are checked before broader internal ones, so that a
// path matching both an adapter pattern and a domain pattern resolves to the
// more specific layer.
var ClassificationPriority = []Layer{
	LayerInboundAdapters,
	LayerOutboundAdapters,
	LayerPorts,
	LayerApplication,
	LayerDomain,
	LayerInfrastructure,
}

// ValidLayer reports whether name is a declared layer. The unknown sentinel is
// not a declared layer: it cannot appear in descriptors or rules.
func ValidLayer(name string) bool {
	for _, l := range ClassificationPriority {
		if string(l) == name {
			return true
		}
	}
	return false
}
