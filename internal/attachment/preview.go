package attachment

// PlanKind selects the rendering strategy for one attachment.
type PlanKind string

const (
	// PlanImage renders the URL as an inline image. A load failure is
	// detected asynchronously by the renderer and falls back to the
	// unsupported placeholder.
	PlanImage PlanKind = "image"
	// PlanEmbeddedDocument renders the URL in an embedded document viewer,
	// with the same async fallback as images.
	PlanEmbeddedDocument PlanKind = "embedded-document"
	// PlanFetchedText retrieves the raw content over HTTP at preview time
	// and renders it verbatim. This is the only kind that requires a
	// network call to resolve.
	PlanFetchedText PlanKind = "fetched-text"
	// PlanUnsupported renders a static open/download notice. This is also
	// the deliberate policy for medical-imaging and word-processor formats,
	// which have no in-browser renderer.
	PlanUnsupported PlanKind = "unsupported"
)

// Plan is the chosen preview strategy for a single attachment.
type Plan struct {
	Kind      PlanKind `json:"kind"`
	URL       string   `json:"url,omitempty"`
	FileName  string   `json:"file_name"`
	Extension string   `json:"extension,omitempty"`
}

// PlanPreview decides the preview strategy for the reference. Dispatch is
// keyed by the lowercased extension; anything unmatched resolves to
// PlanUnsupported.
func PlanPreview(ref Ref) Plan {
	ext := ref.Extension()
	plan := Plan{
		URL:       ref.URL,
		FileName:  ref.FileName(),
		Extension: ext,
	}
	switch Classify(ext) {
	case CategoryImage:
		plan.Kind = PlanImage
	case CategoryPDF:
		plan.Kind = PlanEmbeddedDocument
	case CategoryText:
		plan.Kind = PlanFetchedText
	default:
		plan.Kind = PlanUnsupported
		plan.URL = ""
	}
	return plan
}
