package pen

// Option configures an Engine during creation.
//
// Example:
//
//	// Default engine
//	eng := pen.NewEngine(480, 360, r)
//
//	// Export at 1 mm per stage unit, no minimum stroke width
//	eng := pen.NewEngine(480, 360, r,
//	    pen.WithStepLength(1),
//	    pen.WithMinStrokeWidth(0))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	stepLength     float64
	minStrokeWidth float64
	prompt         func() bool
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		stepLength:     defaultStepLength,
		minStrokeWidth: defaultMinStrokeWidth,
	}
}

// WithStepLength sets the physical length, in millimeters, that one
// stage unit maps to in exported documents.
func WithStepLength(mm float64) Option {
	return func(o *engineOptions) {
		o.stepLength = mm
	}
}

// WithMinStrokeWidth sets the display-only floor applied to stroke
// widths when pushing a surface to its host layer. Zero disables the
// floor. Exported documents always keep nominal widths.
func WithMinStrokeWidth(w float64) Option {
	return func(o *engineOptions) {
		o.minStrokeWidth = w
	}
}

// WithExportPrompt installs a confirmation hook consulted before
// composing an export. Returning false cancels the export, which then
// reports ExportCancelled rather than an error.
func WithExportPrompt(confirm func() bool) Option {
	return func(o *engineOptions) {
		o.prompt = confirm
	}
}
