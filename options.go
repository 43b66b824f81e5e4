package transmute

import "github.com/tsawler/transmute/layout"

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Layout thresholds for paragraph reconstruction
	layout layout.Config

	// Creator recorded in the output document properties
	creator string
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		layout:  layout.DefaultConfig(),
		creator: "transmute",
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		layout:  o.layout,
		creator: o.creator,
	}
}
