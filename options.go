package ggchart

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	fonts := ggchart.NewFontRegistry()
//	_ = fonts.Register("Roboto", robotoTTF)
//	r := ggchart.NewRenderer(ggchart.WithFontRegistry(fonts))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	fonts          *FontRegistry
	textCacheLimit int
	baseline       TextBaseline
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		fonts:          nil, // NewFontRegistry() if nil
		textCacheLimit: 512,
		baseline:       BaselineMiddle,
	}
}

// WithFontRegistry sets the registry used to resolve font families.
func WithFontRegistry(fonts *FontRegistry) RendererOption {
	return func(o *rendererOptions) {
		o.fonts = fonts
	}
}

// WithTextCacheLimit sets the soft limit of the text width cache.
// Non-positive values keep the default of 512 strings.
func WithTextCacheLimit(n int) RendererOption {
	return func(o *rendererOptions) {
		if n > 0 {
			o.textCacheLimit = n
		}
	}
}

// WithBaseline sets the text baseline applied at the start of every Draw.
// The default is BaselineMiddle.
func WithBaseline(b TextBaseline) RendererOption {
	return func(o *rendererOptions) {
		o.baseline = b
	}
}
