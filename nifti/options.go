package nifti

// OpenOption configures volume loading.
type OpenOption func(*openOptions)

type openOptions struct {
	rescale bool
}

func defaultOpenOptions() *openOptions {
	return &openOptions{
		rescale: true,
	}
}

// WithoutRescale leaves the stored sample codes untouched instead of
// applying the header's scl_slope/scl_inter once at load time.
func WithoutRescale() OpenOption {
	return func(o *openOptions) {
		o.rescale = false
	}
}
