package renderer

// Settings holds per-render configuration: anti-aliasing samples,
// shadow-ray samples, worker pool size, and the tile subdivision
// factor N (the image is split into N x N tiles).
type Settings struct {
	Samples       int
	ShadowSamples int
	Threads       int
	Bboxes        int
}

// Validate checks the settings a render needs before any worker is
// spawned, returning a ConfigError describing the first invalid field.
func (s Settings) Validate(width, height int) error {
	if width <= 0 {
		return &ConfigError{Field: "width", Reason: "must be > 0"}
	}
	if height <= 0 {
		return &ConfigError{Field: "height", Reason: "must be > 0"}
	}
	if s.Samples < 1 {
		return &ConfigError{Field: "samples", Reason: "must be >= 1"}
	}
	if s.ShadowSamples < 1 {
		return &ConfigError{Field: "shadow_samples", Reason: "must be >= 1"}
	}
	if s.Threads < 1 {
		return &ConfigError{Field: "threads", Reason: "must be >= 1"}
	}
	if s.Bboxes < 1 {
		return &ConfigError{Field: "bboxes", Reason: "must be >= 1"}
	}
	if width%s.Bboxes != 0 {
		return &ConfigError{Field: "bboxes", Reason: "must evenly divide width"}
	}
	if height%s.Bboxes != 0 {
		return &ConfigError{Field: "bboxes", Reason: "must evenly divide height"}
	}
	return nil
}
