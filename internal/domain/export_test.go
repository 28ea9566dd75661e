package domain

// WithSampler makes w use s for every campaign instead of a seeded sampler.
func WithSampler(w Workflow, s Sampler) Workflow {
	w.(*workflow).newSampler = func(Mutagen, uint64) Sampler { return s }
	return w
}
