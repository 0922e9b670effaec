package rewrite

// Pipeline applies an ordered sequence of rules to each line of one
// document. Each rule's output feeds the next rule's input.
//
// A Pipeline owns its rules exclusively. Because several rules mutate
// per-document state as lines flow through them, a Pipeline must be built
// fresh for every document: reusing one across unrelated documents silently
// corrupts list numbering and first-line handling.
type Pipeline struct {
	rules []Rule
}

// NewPipeline creates a pipeline over the given rules, applied in order.
func NewPipeline(rules ...Rule) *Pipeline {
	return &Pipeline{rules: rules}
}

// Run converts a single line, folding it through every rule in order.
// Lines must not contain embedded newlines; Run is total over any such
// input and always returns a string.
func (p *Pipeline) Run(line string) string {
	for _, r := range p.rules {
		line = Apply(r, line)
	}
	return line
}
