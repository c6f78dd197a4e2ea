package wizard

import (
	"github.com/teranos/sculpt/errors"
)

// DriverFunc adapts a function to Driver
type DriverFunc func(p Picker) error

// Pick calls f(p)
func (f DriverFunc) Pick(p Picker) error { return f(p) }

// DefaultDriver picks the first option at every site
type DefaultDriver struct{}

// Pick fulfills p with its first option
func (DefaultDriver) Pick(p Picker) error {
	opts := p.Options()
	if len(opts) == 0 {
		return errors.Newf("site %s offers no options", p.Site())
	}
	return p.Fulfill(opts[0])
}

// Overrides picks fixed tags for named sites and defers to Fallback (the
// DefaultDriver when nil) everywhere else
type Overrides struct {
	Choices  map[string]string
	Fallback Driver
}

// Pick fulfills p with the overridden tag when one is set
func (o Overrides) Pick(p Picker) error {
	if tag, ok := o.Choices[p.Site()]; ok {
		return p.Fulfill(tag)
	}
	if o.Fallback != nil {
		return o.Fallback.Pick(p)
	}
	return DefaultDriver{}.Pick(p)
}

// Step is one recorded decision
type Step struct {
	Site string `json:"site"`
	Tag  string `json:"tag"`
}

// Trace records the order in which sites are asked and what was chosen.
// Steps are recorded when the callback fires, before later callbacks run.
type Trace struct {
	Driver Driver
	Steps  []Step
}

// NewTrace wraps d
func NewTrace(d Driver) *Trace {
	return &Trace{Driver: d}
}

// Pick records p and delegates to the wrapped driver
func (t *Trace) Pick(p Picker) error {
	i := len(t.Steps)
	t.Steps = append(t.Steps, Step{Site: p.Site()})
	return t.Driver.Pick(&tracedPicker{Picker: p, trace: t, step: i})
}

// Sites returns the asked sites in order
func (t *Trace) Sites() []string {
	sites := make([]string, len(t.Steps))
	for i, s := range t.Steps {
		sites[i] = s.Site
	}
	return sites
}

type tracedPicker struct {
	Picker
	trace *Trace
	step  int
}

func (p *tracedPicker) Fulfill(tag string) error {
	p.trace.Steps[p.step].Tag = tag
	return p.Picker.Fulfill(tag)
}
