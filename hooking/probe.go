package hooking

// ProbePos defines the enum of positions at which probes are notified.
type ProbePos struct {
	Name string
}

var (
	// ProbePosBeforeListener is the position right before a listener runs.
	ProbePosBeforeListener = &ProbePos{Name: "BeforeListener"}

	// ProbePosAfterListener is the position after a listener returned a
	// value. The detail is the value.
	ProbePosAfterListener = &ProbePos{Name: "AfterListener"}

	// ProbePosBreak is the position after a listener broke the hook. The
	// detail is the Breaker.
	ProbePosBreak = &ProbePos{Name: "Break"}

	// ProbePosFailure is the position after a listener failed. The detail is
	// the error.
	ProbePosFailure = &ProbePos{Name: "Failure"}
)

// ProbeCtx holds all the information about the site at which a probe is
// notified.
type ProbeCtx struct {
	Domain Probeable
	Pos    *ProbePos
	Item   ListenerInfo
	Detail any
}

// Probeable defines an object that accepts probes.
type Probeable interface {
	// AcceptProbe registers a probe.
	AcceptProbe(probe Probe)

	// NumProbes returns the number of probes registered.
	NumProbes() int

	// Probes returns all the probes registered.
	Probes() []Probe
}

// A Probe observes the listeners that a registry runs.
type Probe interface {
	// Func determines what to do if the probe is notified.
	Func(ctx ProbeCtx)
}

// NumProbes returns the number of probes registered.
func (h *HookableBase) NumProbes() int {
	return len(h.probes)
}

// Probes returns all the probes registered.
func (h *HookableBase) Probes() []Probe {
	return h.probes
}

// AcceptProbe registers a probe.
func (h *HookableBase) AcceptProbe(probe Probe) {
	h.mustNotHaveDuplicatedProbe(probe)
	h.probes = append(h.probes, probe)
}

func (h *HookableBase) mustNotHaveDuplicatedProbe(probe Probe) {
	for _, p := range h.probes {
		if p == probe {
			panic("duplicated probe")
		}
	}
}

func (h *HookableBase) notify(
	pos *ProbePos,
	hook string,
	l *listener,
	detail any,
) {
	if len(h.probes) == 0 {
		return
	}

	ctx := ProbeCtx{
		Domain: h,
		Pos:    pos,
		Item:   l.info(hook),
		Detail: detail,
	}

	for _, p := range h.probes {
		p.Func(ctx)
	}
}
