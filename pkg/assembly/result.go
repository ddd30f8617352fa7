package assembly

// Status discriminates the three assembly outcomes.
type Status int

const (
	// StatusConstructed means Value holds a fully assembled instance.
	StatusConstructed Status = iota

	// StatusNotIntrospected means this assembler cannot handle the target
	// type; callers should try an alternative construction strategy.
	StatusNotIntrospected

	// StatusFailed means a property resolver errored mid-assembly; Err
	// carries the cause.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusConstructed:
		return "constructed"
	case StatusNotIntrospected:
		return "not introspected"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one assembly call. Callers branch on Status
// rather than sniffing magic values.
type Result struct {
	Status Status
	Value  any
	Err    error
}

// Constructed wraps a successfully assembled instance.
func Constructed(value any) Result {
	return Result{Status: StatusConstructed, Value: value}
}

// NotIntrospected is the sentinel result for unsupported targets.
func NotIntrospected() Result {
	return Result{Status: StatusNotIntrospected}
}

// Failed wraps a resolver error.
func Failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}
