package tap

import "time"

// Kind identifies the pointer event delivered to the classifier.
type Kind int

const (
	TouchStart Kind = iota
	TouchMove
	TouchEnd
	MouseDown
	MouseMove
	MouseUp
	// Click is the synthesized click that reaches the practice container.
	Click
)

func (k Kind) isStart() bool { return k == TouchStart || k == MouseDown }
func (k Kind) isEnd() bool   { return k == TouchEnd || k == MouseUp }
func (k Kind) isMove() bool  { return k == TouchMove || k == MouseMove }
func (k Kind) isMouse() bool { return k == MouseDown || k == MouseUp || k == MouseMove }

// Event is a single pointer event in pixel coordinates.
type Event struct {
	Kind Kind
	X    float64
	Y    float64
	// Touches is the number of contacts on screen for TouchStart and the
	// number of lifted contacts for TouchEnd. Mouse events ignore it.
	Touches  int
	InTarget bool
	OnReset  bool
	At       time.Time
}

// Outcome is the classification of one attempt.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeOffTarget
	OutcomeMultiFinger
	OutcomeExcessiveMovement
	OutcomeExcessiveDuration
)

// Failures lists the failing outcomes in display order.
var Failures = []Outcome{
	OutcomeOffTarget,
	OutcomeMultiFinger,
	OutcomeExcessiveMovement,
	OutcomeExcessiveDuration,
}

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSuccess:
		return "success"
	case OutcomeOffTarget:
		return "off_target"
	case OutcomeMultiFinger:
		return "multi_finger"
	case OutcomeExcessiveMovement:
		return "excessive_movement"
	case OutcomeExcessiveDuration:
		return "excessive_duration"
	default:
		return "unknown"
	}
}
