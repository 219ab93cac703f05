package sampling

// ChangeCode reports how much of the simulated system a trigger changed.
type ChangeCode int

// The change codes, ordered from no change to the most disruptive change.
const (
	NoChange ChangeCode = iota
	NonStateChange
	ParameterChange
	JacobianChange
	ObjectChange
	StateCountChange
)

var changeCodeNames = [...]string{
	NoChange:         "NoChange",
	NonStateChange:   "NonStateChange",
	ParameterChange:  "ParameterChange",
	JacobianChange:   "JacobianChange",
	ObjectChange:     "ObjectChange",
	StateCountChange: "StateCountChange",
}

func (c ChangeCode) String() string {
	if c < 0 || int(c) >= len(changeCodeNames) {
		return "ChangeCode(?)"
	}

	return changeCodeNames[c]
}
