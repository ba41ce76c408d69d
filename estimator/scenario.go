package estimator

import "fmt"

// Scenario is an assumption about the rRNA copy number of every organism other
// than the one being estimated.
type Scenario int

const (
	ScenarioMin Scenario = iota
	ScenarioMax
	ScenarioMode
)

// Scenarios lists every scenario in the order fractions are emitted.
var Scenarios = [...]Scenario{ScenarioMin, ScenarioMax, ScenarioMode}

func (s Scenario) String() string {
	switch s {
	case ScenarioMin:
		return "MIN"
	case ScenarioMax:
		return "MAX"
	case ScenarioMode:
		return "MODE"
	}

	return fmt.Sprintf("Scenario(%d)", int(s))
}

// opposite is the scenario whose reference value sits at the other extreme.
// MODE is its own opposite.
func (s Scenario) opposite() Scenario {
	switch s {
	case ScenarioMin:
		return ScenarioMax
	case ScenarioMax:
		return ScenarioMin
	}

	return s
}
