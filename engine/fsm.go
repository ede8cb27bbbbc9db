package engine

// State is the session lifecycle state
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Trigger is a lifecycle signal fed to the state machine
type Trigger uint8

const (
	TriggerActivate Trigger = iota + 1
	TriggerDeath
	TriggerReset
)

type edge struct {
	from    State
	trigger Trigger
}

type target struct {
	to State
	// reenter runs the entry action even when to == from
	reenter bool
}

// EnterFunc is an entry action, called once per transition with the previous state
type EnterFunc func(from State)

// Machine is a flat table-driven lifecycle FSM
// Unlisted (state, trigger) pairs are ignored
type Machine struct {
	current State
	table   map[edge]target
	onEnter map[State]EnterFunc
}

// NewMachine creates the session lifecycle machine starting in menu, without running entry actions
func NewMachine() *Machine {
	m := &Machine{
		current: StateMenu,
		table:   make(map[edge]target),
		onEnter: make(map[State]EnterFunc),
	}

	m.addTransition(StateMenu, TriggerActivate, StatePlaying, false)
	m.addTransition(StateGameOver, TriggerActivate, StatePlaying, false)
	m.addTransition(StatePlaying, TriggerDeath, StateGameOver, false)
	m.addTransition(StateMenu, TriggerReset, StateMenu, true)
	m.addTransition(StatePlaying, TriggerReset, StateMenu, false)
	m.addTransition(StateGameOver, TriggerReset, StateMenu, false)

	return m
}

func (m *Machine) addTransition(from State, tr Trigger, to State, reenter bool) {
	m.table[edge{from: from, trigger: tr}] = target{to: to, reenter: reenter}
}

// OnEnter registers the entry action for a state, replacing any previous one
func (m *Machine) OnEnter(s State, fn EnterFunc) {
	m.onEnter[s] = fn
}

// Current returns the active state
func (m *Machine) Current() State {
	return m.current
}

// Fire applies a trigger and reports whether a transition happened
// The state is updated before the entry action runs
func (m *Machine) Fire(tr Trigger) bool {
	t, ok := m.table[edge{from: m.current, trigger: tr}]
	if !ok {
		return false
	}
	if t.to == m.current && !t.reenter {
		return false
	}

	from := m.current
	m.current = t.to
	if fn := m.onEnter[t.to]; fn != nil {
		fn(from)
	}
	return true
}
