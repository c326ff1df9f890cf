package climb

import (
	"math"
	"strconv"

	"lavaclimb/internal/config"
	"lavaclimb/internal/core"
)

// Phase identifies the current stage of the run cycle.
type Phase int

const (
	// PhaseCountdown shows the pre-play countdown; the world is frozen.
	PhaseCountdown Phase = iota
	// PhasePlaying is the live game: streaming, lava, collision.
	PhasePlaying
	// PhaseGameOver covers the death fade to black and the post-fade hold.
	PhaseGameOver
	// PhaseFadeIn fades from black into the next countdown; the world has
	// already been rebuilt.
	PhaseFadeIn
)

// Transition is the action the caller must take after a state tick.
type Transition int

const (
	TransitionNone Transition = iota
	// TransitionPlay: countdown finished, the world goes live this tick.
	TransitionPlay
	// TransitionRestartWorld: fade and hold finished, rebuild the world now.
	TransitionRestartWorld
	// TransitionCountdown: fade-in finished, the next countdown has begun.
	TransitionCountdown
)

// StateMachine drives the strict countdown / play / death / restart cycle.
// Every phase change comes from timer accumulation over ticks; there is no
// path that skips a phase or aborts a fade mid-flight.
type StateMachine struct {
	flow      config.FlowConfig
	phase     Phase
	countdown float64
	elapsed   float64 // time accumulated inside the current phase
	alpha     float64 // fade overlay opacity: 0 transparent, 1 opaque
}

// NewStateMachine creates a machine at the start of a fresh countdown.
func NewStateMachine(flow config.FlowConfig) *StateMachine {
	sm := &StateMachine{flow: flow}
	sm.Reset()
	return sm
}

// Reset returns the machine to a fresh countdown with no fade.
func (sm *StateMachine) Reset() {
	sm.phase = PhaseCountdown
	sm.countdown = sm.flow.CountdownSeconds
	sm.elapsed = 0
	sm.alpha = 0
}

// Phase returns the current phase.
func (sm *StateMachine) Phase() Phase {
	return sm.phase
}

// Playing reports whether the world is live. Streaming and the hazard only
// advance while this is true.
func (sm *StateMachine) Playing() bool {
	return sm.phase == PhasePlaying
}

// GameOver reports whether the current run has ended and the restart cycle
// is in flight.
func (sm *StateMachine) GameOver() bool {
	return sm.phase == PhaseGameOver || sm.phase == PhaseFadeIn
}

// FadeAlpha returns the fade overlay opacity.
func (sm *StateMachine) FadeAlpha() float64 {
	return sm.alpha
}

// CountdownText returns the countdown display string, and whether the
// display is visible at all. The number counts down, then "GO!" holds for
// one second before the display is discarded.
func (sm *StateMachine) CountdownText() (string, bool) {
	if sm.phase != PhaseCountdown {
		return "", false
	}
	if sm.countdown > 0 {
		return strconv.Itoa(int(math.Ceil(sm.countdown))), true
	}
	return "GO!", true
}

// TriggerGameOver begins the death fade. Returns true the first time so the
// caller can start the death animation; repeat triggers are no-ops.
func (sm *StateMachine) TriggerGameOver() bool {
	if sm.phase == PhaseGameOver || sm.phase == PhaseFadeIn {
		return false
	}
	sm.phase = PhaseGameOver
	sm.elapsed = 0
	sm.alpha = 0
	return true
}

// Tick advances the machine by dt seconds and reports the transition the
// caller must act on, if any.
func (sm *StateMachine) Tick(dt float64) Transition {
	switch sm.phase {
	case PhaseCountdown:
		sm.countdown -= dt
		// The "GO!" flash holds for one second past zero
		if sm.countdown <= -1 {
			sm.phase = PhasePlaying
			return TransitionPlay
		}

	case PhaseGameOver:
		sm.elapsed += dt
		sm.alpha = core.ClampF(sm.elapsed/sm.flow.FadeOutSeconds, 0, 1)
		if sm.elapsed >= sm.flow.FadeOutSeconds+sm.flow.RestartDelaySeconds {
			sm.phase = PhaseFadeIn
			sm.elapsed = 0
			sm.alpha = 1
			return TransitionRestartWorld
		}

	case PhaseFadeIn:
		sm.elapsed += dt
		sm.alpha = 1 - core.ClampF(sm.elapsed/sm.flow.FadeInSeconds, 0, 1)
		if sm.elapsed >= sm.flow.FadeInSeconds {
			sm.phase = PhaseCountdown
			sm.countdown = sm.flow.CountdownSeconds
			sm.elapsed = 0
			sm.alpha = 0
			return TransitionCountdown
		}
	}
	return TransitionNone
}
