package combat

import (
	"log/slog"
)

// TurnInfo identifies one actor-turn inside a combat.
type TurnInfo struct {
	Round    int
	Seq      int // position of the actor in this round's turn order
	Actor    string
	Maneuver string
}

// TurnLogger receives every fully built stack before it is resolved.
// The stack must not be modified, and it is emptied by resolution right after the call,
// so implementations copy what they need.
type TurnLogger interface {
	ManeuverStack(info TurnInfo, stack *ActionStack)
}

// TurnLoggerFunc adapts a function to TurnLogger.
type TurnLoggerFunc func(info TurnInfo, stack *ActionStack)

func (f TurnLoggerFunc) ManeuverStack(info TurnInfo, stack *ActionStack) {
	f(info, stack)
}

// MultiLogger fans a stack out to several loggers in order. Nil entries are skipped.
func MultiLogger(loggers ...TurnLogger) TurnLogger {
	return TurnLoggerFunc(func(info TurnInfo, stack *ActionStack) {
		for _, l := range loggers {
			if l != nil {
				l.ManeuverStack(info, stack)
			}
		}
	})
}

// SlogTurnLogger narrates every stack line at debug level.
func SlogTurnLogger(l *slog.Logger) TurnLogger {
	if l == nil {
		l = slog.Default()
	}
	return TurnLoggerFunc(func(info TurnInfo, stack *ActionStack) {
		for i, a := range stack.Actions() {
			l.Debug("stack",
				"round", info.Round,
				"actor", info.Actor,
				"maneuver", info.Maneuver,
				"pos", i,
				"action", a.Narrate())
		}
	})
}
