package hooking

import (
	"github.com/rs/zerolog"
)

// LogProbe writes every probe notification to a zerolog logger. Listener
// runs are logged at debug level, breaks at info level and failures at error
// level.
type LogProbe struct {
	logger zerolog.Logger
}

// NewLogProbe creates a LogProbe that writes to logger.
func NewLogProbe(logger zerolog.Logger) *LogProbe {
	return &LogProbe{logger: logger}
}

// Func logs the notification.
func (p *LogProbe) Func(ctx ProbeCtx) {
	var e *zerolog.Event

	switch ctx.Pos {
	case ProbePosFailure:
		err, _ := ctx.Detail.(error)
		e = p.logger.Error().Err(err)
	case ProbePosBreak:
		e = p.logger.Info()
		if b, ok := ctx.Detail.(*Breaker); ok {
			e = e.Interface("payload", b.Payload)
		}
	case ProbePosAfterListener:
		e = p.logger.Debug().Interface("value", ctx.Detail)
	default:
		e = p.logger.Debug()
	}

	e.Str("hook", ctx.Item.Hook).
		Int("index", ctx.Item.Index).
		Int("priority", ctx.Item.Priority).
		Str("pos", ctx.Pos.Name).
		Msg("hook listener")
}
