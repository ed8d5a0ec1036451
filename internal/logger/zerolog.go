package logger

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// OpKey names the field Error turns into its message: "<op> failed".
const OpKey = "op"

// ZerologAdapter keeps one child logger per component, created on first use.
type ZerologAdapter struct {
	root zerolog.Logger

	mu         sync.Mutex
	components map[string]zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	return &ZerologAdapter{
		root:       zerolog.New(writer).Level(level).With().Timestamp().Logger(),
		components: make(map[string]zerolog.Logger),
	}
}

func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	return NewZerolog(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}, level)
}

// New picks the JSON or console encoding for stderr.
func New(level string, useJSON bool) *ZerologAdapter {
	lvl := ParseLevel(level)
	if useJSON {
		return NewZerolog(os.Stderr, lvl)
	}
	return NewConsoleLogger(lvl)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	l := z.component(component)
	addFields(l.Info(), fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	message := "operation failed"
	if op, ok := fields[OpKey].(string); ok && op != "" {
		message = op + " failed"
	}
	l := z.component(component)
	addFields(l.Error().Err(err), fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	l := z.component(component)
	addFields(l.Warn(), fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	l := z.component(component)
	addFields(l.Debug(), fields).Msg(message)
}

func (z *ZerologAdapter) component(name string) zerolog.Logger {
	z.mu.Lock()
	defer z.mu.Unlock()

	l, ok := z.components[name]
	if !ok {
		l = z.root.With().Str("component", name).Logger()
		z.components[name] = l
	}
	return l
}

// addFields writes fields in key order, using zerolog's typed encoders for
// the value kinds the editor logs.
func addFields(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		switch v := fields[k].(type) {
		case string:
			event = event.Str(k, v)
		case int:
			event = event.Int(k, v)
		case int64:
			event = event.Int64(k, v)
		case float32:
			event = event.Float32(k, v)
		case float64:
			event = event.Float64(k, v)
		case bool:
			event = event.Bool(k, v)
		case time.Duration:
			event = event.Dur(k, v)
		case []string:
			event = event.Strs(k, v)
		case error:
			event = event.AnErr(k, v)
		case fmt.Stringer:
			event = event.Stringer(k, v)
		default:
			event = event.Interface(k, v)
		}
	}
	return event
}
