package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/dzonerzy/go-optable/internal/pool"
	optio "github.com/dzonerzy/go-optable/io"
	"github.com/dzonerzy/go-optable/optparse"
)

// PhaseInfo describes one converter phase run
type PhaseInfo struct {
	Option    string
	Phase     Phase
	Position  int
	Args      []string // tokens consumed by Extract
	StartTime time.Time
	Duration  time.Duration
	Error     error
}

var phaseInfoPool = pool.NewPoolWithReset(
	func() *PhaseInfo {
		return &PhaseInfo{Args: make([]string, 0, 4)}
	},
	func(info *PhaseInfo) {
		info.Option = ""
		info.Phase = ""
		info.Position = 0
		info.Args = info.Args[:0]
		info.StartTime = time.Time{}
		info.Duration = 0
		info.Error = nil
	},
)

// record levels
const (
	levelError   = "ERROR"
	levelSkip    = "SKIP"
	levelStep    = "STEP"
	levelSuccess = "SUCCESS"
)

type sink func(info *PhaseInfo, level string)

// Logger logs converter phases. Errors are logged from LogLevelError,
// completed dispatches from LogLevelInfo and every phase from LogLevelDebug.
func Logger(options ...MiddlewareOption) Middleware {
	config := newConfig(options)
	w := config.writer()
	if config.LogLevel == LogLevelNone || w == nil {
		return func(next optparse.Converter) optparse.Converter { return next }
	}
	return logging(config, func(info *PhaseInfo, level string) {
		if !shouldLog(config.LogLevel, level) {
			return
		}
		switch config.LogFormat {
		case LogFormatJSON:
			writeJSONLog(w, info, level, config)
		default:
			writeTextLog(w, info, level, config)
		}
	})
}

// LogTo logs converter phases through l: errors at error level, completed
// dispatches as success and individual phases at debug level.
func LogTo(l *optio.Logger) Middleware {
	config := DefaultConfig()
	return logging(config, func(info *PhaseInfo, level string) {
		buf := pool.GetBuffer(128)
		defer pool.PutBuffer(buf)
		*buf = appendTextFields(*buf, info, config)

		switch level {
		case levelError:
			l.Error("%s", *buf)
		case levelSuccess:
			l.Success("%s", *buf)
		default:
			l.Debug("%s %s", level, *buf)
		}
	})
}

func logging(config *MiddlewareConfig, emit sink) Middleware {
	run := func(c *optparse.Call, phase Phase, fn func(info *PhaseInfo) error) error {
		info := phaseInfoPool.Get()
		defer phaseInfoPool.Put(info)

		info.Option = optionName(c)
		info.Phase = phase
		info.Position = c.Position
		info.StartTime = time.Now()

		err := fn(info)
		info.Duration = time.Since(info.StartTime)
		info.Error = err
		emit(info, levelFor(phase, err))
		return err
	}

	return func(next optparse.Converter) optparse.Converter {
		return optparse.Funcs{
			OnCheck: func(c *optparse.Call, rest []string, split bool) error {
				return run(c, PhaseCheck, func(*PhaseInfo) error {
					return next.Check(c, rest, split)
				})
			},
			OnExtract: func(c *optparse.Call, rest []string) (int, error) {
				var n int
				err := run(c, PhaseExtract, func(info *PhaseInfo) error {
					var err error
					n, err = next.Extract(c, rest)
					if err == nil && config.IncludeArgs && n > 0 && n <= len(rest) {
						info.Args = append(info.Args, rest[:n]...)
					}
					return err
				})
				return n, err
			},
			OnFinalize: func(c *optparse.Call) error {
				return run(c, PhaseFinalize, func(*PhaseInfo) error {
					return next.Finalize(c)
				})
			},
		}
	}
}

func levelFor(phase Phase, err error) string {
	switch {
	case phase == PhaseCheck && errors.Is(err, optparse.ErrSkip):
		return levelSkip
	case err != nil:
		return levelError
	case phase == PhaseFinalize:
		return levelSuccess
	default:
		return levelStep
	}
}

// shouldLog determines if the log level warrants logging
func shouldLog(configLevel LogLevel, messageLevel string) bool {
	switch messageLevel {
	case levelError:
		return configLevel >= LogLevelError
	case levelSuccess:
		return configLevel >= LogLevelInfo
	default:
		return configLevel >= LogLevelDebug
	}
}

func appendTextFields(buf []byte, info *PhaseInfo, config *MiddlewareConfig) []byte {
	buf = append(buf, "option="...)
	buf = append(buf, info.Option...)
	buf = append(buf, " phase="...)
	buf = append(buf, string(info.Phase)...)
	buf = append(buf, " position="...)
	buf = strconv.AppendInt(buf, int64(info.Position), 10)

	if config.IncludeArgs && len(info.Args) > 0 {
		buf = append(buf, " args="...)
		for i, arg := range info.Args {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = append(buf, arg...)
		}
	}

	if info.Error != nil {
		buf = append(buf, " error="...)
		buf = strconv.AppendQuote(buf, info.Error.Error())
	}
	return buf
}

// writeTextLog writes a human-readable text log entry
func writeTextLog(writer io.Writer, info *PhaseInfo, level string, config *MiddlewareConfig) {
	buf := pool.GetBuffer(256)
	defer pool.PutBuffer(buf)

	*buf = append(*buf, '[')
	*buf = info.StartTime.AppendFormat(*buf, "2006-01-02 15:04:05")
	*buf = append(*buf, "] "...)
	*buf = append(*buf, level...)
	*buf = append(*buf, ' ')
	*buf = appendTextFields(*buf, info, config)
	if info.Duration > 0 {
		*buf = append(*buf, " duration="...)
		*buf = append(*buf, info.Duration.String()...)
	}
	*buf = append(*buf, '\n')

	//nolint:errcheck,gosec // Logging is best-effort; ignore write errors.
	writer.Write(*buf)
}

// writeJSONLog writes a structured JSON log entry
func writeJSONLog(writer io.Writer, info *PhaseInfo, level string, config *MiddlewareConfig) {
	buf := pool.GetBuffer(512)
	defer pool.PutBuffer(buf)

	*buf = append(*buf, `{"timestamp":"`...)
	*buf = info.StartTime.AppendFormat(*buf, time.RFC3339)
	*buf = append(*buf, `","level":"`...)
	*buf = append(*buf, level...)
	*buf = append(*buf, `","option":`...)
	*buf = appendJSONString(*buf, info.Option)
	*buf = append(*buf, `,"phase":"`...)
	*buf = append(*buf, string(info.Phase)...)
	*buf = append(*buf, `","position":`...)
	*buf = strconv.AppendInt(*buf, int64(info.Position), 10)
	*buf = append(*buf, `,"duration_us":`...)
	*buf = strconv.AppendInt(*buf, info.Duration.Microseconds(), 10)

	if config.IncludeArgs && len(info.Args) > 0 {
		*buf = append(*buf, `,"args":[`...)
		for i, arg := range info.Args {
			if i > 0 {
				*buf = append(*buf, ',')
			}
			*buf = appendJSONString(*buf, arg)
		}
		*buf = append(*buf, ']')
	}

	if info.Error != nil {
		*buf = append(*buf, `,"error":`...)
		*buf = appendJSONString(*buf, info.Error.Error())
	}

	*buf = append(*buf, "}\n"...)

	//nolint:errcheck,gosec // Logging is best-effort; ignore write errors.
	writer.Write(*buf)
}

func appendJSONString(buf []byte, s string) []byte {
	enc, _ := json.Marshal(s)
	return append(buf, enc...)
}

// Convenience constructors for common logging scenarios

// DebugLogger logs every phase
func DebugLogger() Middleware {
	return Logger(WithLogLevel(LogLevelDebug))
}

// ErrorLogger logs only failing phases
func ErrorLogger() Middleware {
	return Logger(WithLogLevel(LogLevelError))
}

// JSONLogger logs completed dispatches and errors as JSON lines
func JSONLogger() Middleware {
	return Logger(WithLogFormat(LogFormatJSON))
}
