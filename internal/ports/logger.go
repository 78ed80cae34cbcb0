// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ports

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for tracing of loads, releases and input.
	LevelDebug LogLevel = iota
	// LevelInfo is for startup and shutdown progress.
	LevelInfo
	// LevelWarn is for per-image failures that leave the viewer running.
	LevelWarn
	// LevelError is for failures that end the process.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a string into a LogLevel, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// Logger abstracts logging. The msg parameter is a format string that
// doubles as the translation key.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with the component name.
	WithComponent(component string) Logger
}

// Discard is a Logger that drops every message. It is the default for
// components that are not given one.
var Discard Logger = discard{}

type discard struct{}

func (discard) Debug(string, ...interface{})  {}
func (discard) Info(string, ...interface{})   {}
func (discard) Warn(string, ...interface{})   {}
func (discard) Error(string, ...interface{})  {}
func (d discard) WithComponent(string) Logger { return d }
