package search

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownEngine = errors.New("unknown search engine")

// Engine identifies one of the supported search engines.
type Engine int

const (
	EngineGoogle Engine = iota
	EngineBing
	EngineDuckDuckGo
	EngineYahoo
)

var engines = []Engine{EngineGoogle, EngineBing, EngineDuckDuckGo, EngineYahoo}

// Engines returns every supported engine in declaration order.
func Engines() []Engine {
	return append([]Engine(nil), engines...)
}

// String returns the lowercase identifier of the engine.
func (e Engine) String() string {
	switch e {
	case EngineGoogle:
		return "google"
	case EngineBing:
		return "bing"
	case EngineDuckDuckGo:
		return "duckduckgo"
	case EngineYahoo:
		return "yahoo"
	default:
		return "unknown"
	}
}

// Label returns the name recorded as the origin of the engine's results.
func (e Engine) Label() string {
	switch e {
	case EngineGoogle:
		return "Google"
	case EngineBing:
		return "Bing"
	case EngineDuckDuckGo:
		return "Duckduckgo"
	case EngineYahoo:
		return "Yahoo"
	default:
		return "Unknown"
	}
}

func ParseEngine(name string) (Engine, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range engines {
		if e.String() == name {
			return e, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownEngine, "'%s'", name)
}
