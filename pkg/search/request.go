package search

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrEmptySearchTerm = errors.New("search term is empty")
	ErrInvalidPage     = errors.New("page number must be greater than zero")
)

const (
	googleEndpoint     = "https://www.google.com/search"
	bingEndpoint       = "https://www.bing.com/search"
	duckduckgoEndpoint = "https://html.duckduckgo.com/html/"
	yahooEndpoint      = "https://search.yahoo.com/search;_ylt=AwrFGXE_3rdmG7ElnKBDDWVH;_ylc=X1MDMTE5Nz" +
		"gwNDg2NwRfcgMyBGZyAwRmcjIDcDpzLHY6c2ZwLG06c2ItdG9wBGdwcmlkAzVaTFdBM2c5UXppNlZH" +
		"elNOeTk0bkEEbl9yc2x0AzAEbl9zdWdnAzEwBG9yaWdpbgNzZWFyY2gueWFob28uY29tBHBvcwMwBH" +
		"Bxc3RyAwRwcXN0cmwDMARxc3RybAM2BHF1ZXJ5A2dvb2dsZQR0X3N0bXADMTcyMzMyNjUxNg--"
)

// duckduckgoVQD is the anti-bot token expected by the paginated html endpoint.
// It is time limited on DuckDuckGo's side: once stale, pages past the first
// come back empty.
const duckduckgoVQD = "4-53414639616023508354840431374019649335"

var userAgents = map[Engine]string{
	EngineGoogle:     "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:126.0) Gecko/20100101 Firefox/126.0",
	EngineBing:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	EngineDuckDuckGo: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	EngineYahoo:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36 OPR/109.0.0.0",
}

// Request describes the outbound call needed to fetch one result page.
type Request struct {
	Engine    Engine
	Method    string
	Endpoint  string
	Params    url.Values
	UserAgent string
}

// Target returns the URL to fetch. Parameters are only part of it for GET
// requests, POST requests carry them as a form body.
func (r *Request) Target() string {
	if r.Method != http.MethodGet || len(r.Params) == 0 {
		return r.Endpoint
	}

	return r.Endpoint + "?" + r.Params.Encode()
}

// NewRequest builds the request fetching the given result page of the engine.
func NewRequest(engine Engine, searchTerm string, startPage int) (*Request, error) {
	if strings.TrimSpace(searchTerm) == "" {
		return nil, errors.WithStack(ErrEmptySearchTerm)
	}

	if startPage < 1 {
		return nil, errors.Wrapf(ErrInvalidPage, "got %d", startPage)
	}

	params := url.Values{}
	params.Set("q", searchTerm)

	req := &Request{
		Engine:    engine,
		Method:    http.MethodGet,
		Params:    params,
		UserAgent: userAgents[engine],
	}

	switch engine {
	case EngineGoogle:
		req.Endpoint = googleEndpoint
		if startPage > 1 {
			params.Set("start", strconv.Itoa((startPage-1)*10))
		}

	case EngineBing:
		req.Endpoint = bingEndpoint
		if startPage > 1 {
			params.Set("first", strconv.Itoa((startPage-1)*10))
		}
		params.Set("rdr", "1")

	case EngineDuckDuckGo:
		req.Method = http.MethodPost
		req.Endpoint = duckduckgoEndpoint
		if startPage > 1 {
			offset := 73 + (startPage-1)*50
			params.Set("s", strconv.Itoa(offset))
			params.Set("dc", strconv.Itoa(offset+1))
			params.Set("v", "l")
			params.Set("o", "json")
			params.Set("api", "d.js")
			params.Set("vqd", duckduckgoVQD)
			params.Set("kl", "wt-wt")
		}

	case EngineYahoo:
		req.Endpoint = yahooEndpoint
		if startPage > 1 {
			params.Set("b", strconv.Itoa(1+startPage*7))
		}
		params.Set("fr2", "sb-top")
		params.Set("iscqry", "")

	default:
		return nil, errors.Wrapf(ErrUnknownEngine, "engine %d", int(engine))
	}

	return req, nil
}
