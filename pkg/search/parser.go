package search

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// Parser extracts the results of a search engine result page, in document order.
// Markup that does not match the expected structure yields no results, not an error.
type Parser func(r io.Reader, page int) ([]Result, error)

var parsers = map[Engine]Parser{
	EngineGoogle:     ParseGoogle,
	EngineBing:       ParseBing,
	EngineDuckDuckGo: ParseDuckDuckGo,
	EngineYahoo:      ParseYahoo,
}

// ParserFor returns the parser of the given engine, nil if the engine is unknown.
func ParserFor(engine Engine) Parser {
	return parsers[engine]
}

func Parse(engine Engine, r io.Reader, page int) ([]Result, error) {
	parse := ParserFor(engine)
	if parse == nil {
		return nil, errors.Wrapf(ErrUnknownEngine, "engine %d", int(engine))
	}

	return parse(r, page)
}

func ParseGoogle(r io.Reader, page int) ([]Result, error) {
	return extract(r, EngineGoogle, page, func(doc *goquery.Document) []*goquery.Selection {
		return selections(doc.Find(`a[jsname="UWckNb"]`))
	}, verbatim)
}

func ParseBing(r io.Reader, page int) ([]Result, error) {
	return extract(r, EngineBing, page, func(doc *goquery.Document) []*goquery.Selection {
		// Bing links have no distinctive attribute, their list item container does
		anchors := make([]*goquery.Selection, 0)
		doc.Find("li.b_algo").Each(func(i int, s *goquery.Selection) {
			anchor := s.Find("a").First()
			if anchor.Length() == 0 {
				return
			}

			anchors = append(anchors, anchor)
		})
		return anchors
	}, verbatim)
}

func ParseDuckDuckGo(r io.Reader, page int) ([]Result, error) {
	return extract(r, EngineDuckDuckGo, page, func(doc *goquery.Document) []*goquery.Selection {
		return selections(doc.Find("a.result__a"))
	}, verbatim)
}

func ParseYahoo(r io.Reader, page int) ([]Result, error) {
	return extract(r, EngineYahoo, page, func(doc *goquery.Document) []*goquery.Selection {
		return selections(doc.Find("a.fz-20"))
	}, DecodeRedirectURL)
}

// DecodeRedirectURL recovers the destination of a Yahoo redirector link.
//
// The destination is percent-encoded between the "RU=" marker and the
// following "/RK=2" segment. Links without the marker, such as Yahoo's own
// properties, are returned unchanged.
func DecodeRedirectURL(href string) string {
	idx := strings.Index(href, "RU=")
	if idx == -1 {
		return href
	}

	encoded := href[idx+len("RU="):]
	if end := strings.Index(encoded, "/RK=2"); end != -1 {
		encoded = encoded[:end]
	}

	return unescape(encoded)
}

// unescape decodes every valid %XX triplet and leaves malformed escapes
// in place. "+" is kept literal.
func unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func verbatim(href string) string {
	return href
}

func selections(sel *goquery.Selection) []*goquery.Selection {
	all := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		all = append(all, s)
	})
	return all
}

func extract(r io.Reader, engine Engine, page int, anchors func(doc *goquery.Document) []*goquery.Selection, decode func(href string) string) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	results := make([]Result, 0)

	for _, a := range anchors(doc) {
		href, exists := a.Attr("href")
		if !exists {
			continue
		}

		results = append(results, Result{
			url:           decode(href),
			page:          page,
			rank:          len(results) + 1,
			retrievedFrom: engine.Label(),
		})
	}

	return results, nil
}
