package search

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is a single hit extracted from a search engine result page.
type Result struct {
	url           string
	page          int
	rank          int
	retrievedFrom string
}

func (r Result) URL() string {
	return r.url
}

func (r Result) Page() int {
	return r.page
}

func (r Result) Rank() int {
	return r.rank
}

func (r Result) RetrievedFrom() string {
	return r.retrievedFrom
}

func (r Result) String() string {
	return r.url
}

// Info returns a human-readable dump of the result fields.
func (r Result) Info() string {
	return fmt.Sprintf("url: %s\nretrieved_from: %s\npage: %d\nrank: %d\n", r.url, r.retrievedFrom, r.page, r.rank)
}

func (r Result) PrintInfo(w io.Writer) error {
	_, err := io.WriteString(w, r.Info())
	return err
}

type resultView struct {
	URL           string `json:"url" yaml:"url"`
	RetrievedFrom string `json:"retrieved_from" yaml:"retrieved_from"`
	Page          int    `json:"page" yaml:"page"`
	Rank          int    `json:"rank" yaml:"rank"`
}

func (r Result) view() resultView {
	return resultView{
		URL:           r.url,
		RetrievedFrom: r.retrievedFrom,
		Page:          r.page,
		Rank:          r.rank,
	}
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}

// MarshalYAML implements yaml.Marshaler.
func (r Result) MarshalYAML() (any, error) {
	return r.view(), nil
}

var _ json.Marshaler = Result{}
