package main

import (
	"github.com/bornholm/websearch/internal/command"
	"github.com/bornholm/websearch/internal/command/fetch"
	"github.com/bornholm/websearch/internal/command/search"
)

var (
	version string = "dev"
)

func main() {
	command.Main(
		"websearch",
		version,
		"Query web search engines and extract ranked result links",
		search.Search(),
		fetch.Fetch(),
	)
}
