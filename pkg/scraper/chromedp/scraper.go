package chromedp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/bornholm/websearch/pkg/scraper"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"

	cu "github.com/Davincible/chromedp-undetected"
)

const postFormID = "websearch-post-form"

type Scraper struct {
	chromeCtx    context.Context
	cancelChrome context.CancelFunc
}

// Get implements scraper.Scraper.
func (s *Scraper) Get(ctx context.Context, url string, funcs ...scraper.RequestOptionFunc) (io.ReadCloser, error) {
	opts := scraper.NewRequestOptions(funcs...)

	return s.run(ctx, opts,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	)
}

// Post implements scraper.Scraper.
//
// The browser has no direct way to issue a POST navigation, so a form
// holding the values is injected in a blank page and submitted.
func (s *Scraper) Post(ctx context.Context, url string, form url.Values, funcs ...scraper.RequestOptionFunc) (io.ReadCloser, error) {
	opts := scraper.NewRequestOptions(funcs...)

	script, err := submitFormScript(url, form)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return s.run(ctx, opts,
		chromedp.Navigate("about:blank"),
		chromedp.Evaluate(script, nil),
		chromedp.WaitNotPresent("#"+postFormID, chromedp.ByQuery),
		chromedp.WaitReady("body"),
	)
}

func (s *Scraper) run(ctx context.Context, opts *scraper.RequestOptions, actions ...chromedp.Action) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	var html string

	tasks := chromedp.Tasks{
		network.Enable(),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if opts.UserAgent == "" {
				return nil
			}

			return errors.WithStack(emulation.SetUserAgentOverride(opts.UserAgent).Do(ctx))
		}),
	}

	if len(opts.Headers) > 0 {
		headers := network.Headers{}
		for key := range opts.Headers {
			headers[key] = opts.Headers.Get(key)
		}
		tasks = append(tasks, network.SetExtraHTTPHeaders(headers))
	}

	tasks = append(tasks, actions...)

	tasks = append(tasks, chromedp.ActionFunc(func(ctx context.Context) error {
		node, err := dom.GetDocument().Do(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		res, err := dom.GetOuterHTML().WithNodeID(node.NodeID).Do(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		html = res

		return nil
	}))

	if err := chromedp.Run(s.chromeCtx, tasks); err != nil {
		return nil, errors.WithStack(err)
	}

	return io.NopCloser(bytes.NewBufferString(html)), nil
}

func (s *Scraper) Close() {
	s.cancelChrome()
}

func submitFormScript(action string, form url.Values) (string, error) {
	rawAction, err := json.Marshal(action)
	if err != nil {
		return "", errors.WithStack(err)
	}

	fields := make(map[string]string, len(form))
	for key := range form {
		fields[key] = form.Get(key)
	}

	rawFields, err := json.Marshal(fields)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf(`(function() {
	const form = document.createElement("form");
	form.id = %q;
	form.method = "POST";
	form.action = %s;
	const fields = %s;
	for (const name in fields) {
		const input = document.createElement("input");
		input.type = "hidden";
		input.name = name;
		input.value = fields[name];
		form.appendChild(input);
	}
	document.body.appendChild(form);
	form.submit();
})();`, postFormID, rawAction, rawFields), nil
}

func NewScraper(headless bool) (*Scraper, error) {
	options := []cu.Option{}
	if headless {
		options = append(options, cu.WithHeadless())
	}

	if httpProxy := os.Getenv("HTTP_PROXY"); httpProxy != "" {
		options = append(options, cu.WithChromeFlags(chromedp.ProxyServer(httpProxy)))
	}

	chromeCtx, cancelChrome, err := cu.New(cu.NewConfig(options...))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Scraper{
		chromeCtx:    chromeCtx,
		cancelChrome: cancelChrome,
	}, nil
}

var _ scraper.Scraper = &Scraper{}
