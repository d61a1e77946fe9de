package main

import (
	"github.com/spf13/cobra"

	"github.com/jongio/scalus/cliout"
	"github.com/jongio/scalus/token"
	"github.com/jongio/scalus/urlparser"
)

type infoResult struct {
	URL         string            `json:"url"`
	Application string            `json:"application,omitempty"`
	Parser      string            `json:"parser"`
	Tokens      map[string]string `json:"tokens"`
	Template    []string          `json:"template"`
}

func newInfoCmd(a *app) *cobra.Command {
	var rawURL, parserID string
	cmd := &cobra.Command{
		Use:   "info [-u URL | URL]",
		Short: "Show the tokens parsed from a URL without launching anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := urlArg(rawURL, args)
			if err != nil {
				return err
			}
			res, err := a.parseURL(u, parserID)
			if err != nil {
				return err
			}
			return cliout.Print(res, func() { printInfo(res) })
		},
	}
	cmd.Flags().StringVarP(&rawURL, "url", "u", "", "URL to parse")
	cmd.Flags().StringVar(&parserID, "parser", "", "Parse with this parser id instead of the configured one")
	return cmd
}

// parseURL parses u with parserID, or with the parser of the application the
// configuration maps u's protocol to.
func (a *app) parseURL(u, parserID string) (*infoResult, error) {
	res := &infoResult{URL: u, Parser: parserID}

	var (
		parser urlparser.Parser
		tokens token.Map
		err    error
	)
	if parserID != "" {
		if parser, err = urlparser.New(parserID); err != nil {
			return nil, err
		}
		if tokens, err = parser.Parse(u); err != nil {
			return nil, err
		}
	} else {
		cfg, _, err := a.loadConfig()
		if err != nil {
			return nil, err
		}
		parsed, err := a.newRunner(cfg).Parse(u)
		if err != nil {
			return nil, err
		}
		parser, tokens = parsed.Parser, parsed.Tokens
		res.Application = parsed.Application.ID
		res.Parser = parsed.Application.Parser.ParserID
	}

	res.Tokens = tokens.Values()
	res.Template = token.RenderAll(&tokens, parser.DefaultTemplate())
	return res, nil
}

func printInfo(res *infoResult) {
	cliout.Header("URL")
	cliout.Label("URL", res.URL)
	if res.Application != "" {
		cliout.Label("Application", res.Application)
	}
	cliout.Label("Parser", res.Parser)

	cliout.Section("Tokens")
	rows := make([]cliout.TableRow, 0, token.Count)
	for _, t := range token.All() {
		rows = append(rows, cliout.TableRow{"Token": t.Placeholder(), "Value": res.Tokens[t.String()]})
	}
	cliout.Table([]string{"Token", "Value"}, rows)

	cliout.Section("Default template")
	if len(res.Template) == 0 {
		cliout.Info("the parser has no default template")
		return
	}
	for _, line := range res.Template {
		cliout.Plain("   %s", line)
	}
}
