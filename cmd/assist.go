package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/crazycoder/cruiseledger/agent"
	"github.com/crazycoder/cruiseledger/renderer"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "interactive AI advisor grounded on the portfolio" }
func (*assistCmd) Usage() string {
	return `clt assist [question...]

  Starts an interactive session with the advisor, seeded with the current
  portfolio summary. A question given as arguments is asked first.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor(renderer.PortfolioMarkdown(ledger.PortfolioMetrics()))

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := advisor.Run(ctx, client, os.Stdout, os.Stdin, prompts...); err != nil {
		fmt.Fprintf(os.Stderr, "Advisor failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
