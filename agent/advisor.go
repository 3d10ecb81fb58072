// Package agent implements the AI advisor that answers questions about the
// spend ledger.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Advisor is a chat seeded with the rendered portfolio report so the model
// answers from the user's actual numbers.
type Advisor struct {
	ModelName string
	Report    string
	chat      *genai.Chat
}

// NewAdvisor returns an advisor grounded on the given markdown report.
func NewAdvisor(report string) *Advisor {
	return &Advisor{ModelName: defaultModel, Report: report}
}

// Start opens the chat session with the report as system instruction.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: "You are a cruise loyalty-finance advisor. " +
				"Answer strictly from the report below; say so when it lacks the answer.\n\n" + a.Report}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the model's text answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the advisor. Initial prompts
// are consumed before reading from r.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, w io.Writer, r io.Reader, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Welcome to clt assist. Type 'bye' to exit.")

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}
