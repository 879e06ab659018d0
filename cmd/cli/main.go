package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"llm-qa/internal/app"
	"llm-qa/internal/provider"
	"llm-qa/internal/qa"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "llm-qa",
		Short:         "Ask questions to an LLM provider from the terminal",
		Long:          "An interactive question-and-answering loop backed by a configurable LLM provider (Groq, OpenAI, Cohere or Gemini).",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	deps := app.Build()

	rule := strings.Repeat("=", 70)
	fmt.Println(rule)
	color.New(color.Bold).Println("LLM Question-and-Answering System")
	fmt.Println(rule)

	if !deps.QA.Ready() {
		status := deps.QA.Status()
		color.Red("Error: %s", status.Error)
		if status.Hint != "" {
			color.Yellow("Hint: %s", status.Hint)
		}
		return errors.New("provider is not configured")
	}
	color.Green("Connected to %s\n", strings.ToUpper(deps.Config.Provider))

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("\nEnter your question (or 'quit' to exit): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		question := strings.TrimSpace(line)
		switch strings.ToLower(question) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return nil
		case "":
			color.Yellow("Please enter a valid question.")
			continue
		}

		fmt.Println("Processing your question...")
		result, err := deps.QA.Ask(ctx, question)
		if err != nil {
			printError(err)
			continue
		}
		printResult(result)
	}
}

func printResult(result qa.Answer) {
	divider := strings.Repeat("-", 70)
	fmt.Println(divider)
	color.New(color.Bold).Println("ORIGINAL QUESTION:")
	fmt.Printf("   %s\n\n", result.OriginalQuestion)
	color.New(color.Bold).Println("PROCESSED QUESTION:")
	fmt.Printf("   %s\n\n", result.ProcessedQuestion)
	color.New(color.Bold).Println("TOKENS:")
	fmt.Printf("   %s\n\n", strings.Join(result.Tokens, ", "))
	color.New(color.Bold).Println("ANSWER:")
	fmt.Printf("   %s\n", result.Answer)
	fmt.Println(divider)
}

// printError shows the failure detail and, when available, how to fix it;
// the loop then continues so one bad call never ends the session.
func printError(err error) {
	var perr *provider.Error
	if errors.As(err, &perr) {
		color.Red("Error: %s", perr.Detail)
		if perr.Hint != "" {
			color.Yellow("Hint: %s", perr.Hint)
		}
		return
	}
	color.Red("Error: %v", err)
}
