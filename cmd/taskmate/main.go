package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/taskmate/internal/analytics"
	"github.com/alexanderramin/taskmate/internal/cli"
	"github.com/alexanderramin/taskmate/internal/conversation"
	"github.com/alexanderramin/taskmate/internal/dispatch"
	"github.com/alexanderramin/taskmate/internal/llm"
	"github.com/alexanderramin/taskmate/internal/recommend"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var observer llm.Observer = llm.NoopObserver{}
	llmCfg := llm.LoadConfig()
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}

	// Analytics source: real RPC bridge when enabled, static fallback always.
	analyticsCfg := analytics.LoadConfig()
	var real analytics.Source
	if analyticsCfg.Enabled {
		real = analytics.NewBridgeClient(analyticsCfg)
	}
	source := analytics.NewResilient(real, analytics.NewStaticSource(), observer)

	// Model client only when generation is enabled; nil clients degrade to
	// the deterministic paths everywhere.
	var client llm.Client
	if llmCfg.Enabled {
		client = llm.NewOllamaClient(llmCfg, observer)
	}

	service := recommend.NewService(source, recommend.NewEnhancer(client, observer), observer)

	app := &cli.App{
		Service:      service,
		Orchestrator: conversation.NewOrchestrator(client, observer),
		Sessions:     conversation.NewStore(),
		Handler:      dispatch.NewHandler(service),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
