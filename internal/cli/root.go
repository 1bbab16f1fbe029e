package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/taskmate/internal/conversation"
	"github.com/alexanderramin/taskmate/internal/dispatch"
	"github.com/alexanderramin/taskmate/internal/recommend"
)

// App holds the services used by CLI commands.
type App struct {
	Service      *recommend.Service
	Orchestrator *conversation.Orchestrator
	Sessions     *conversation.Store
	Handler      *dispatch.Handler

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "taskmate" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskmate",
		Short: "Task assignment recommender and project planning chat",
	}

	// Accept underscore spellings to match the request payload field names
	// (e.g. --task_category for --task-category).
	root.SetGlobalNormalizationFunc(normalizeFlagName)

	root.AddCommand(
		newRecommendCmd(app),
		newTeamCmd(app),
		newChatCmd(app),
		newServeCmd(app),
	)

	return root
}

func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
