package cli

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/taskmate/internal/dispatch"
)

// maxRequestBytes bounds one line-delimited request.
const maxRequestBytes = 1 << 20

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve line-delimited JSON requests on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, app)
		},
	}
}

// serve reads one JSON request per line and writes one JSON response per
// line. Malformed lines produce error responses, never a dead connection.
func serve(cmd *cobra.Command, app *App) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestBytes)
	encoder := json.NewEncoder(cmd.OutOrStdout())

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req dispatch.Request
		if err := json.Unmarshal(line, &req); err != nil {
			resp := dispatch.Response{"success": false, "error": fmt.Sprintf("invalid request: %v", err)}
			if err := encoder.Encode(resp); err != nil {
				return err
			}
			continue
		}

		resp := app.Handler.Handle(cmd.Context(), req)
		if err := encoder.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}
