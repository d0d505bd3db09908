package cli

import (
	"github.com/spf13/cobra"

	"opslog-cli/internal/format"
)

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
