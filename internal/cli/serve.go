package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	application "github.com/guikarist/gym-tictactoe/internal"
)

func ServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve remote environments over HTTP, backed by Redis",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := application.RunApp(logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	return cmd
}
