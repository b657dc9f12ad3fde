package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/libdash/internal/config"
	"github.com/blackwell-systems/libdash/internal/util"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		serverURL string
		apiPrefix string
		timeout   int
		tokenPath string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the libdash config file",
		Long: `Write the backend connection settings to the config file
(default: ~/.config/libdash/config.yml).

Current values are the starting point, so re-running only changes what
you pass. With no flags on a terminal, the server URL is prompted for.

Examples:
  # Interactive
  libdash init

  # Scripted
  libdash init --server https://library.example.com --api-prefix /api/v1
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("server") && util.IsTTY() {
				fmt.Printf("Server base URL [%s]: ", cfg.Server.BaseURL)
				var in string
				_, _ = fmt.Scanln(&in)
				serverURL = strings.TrimSpace(in)
			}
			if serverURL != "" {
				cfg.Server.BaseURL = strings.TrimRight(serverURL, "/")
			}
			if cmd.Flags().Changed("api-prefix") {
				cfg.Server.APIPrefix = apiPrefix
			}
			if cmd.Flags().Changed("timeout") {
				if timeout <= 0 {
					return fmt.Errorf("timeout must be positive")
				}
				cfg.Server.TimeoutSeconds = timeout
			}
			if cmd.Flags().Changed("token-path") {
				cfg.Session.TokenPath = config.ExpandHome(tokenPath)
			}

			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			ok("Wrote %s", config.DefaultPath())
			fmt.Printf("  server: %s\n", cfg.Server.BaseURL)
			fmt.Printf("  prefix: %s\n", cfg.Server.APIPrefix)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "Backend base URL")
	cmd.Flags().StringVar(&apiPrefix, "api-prefix", "", "Resource path prefix")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "Request timeout in seconds")
	cmd.Flags().StringVar(&tokenPath, "token-path", "", "Session token file path")

	return cmd
}
