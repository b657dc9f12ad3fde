package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/libdash/internal/api"
	"github.com/blackwell-systems/libdash/internal/config"
	"github.com/blackwell-systems/libdash/internal/dashboard"
	"github.com/blackwell-systems/libdash/internal/session"
	"github.com/blackwell-systems/libdash/internal/tui"
	"github.com/blackwell-systems/libdash/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	sess   *session.Session
	client *api.Client
	ctrl   *dashboard.Controller

	flagNoColor       bool
	flagNoInteractive bool
	flagYes           bool
)

var rootCmd = &cobra.Command{
	Use:   "libdash",
	Short: "Manage a library backend's books, publishers, authors and reviews",
	Long: `libdash is a dashboard client for a library REST backend.

It authenticates against the backend, keeps the session token between
runs, and lets you list, create, update and delete books, publishers,
authors and reviews — with the controls your role actually permits.

Run 'libdash' with no arguments to launch the interactive dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand provided and in TUI mode, launch hub
		if tui.ShouldUseTUI(cmd) {
			return runHub()
		}
		// Otherwise show help
		return cmd.Help()
	},
}

// Execute is the entry point called from main. Errors the API client has
// already surfaced through its hook are not printed again.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !api.Reported(err) {
			fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		sess = session.Load(session.NewStore(cfg.Session.TokenPath))
		client = api.New(cfg, sess)
		client.OnError(func(err error) {
			fmt.Fprintln(os.Stderr, color.RedString("✗"), err)
		})

		ctrl = dashboard.NewController(os.Stdout, confirmPrompt)
		for _, src := range allSources() {
			ctrl.Register(src)
		}

		if requiresAuth(cmd) && !sess.Authenticated() {
			return fmt.Errorf("not logged in — run 'libdash login'")
		}
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newInitCmd(),
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newDashboardCmd(),
		newBooksCmd(),
		newPublishersCmd(),
		newAuthorsCmd(),
		newReviewsCmd(),
		newVersionCmd(),
	)
}

// requiresAuth reports whether the command needs a stored session to run.
// The root command handles the logged-out state itself so the hub can show
// setup guidance instead of a bare error.
func requiresAuth(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "libdash", "init", "login", "register", "logout", "version", "help", "completion":
		return false
	}
	if p := cmd.Parent(); p != nil && p.Name() == "completion" {
		return false
	}
	return true
}

// confirmPrompt asks a y/N question on the terminal. The --yes flag on
// destructive commands skips it.
func confirmPrompt(prompt string) bool {
	if flagYes {
		return true
	}
	fmt.Printf("%s (y/N): ", prompt)
	var resp string
	_, _ = fmt.Scanln(&resp)
	return resp == "y" || resp == "Y" || resp == "yes"
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
