package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shopdesk/internal/core/ports/driving"
	"github.com/custodia-labs/shopdesk/internal/logger"
)

// version is set at build time via ldflags or SetVersion.
var version = "dev"

// Services installed by SetServices.
var (
	userService     driving.UserService
	sessionService  driving.SessionService
	productService  driving.ProductService
	settingsService driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "shopdesk",
	Short: "Manage a local product catalog",
	Long: `shopdesk keeps user accounts, the signed-in user and each user's
product catalog in a local SQLite database.

Sign up with 'shopdesk user register', sign in with 'shopdesk login', then
manage products with 'shopdesk product'. Run 'shopdesk tui' for the
interactive interface or 'shopdesk mcp serve' to expose the operations
to an MCP client.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic output to stderr")
}

// Services groups the driving ports used by commands.
type Services struct {
	User     driving.UserService
	Session  driving.SessionService
	Product  driving.ProductService
	Settings driving.SettingsService
}

// SetServices installs the services commands run against.
func SetServices(s Services) {
	userService = s.User
	sessionService = s.Session
	productService = s.Product
	settingsService = s.Settings
}

// SetVersion sets the version reported by 'shopdesk version' and the MCP server.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
