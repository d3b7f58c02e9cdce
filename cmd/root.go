package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/clinovahq/clinova_backend/cmd/http"
	systemcmd "github.com/clinovahq/clinova_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "clinova",
	Short: "Clinova multi-tenant clinic management backend.",
	Long: `Clinova is a multi-tenant backend for outpatient clinics. It keeps the
patient registry, visit records, prescriptions and billing of many clinics
behind one API, with per-clinic isolation and a full audit trail.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
