package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/qmc/minimize"
)

// initCmd: qmc init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInit(cmd.OutOrStdout(), cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			os.Exit(1)
		}
	},
}

func runInit(out io.Writer, configurationPath string) error {
	path, err := initConfigurationFile(configurationPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Configuration file created/updated: %s\n", path)
	return nil
}

func initConfigurationFile(configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = minimize.DefaultConfigFile
	}
	return configurationPath, minimize.WriteConfig(configurationPath, minimize.DefaultConfig())
}
