package cli

import (
	"fmt"

	"github.com/kcaldas/console/pkg/config"
	"github.com/kcaldas/console/pkg/fileops"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the command that writes a starter config file.
func NewInitCommand(files fileops.Manager) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample config file",
		Long: `Write a sample config file to the --config path, or
~/.console/config.yaml. An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := writeSampleConfig(files, configPath, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

func writeSampleConfig(files fileops.Manager, path string, force bool) (string, error) {
	path, err := config.ExpandPath(path)
	if err != nil {
		return "", err
	}

	if force {
		err = files.WriteObjectAsYAML(path, config.Sample())
	} else {
		err = files.CreateObjectAsYAML(path, config.Sample())
	}
	if err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
