package ocbuild

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outofforest/run"
)

// Main is the entrypoint of the ocbuild command.
func Main() {
	run.New().Run(context.Background(), "ocbuild", func(ctx context.Context) error {
		return errors.WithStack(NewCommand().ExecuteContext(ctx))
	})
}

// NewCommand returns root command of the CLI.
func NewCommand() *cobra.Command {
	var (
		manifest string
		output   string
		debug    bool
	)

	loadConfig := func(cmd *cobra.Command) (Config, error) {
		config := DefaultConfig()
		if manifest != "" {
			var err error
			config, err = LoadManifest(manifest)
			if err != nil {
				return Config{}, err
			}
		}
		if cmd.Flags().Changed("output") {
			config.Output = output
		}
		if cmd.Flags().Changed("debug") {
			config.Debug = debug
		}
		return config, nil
	}

	command := func(use, short string, fn func(ctx context.Context, config Config) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				config, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				return fn(cmd.Context(), config)
			},
		}
	}

	rootCmd := &cobra.Command{
		Use:           "ocbuild",
		Short:         "Builds OpenCore EFI tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&manifest, "manifest", "", "Path to the YAML manifest")
	rootCmd.PersistentFlags().StringVar(&output, "output", "", "Output directory overriding the manifest")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Install DEBUG variants of the releases")

	rootCmd.AddCommand(
		command("build", "Builds the complete tree", Build),
		command("tree", "Installs bootloader, binary data and kexts", BuildTree),
		command("plist", "Generates config.plist", func(ctx context.Context, config Config) error {
			_, err := WriteConfig(ctx, config)
			return err
		}),
		command("normalize", "Normalizes permissions and removes garbage", Normalize),
		command("image", "Packs the tree into FAT32 image", CreateImage),
	)

	return rootCmd
}
