package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bender/internal/config"
	"bender/internal/pathcheck"
	"bender/internal/present"
	"bender/internal/secret"
	"bender/internal/wizard"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities (bare invocation runs the wizard)",
		RunE:  runWizard(ctx),
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigGetCommand(ctx))
	configCmd.AddCommand(newConfigSetCommand(ctx))
	configCmd.AddCommand(newConfigPathCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigResetCommand(ctx))

	return configCmd
}

func runWizard(ctx *commandContext) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := ctx.ensureConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		prompter, err := wizard.NewTerminalPrompter()
		if err != nil {
			return err
		}
		printer := present.NewPrinter(out, present.TerminalWidth(), shouldColorize(out))
		w := wizard.New(prompter, printer)

		var result *config.Config
		if ctx.configExists {
			candidate := config.Default()
			if err := candidate.Normalize(); err != nil {
				return fmt.Errorf("prepare candidate defaults: %w", err)
			}
			result, err = w.Reconcile(cfg, &candidate)
		} else {
			result, err = w.Ask()
		}
		if err != nil {
			return err
		}

		result.Paths.Config = ctx.configPath
		if err := result.Normalize(); err != nil {
			return err
		}
		if err := result.Validate(); err != nil {
			printStatus(out, statusError, "Validation", err.Error())
			return err
		}
		if err := result.Save(); err != nil {
			printStatus(out, statusError, "Configuration", err.Error())
			return err
		}
		printStatus(out, statusOK, "Configuration", "saved to "+result.Paths.Config)

		if _, err := secret.Ensure(result.Paths.Private); err != nil {
			printStatus(out, statusError, "App secret", err.Error())
			return err
		}
		printStatus(out, statusOK, "App secret", "present under "+result.Paths.Private)

		ctx.loggerValue().Info("wizard session saved",
			slog.String("path", result.Paths.Config),
			slog.Bool("reconciled", ctx.configExists))
		return nil
	}
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			printStatus(out, statusOK, "Configuration", "sample written to "+target)
			fmt.Fprintln(out, "Edit the file or run `bender-config config` to walk through the settings.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configuration as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			titleCaser := cases.Title(language.English)
			rows := make([][]string, 0, len(wizard.Keys()))
			for _, key := range wizard.Keys() {
				value, err := wizard.Get(cfg, key)
				if err != nil {
					return err
				}
				section := "general"
				if i := strings.IndexByte(key, '.'); i >= 0 {
					section = key[:i]
				}
				rows = append(rows, []string{titleCaser.String(section), key, value})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Section", "Key", "Value"}, rows))
			if !ctx.configExists {
				printStatus(out, statusWarn, "Config file", "not found; showing defaults")
			}
			return nil
		},
	}
}

func newConfigGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			value, err := wizard.Get(cfg, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newConfigSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one configuration value and save the document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := wizard.Set(cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Normalize(); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printStatus(out, statusOK, args[0], "saved to "+cfg.Paths.Config)
			ctx.loggerValue().Info("configuration value updated", slog.String("key", args[0]))
			return nil
		},
	}
}

func newConfigPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved configuration file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ctx.configPath)
			if !ctx.configExists {
				printStatus(cmd.OutOrStdout(), statusWarn, "Config file", "does not exist yet")
			}
			return nil
		},
	}
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and probe configured paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				printStatus(out, statusError, "Configuration", err.Error())
				return errors.New("configuration is invalid")
			}
			if ctx.configExists {
				printStatus(out, statusOK, "Config file", ctx.configPath)
			} else {
				printStatus(out, statusWarn, "Config file", "not found; defaults in effect")
			}
			printStatus(out, statusOK, "Document", "parsed and validated")

			failed := false
			checks := []struct {
				label string
				path  string
			}{
				{"Private dir", cfg.Paths.Private},
				{"Upload dir", cfg.Paths.Upload},
				{"Log dir", cfg.Paths.Log},
				{"Config file path", cfg.Paths.Config},
			}
			for _, check := range checks {
				writable, err := pathcheck.IsWritable(check.path)
				switch {
				case err != nil:
					printStatus(out, statusError, check.label, err.Error())
					failed = true
				case !writable:
					printStatus(out, statusError, check.label, "permission denied: "+check.path)
					failed = true
				default:
					printStatus(out, statusOK, check.label, check.path)
				}
			}

			secretPath := filepath.Join(cfg.Paths.Private, secret.FileName)
			if pathcheck.Exists(secretPath) {
				printStatus(out, statusOK, "App secret", "present")
			} else {
				printStatus(out, statusWarn, "App secret", "missing; the wizard will generate it")
			}

			if failed {
				return errors.New("configuration validation failed")
			}
			return nil
		},
	}
}

func newConfigResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the configuration to repository defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.flagPath()
			var err error
			if path == "" {
				path, err = config.DefaultConfigPath()
			} else {
				path, err = config.ExpandPath(path)
			}
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}

			cfg := config.Default()
			cfg.Paths.Config = path
			if err := cfg.Normalize(); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), statusOK, "Configuration", "reset to defaults at "+path)
			return nil
		},
	}
}
