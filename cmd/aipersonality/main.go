package main

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kardolus/aipersonality/cmd/aipersonality/utils"
	"github.com/kardolus/aipersonality/config"
	"github.com/kardolus/aipersonality/internal"
	"github.com/kardolus/aipersonality/internal/fsio"
	"github.com/kardolus/aipersonality/personality"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	logoMode    string
	outputFlag  string
	debugMode   bool
	fromPath    string
	showValues  bool
	cfgManager  *config.Manager
	personaLoad *personality.Loader
)

func main() {
	_ = godotenv.Load()
	internal.InitLogger()

	rootCmd := &cobra.Command{
		Use:               "aipersonality",
		Short:             "Inspect and manage AI assistant personalities",
		Long:              "Loads personality packages (a folder holding config.yaml and an optional assets/logo.png) and prints, expands or saves them.",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&logoMode, "logo-mode", "", "Where to look for assets/logo.png: working-dir or package-dir")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: text, yaml, json or toml")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	showCmd := &cobra.Command{
		Use:   "show [personality-dir]",
		Short: "Load a personality and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	keysCmd := &cobra.Command{
		Use:   "keys [personality-dir]",
		Short: "Print the top-level keys of a personality config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runKeys,
	}
	keysCmd.Flags().BoolVar(&showValues, "values", false, "Print the raw values as yaml")

	conditioningCmd := &cobra.Command{
		Use:   "conditioning [personality-dir]",
		Short: "Print the conditioning text with placeholders expanded",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConditioning,
	}

	saveCmd := &cobra.Command{
		Use:   "save <target-dir>",
		Short: "Write a personality package (defaults unless --from is given)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSave,
	}
	saveCmd.Flags().StringVar(&fromPath, "from", "", "Personality folder to copy from")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the personalities installed in the personalities home",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}

	rootCmd.AddCommand(showCmd, keysCmd, conditioningCmd, saveCmd, listCmd, configCmd, newCompletionCmd())

	viper.AutomaticEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	cfgManager = config.NewManager(config.New()).WithEnvironment()

	if logoMode != "" {
		cfgManager.Config.LogoMode = logoMode
	}
	if outputFlag != "" {
		cfgManager.Config.Output = outputFlag
	}
	if debugMode || viper.GetBool("AIPERSONALITY_DEBUG") {
		cfgManager.Config.LogLevel = "debug"
	}

	if err := internal.SetLogLevel(cfgManager.Config.LogLevel); err != nil {
		return err
	}

	mode, err := personality.ParseLogoMode(cfgManager.Config.LogoMode)
	if err != nil {
		return err
	}

	personaLoad = personality.New(
		personality.WithLogoMode(mode),
		personality.WithLogger(zap.L()),
	)

	zap.L().Debug("configuration loaded",
		zap.String("logo_mode", string(mode)),
		zap.String("personality_path", cfgManager.Config.PersonalityPath),
	)

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	p, err := personaLoad.LoadPackage(resolveDir(args))
	if err != nil {
		return err
	}

	out, err := utils.Render(p, cfgManager.Config.Output)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func runKeys(cmd *cobra.Command, args []string) error {
	_, raw, err := personaLoad.LoadPackageRaw(resolveDir(args))
	if err != nil {
		return err
	}

	if showValues {
		data, err := yaml.Marshal(raw)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	unknown := make(map[string]bool)
	for _, k := range utils.UnknownKeys(raw) {
		unknown[k] = true
	}

	for _, k := range utils.SortedKeys(raw) {
		if unknown[k] {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (unknown)\n", k)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), k)
	}

	return nil
}

func runConditioning(cmd *cobra.Command, args []string) error {
	p, err := personaLoad.LoadPackage(resolveDir(args))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), personality.Conditioning(p, time.Now()))
	return nil
}

func runSave(cmd *cobra.Command, args []string) error {
	target := args[0]

	p, err := personaLoad.LoadPackage(fromPath)
	if err != nil {
		return err
	}

	if err := personality.NewSaver(fsio.NewOS()).Save(target, p); err != nil {
		return err
	}

	zap.L().Info("personality saved", zap.String("path", filepath.Join(target, personality.ConfigFileName)))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	names, err := cfgManager.ListPersonalities()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			home, _ := internal.GetPersonalitiesHome()
			return fmt.Errorf("no personalities installed in %s", home)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	out, err := cfgManager.ShowConfig()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// resolveDir returns the personality folder named on the command line, the
// configured default, or an installed personality of that name.
func resolveDir(args []string) string {
	if len(args) == 0 {
		return cfgManager.Config.PersonalityPath
	}

	dir := args[0]
	if _, err := os.Stat(dir); err == nil || filepath.IsAbs(dir) || strings.ContainsRune(dir, filepath.Separator) {
		return dir
	}

	if home, err := internal.GetPersonalitiesHome(); err == nil {
		candidate := filepath.Join(home, dir)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return dir
}
