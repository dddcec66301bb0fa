package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iksnae/power-annotate/internal"
	"github.com/iksnae/power-annotate/internal/store"
)

var (
	cfgFile string
	verbose bool
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "power-annotate",
	Short: "Label conversational power in scripted dialogues",
	Long: `A CLI tool for annotating which participant holds conversational power
in short scripted dialogues, and which power-source tags explain it.

Cases are read from a line-delimited JSON source. Each annotation is
stored as one record per (annotator, case) pair: saving the same case
again replaces the previous judgment, never duplicates it.

Features:
  • List cases with annotation status per annotator
  • Show full case transcripts with metadata
  • Record winner and power-source tags for a case
  • Guided tutorial walkthrough with suggested labels
  • Export annotations (JSONL, CSV, JSON, YAML, Markdown)
  • File-backed or SQLite-backed annotation storage

Quick Start:
  power-annotate list                               # List all cases
  power-annotate show <case-id>                     # View a case
  power-annotate annotate --case <id> --winner Amy --tags ROLE
  power-annotate export --format csv                # Export annotations`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError(err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $HOME/.power-annotate/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("data", "", "Case source file (line-delimited JSON)")
	rootCmd.PersistentFlags().String("tutorial", "", "Tutorial file (JSON array of steps)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Annotation store target (directory, .db file, or sqlite:<path>)")
	rootCmd.PersistentFlags().StringP("annotator", "a", "", "Annotator name (default: current OS user)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Bypass the parsed-case cache")
	rootCmd.PersistentFlags().Bool("clear-cache", false, "Clear the parsed-case cache before loading")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("tutorial", rootCmd.PersistentFlags().Lookup("tutorial"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("annotator", rootCmd.PersistentFlags().Lookup("annotator"))
	_ = viper.BindPFlag("no-cache", rootCmd.PersistentFlags().Lookup("no-cache"))
	_ = viper.BindPFlag("clear-cache", rootCmd.PersistentFlags().Lookup("clear-cache"))

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".power-annotate"))
			viper.SetConfigType("yaml")
			viper.SetConfigName("config")
		}
	}

	// Read in environment variables that match POWER_ANNOTATE_*
	viper.SetEnvPrefix("POWER_ANNOTATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("data", filepath.Join("data", "cases.jsonl"))
	viper.SetDefault("tutorial", filepath.Join("data", "tutorial.json"))
	viper.SetDefault("output", "annotations")

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		internal.LogDebug("using config file: %s", viper.ConfigFileUsed())
	}
}

// loadCases loads the case set from the configured source, going through
// the parsed-case cache unless it is disabled or stale
func loadCases() ([]*internal.Case, error) {
	path := viper.GetString("data")
	useCache := !viper.GetBool("no-cache")

	cache := internal.NewCacheManager(cacheDir())
	if viper.GetBool("clear-cache") {
		if err := cache.Clear(); err != nil {
			internal.LogWarn("failed to clear case cache: %v", err)
		}
	}
	if useCache && cache.IsCacheValid(path) {
		cases, err := cache.LoadCachedCases()
		if err == nil {
			internal.LogDebug("loaded %d cases from cache", len(cases))
			return cases, nil
		}
		internal.LogWarn("case cache unreadable, reloading source: %v", err)
	}

	cases, err := internal.LoadCases(path)
	if err != nil {
		return nil, err
	}
	if useCache {
		if err := cache.SaveCases(path, cases); err != nil {
			internal.LogWarn("failed to cache cases: %v", err)
		}
	}
	return cases, nil
}

// cacheDir returns the parsed-case cache directory
func cacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".power-annotate-cache"
	}
	return filepath.Join(home, ".power-annotate", "cache")
}

// openStore opens the configured annotation store
func openStore() (store.Store, error) {
	return store.Open(viper.GetString("output"))
}

// resolveAnnotator returns the annotator name, defaulting to the OS user
func resolveAnnotator() string {
	name := viper.GetString("annotator")
	if name == "" {
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
	}
	if name == "" {
		name = "anonymous"
	}
	return name
}

// findCase looks a case up by id
func findCase(cases []*internal.Case, id string) *internal.Case {
	for _, c := range cases {
		if c.ID == id {
			return c
		}
	}
	return nil
}
