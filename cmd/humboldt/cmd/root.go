package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mCW/pkg/core/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "humboldt",
	Short: "meinCAMPUSWERK - Studierenden- und Kursverwaltung",
	Long: `meinCAMPUSWERK ist eine leichtgewichtige, lokal installierbare
Studierenden- und Kursverwaltung für den Einzelarbeitsplatz.

Bereiche:
  student     - Studierende verwalten
  instructor  - Dozenten verwalten
  course      - Kurse verwalten
  enroll      - Einschreibungen anlegen
  grade       - Noten vergeben
  catalog     - Katalogdateien laden und exportieren
  import      - Teilnehmerlisten aus XLSX importieren
  tui         - Interaktive Oberfläche`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/humboldt.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// loadConfig resolves the configuration from the --config flag, the
// MCW_CONFIG environment variable or the built-in defaults.
func loadConfig() *config.Config {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			printError("Konfiguration konnte nicht geladen werden", err)
			return config.Default()
		}
		return cfg
	}

	if cfg, err := config.LoadFromEnv(); err == nil {
		return cfg
	}
	return config.Default()
}
