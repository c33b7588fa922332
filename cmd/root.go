package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "cppgen",
	Short: "A structural C++ header parser and code generator",
	Long: `cppgen parses a curly-brace subset of C++ header declarations --
namespaces, enums, classes, members and methods -- and drives a set of
generators and line rewriters off the result: enum to_string/operator<<
generation, a JSON class/enum catalog, and a getter/setter and
serialization line-rewriting pipeline.`,
	Version: getVersionString(),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cppgen %s\n", getVersionString())
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Date:    %s\n", date)
	},
}

func getVersionString() string {
	if version == "dev" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return version
}

// SetVersionInfo lets main inject build-time version metadata.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = getVersionString()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to .cppgen.yaml (defaults to ./.cppgen.yaml if present)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(versionCmd)
}
