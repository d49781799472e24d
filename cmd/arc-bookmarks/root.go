package main

import (
	"fmt"
	"os"

	"github.com/dastanaron/arc-bookmarks/internal/commands"
	"github.com/dastanaron/arc-bookmarks/internal/config"
	"github.com/dastanaron/arc-bookmarks/internal/sidebar"

	"github.com/spf13/cobra"
)

var (
	inputPath    string
	outputDir    string
	outputPrefix string
	policyName   string
	escapeHTML   bool
	maxDepth     int
	verify       bool
	dbPath       string
)

var rootCmd = &cobra.Command{
	Use:           "arc-bookmarks",
	Short:         "Convert an Arc sidebar export into a Netscape bookmark file",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Write <prefix>_<YYYY_MM_DD>.html from StorableSidebar.json",
	Args:  cobra.NoArgs,
	RunE:  runConvert,
}

var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "List pinned and unpinned spaces with their container ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return commands.NewSpacesCommand(cfg, cmd.OutOrStdout()).Execute()
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the converted bookmarks in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return commands.NewPreviewCommand(cfg).Execute()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&inputPath, "input", "i", config.DefaultInputPath, "Path to the sidebar JSON export")
	pf.StringVarP(&outputDir, "output-dir", "o", ".", "Directory to write the HTML file to")
	pf.StringVar(&outputPrefix, "prefix", config.DefaultOutputPrefix, "Output file name prefix")
	pf.StringVar(&policyName, "policy", string(sidebar.PolicyLargest),
		fmt.Sprintf("Container selection: %s or %s", sidebar.PolicyLargest, sidebar.PolicyFirstMatch))
	pf.BoolVar(&escapeHTML, "escape", false, "HTML-escape titles and URLs")
	pf.IntVar(&maxDepth, "max-depth", 0, "Maximum folder depth below a space (0 = unlimited)")

	for _, c := range []*cobra.Command{rootCmd, convertCmd} {
		c.Flags().BoolVar(&verify, "verify", false, "Read the rendered HTML back and check the bookmark count")
		c.Flags().StringVar(&dbPath, "db", "", "Also load the bookmarks into this SQLite database")
	}

	rootCmd.AddCommand(convertCmd, spacesCmd, previewCmd)
}

func loadConfig() (*config.Config, error) {
	policy, err := sidebar.ParsePolicy(policyName)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("--max-depth must not be negative")
	}

	cfg := config.NewConfig().
		WithInputPath(inputPath).
		WithOutputDir(outputDir).
		WithOutputPrefix(outputPrefix).
		WithPolicy(policy).
		WithEscape(escapeHTML).
		WithMaxDepth(maxDepth).
		WithVerify(verify).
		WithDBPath(dbPath)
	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, err = commands.NewConvertCommand(cfg, cmd.OutOrStdout()).Execute()
	return err
}
