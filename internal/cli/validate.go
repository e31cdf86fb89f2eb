package cli

import (
	"fmt"
	"os"

	"github.com/mint-labs/mint/internal/pkgmanifest"
	"github.com/spf13/cobra"
)

var validateFromFile string

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check a package dump against the known schemas",
	Long: `Run the package dump command in dir and report every place where its output
differs from the dump shapes this tool understands. Useful when a new
toolchain release changes the format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFromFile, "from-file", "", "Read dump output from a file instead of running the toolchain")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	payload, err := dumpPayload(cmd, packageDir(args))
	if err != nil {
		return err
	}

	result, err := pkgmanifest.Validate([]byte(payload))
	if err != nil {
		return fmt.Errorf("validating package dump: %w", err)
	}

	out := cmd.OutOrStdout()
	if !result.Valid {
		for _, issue := range result.Issues {
			path := issue.Path
			if path == "" {
				path = "/"
			}
			fmt.Fprintf(out, "%s: %s (%s)\n", path, issue.Message, issue.Keyword)
		}
		return fmt.Errorf("package dump has %d schema issue(s)", len(result.Issues))
	}

	pkg, err := pkgmanifest.Decode(payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d product(s), %d target(s), dump format OK\n", pkg.Name, len(pkg.Products), len(pkg.Targets))
	return nil
}

func dumpPayload(cmd *cobra.Command, dir string) (string, error) {
	if validateFromFile == "" {
		return newLoader().Payload(cmd.Context(), dir)
	}
	data, err := os.ReadFile(validateFromFile)
	if err != nil {
		return "", fmt.Errorf("reading dump file %s: %w", validateFromFile, err)
	}
	return pkgmanifest.ExtractPayload(string(data))
}
