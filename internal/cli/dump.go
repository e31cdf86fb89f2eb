package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mint-labs/mint/internal/pkgmanifest"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	dumpFormat         string
	dumpFromFile       string
	dumpRequireTools   string
	dumpExecutableOnly bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump [dir]",
	Short: "Print the products and targets of a package",
	Long: `Run the package dump command in dir (default: the current directory) and
print the decoded package. Use --from-file to read saved dump output instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "table", "Output format (table, json, yaml)")
	dumpCmd.Flags().StringVar(&dumpFromFile, "from-file", "", "Read dump output from a file instead of running the toolchain")
	dumpCmd.Flags().StringVar(&dumpRequireTools, "require-tools-version", "", "Fail unless the package tools version satisfies this constraint (e.g. \">= 5.3\")")
	dumpCmd.Flags().BoolVar(&dumpExecutableOnly, "executables", false, "Only list executable products")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	pkg, err := loadPackage(cmd, packageDir(args), dumpFromFile)
	if err != nil {
		return err
	}

	if dumpRequireTools != "" {
		if err := pkg.RequireToolsVersion(dumpRequireTools); err != nil {
			return err
		}
	}

	for _, name := range pkg.MissingTargets() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: a product references target %q, which %s does not define\n", name, pkg.Name)
	}

	view := *pkg
	if dumpExecutableOnly {
		view.Products = pkg.ExecutableProducts()
	}

	switch dumpFormat {
	case "table":
		return printPackageTable(cmd.OutOrStdout(), &view)
	case "json":
		return printPackageJSON(cmd.OutOrStdout(), &view)
	case "yaml":
		return printPackageYAML(cmd.OutOrStdout(), &view)
	default:
		return fmt.Errorf("unknown format %q: use table, json or yaml", dumpFormat)
	}
}

// loadPackage runs the toolchain in dir, or parses saved output when
// fromFile is set.
func loadPackage(cmd *cobra.Command, dir, fromFile string) (*pkgmanifest.Package, error) {
	if fromFile == "" {
		return newLoader().Load(cmd.Context(), dir)
	}
	data, err := os.ReadFile(fromFile)
	if err != nil {
		return nil, fmt.Errorf("reading dump file %s: %w", fromFile, err)
	}
	return pkgmanifest.Parse(string(data))
}

func printPackageTable(out io.Writer, pkg *pkgmanifest.Package) error {
	header := "Package: " + pkg.Name
	if pkg.ToolsVersion != "" {
		header += " (tools " + pkg.ToolsVersion + ")"
	}
	fmt.Fprintln(out, header)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tKIND\tTARGETS")
	for _, p := range pkg.Products {
		kind := pkgmanifest.KindLibrary
		if p.IsExecutable {
			kind = pkgmanifest.KindExecutable
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, kind, joinOrDash(p.TargetNames))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TARGET\tRESOURCES\tDEPENDENCIES")
	for _, t := range pkg.Targets {
		var deps []string
		for _, d := range t.Dependencies {
			deps = append(deps, d.ByName...)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", t.Name, len(t.Resources), joinOrDash(deps))
	}
	return w.Flush()
}

func printPackageJSON(out io.Writer, pkg *pkgmanifest.Package) error {
	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling package: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func printPackageYAML(out io.Writer, pkg *pkgmanifest.Package) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(pkg); err != nil {
		return fmt.Errorf("marshaling package: %w", err)
	}
	return enc.Close()
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
