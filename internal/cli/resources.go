package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resourcesFromFile string

var resourcesCmd = &cobra.Command{
	Use:   "resources <product> [dir]",
	Short: "List the resources an executable product needs",
	Long: `Print the resource paths of the product's targets and of every local target
they depend on, one per line. These are the files that must be installed
next to the executable.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runResources,
}

func init() {
	resourcesCmd.Flags().StringVar(&resourcesFromFile, "from-file", "", "Read dump output from a file instead of running the toolchain")
	rootCmd.AddCommand(resourcesCmd)
}

func runResources(cmd *cobra.Command, args []string) error {
	name := args[0]
	pkg, err := loadPackage(cmd, packageDir(args[1:]), resourcesFromFile)
	if err != nil {
		return err
	}

	for _, p := range pkg.Products {
		if p.Name != name {
			continue
		}
		if !p.IsExecutable {
			return fmt.Errorf("product %q in %s is not executable", name, pkg.Name)
		}
		for _, path := range pkg.ResourcePaths(p) {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	}
	return fmt.Errorf("package %s has no product named %q", pkg.Name, name)
}
