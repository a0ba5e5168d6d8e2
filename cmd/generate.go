package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/runn3rman/runn3rman.github.io/internal/generator"
)

// generateCmd builds a single project page. Argument and folder checks print
// a message and return cleanly rather than erroring, matching how the tool
// has always behaved in build scripts.
var generateCmd = &cobra.Command{
	Use:   "generate <project_name> <project_folder>",
	Short: "Generates a project page from an analysis output folder",
	Long: `The generate command scans <project_folder> for visualization images and an
interactive dashboard, resolves the project's metadata, and writes the filled
page template to the configured output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			fmt.Println("Usage: portfolio generate <project_name> <project_folder>")
			fmt.Println(`Example: portfolio generate "Water Conservation Analysis" water-conservation-analysis`)
			return nil
		}
		projectName, projectFolder := args[0], args[1]

		if _, err := os.Stat(projectFolder); os.IsNotExist(err) {
			fmt.Printf("Project folder '%s' not found\n", projectFolder)
			return nil
		}

		gen := generator.New(appConfig, logger)
		outputPath, err := gen.Generate(projectName, projectFolder)
		if err != nil {
			return err
		}

		fmt.Printf("Project page generated: %s\n", outputPath)
		fmt.Printf("View at: http://localhost:8000/%s\n", filepath.ToSlash(outputPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
