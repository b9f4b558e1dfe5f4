package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ecortina/srcmeta/internal/config"
	"github.com/ecortina/srcmeta/internal/store"
)

var (
	analyzeDir      bool
	analyzeLanguage string
	analyzeOut      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Extract functions and classes from source code",
	Long: `Analyze parses a source file and prints its functions and classes as
JSON. With --dir it walks a directory tree instead, analyzing every file
matched by the configured include patterns and merging the results into a
JSON store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if analyzeDir {
			return runAnalyzeDir(cmd, cfg, args[0])
		}
		return runAnalyzeFile(cmd, cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeDir, "dir", false, "treat the path as a directory tree")
	analyzeCmd.Flags().StringVar(&analyzeLanguage, "language", "python", "source language of the file")
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "", "store file for --dir results (default <path>/.srcmeta/analysis.json)")
}

func runAnalyzeFile(cmd *cobra.Command, cfg *config.Config, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	result, err := newAnalyzer(cfg).AnalyzeLanguage(string(source), analyzeLanguage)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func runAnalyzeDir(cmd *cobra.Command, cfg *config.Config, root string) error {
	include, err := compilePatterns(cfg.Paths.Include)
	if err != nil {
		return err
	}
	ignore, err := compilePatterns(cfg.Paths.Ignore)
	if err != nil {
		return err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			// "venv" should be skipped by a "**/venv/**" pattern.
			if rel != "." && (matchAny(ignore, rel) || matchAny(ignore, rel+"/**")) {
				return filepath.SkipDir
			}
			return nil
		}
		if matchAny(ignore, rel) {
			return nil
		}
		if matchAny(include, rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}

	a := newAnalyzer(cfg)
	doc := store.Document{}
	bar := progressbar.Default(int64(len(files)), "analyzing")
	for _, rel := range files {
		source, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rel, err)
		}
		result, err := a.AnalyzeFunctions(string(source), rel)
		if err != nil {
			return fmt.Errorf("failed to analyze %s: %w", rel, err)
		}
		partial, err := store.DocumentFrom(result)
		if err != nil {
			return err
		}
		for key, records := range partial {
			doc[key] = records
		}
		bar.Add(1)
	}

	out := storePath(root)
	if err := mergeInto(out, doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "analyzed %d files into %s\n", len(files), out)
	return nil
}

func storePath(root string) string {
	if analyzeOut != "" {
		return analyzeOut
	}
	return filepath.Join(root, ".srcmeta", "analysis.json")
}

func mergeInto(path string, doc store.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return store.Merge(path, doc)
}
