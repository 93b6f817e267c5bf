// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stencil/pkg/pipeline"
	"github.com/mesh-intelligence/stencil/pkg/policy"
	"github.com/mesh-intelligence/stencil/pkg/stacks"
)

// manifestFile is where the render manifest lands in the output
// directory. It is excluded from existing-file seeding so a previous
// run's manifest never looks like project content.
const manifestFile = "stencil.manifest.json"

var (
	configPath string
	outDir     string
	dryRun     bool
	watch      bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the project scaffold and write its manifest",
	Long: `Render loads the project configuration, resolves the effective policy,
runs the generation pipeline, and writes the produced files plus
stencil.manifest.json into the output directory.

With --dry-run the manifest is printed to stdout and nothing is written.
With --watch the render re-runs whenever the config file changes.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&configPath, "config", "stencil.yaml", "project configuration file")
	renderCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	renderCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the manifest without writing files")
	renderCmd.Flags().BoolVar(&watch, "watch", false, "re-render when the config file changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is unactionable
	log = log.With(zap.String("run_id", uuid.New().String()))

	if err := renderOnce(log, cmd); err != nil {
		if !watch {
			return err
		}
		log.Error("render failed", zap.Error(err))
	}
	if !watch {
		return nil
	}
	return watchConfig(log, cmd)
}

// renderOnce executes one full load-resolve-render-write cycle.
func renderOnce(log *zap.Logger, cmd *cobra.Command) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	pol, err := policy.Resolve(cfg)
	if err != nil {
		return err
	}
	log.Info("rendering",
		zap.String("project_type", cfg.ProjectType),
		zap.String("preset", cfg.StrictnessPreset),
		zap.Strings("providers", cfg.Providers),
	)

	reg := pipeline.NewRegistry()
	stacks.Register(reg)

	existing, err := scanExisting(outDir)
	if err != nil {
		return err
	}

	result, err := pipeline.NewRenderer(reg).Render(cfg, pol, existing)
	if err != nil {
		return err
	}

	manifest, err := json.MarshalIndent(result.Manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	manifest = append(manifest, '\n')

	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%s", manifest)
		return nil
	}

	for _, f := range result.Files {
		target := filepath.Join(outDir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, f.Content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
	}
	if err := os.WriteFile(filepath.Join(outDir, manifestFile), manifest, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	log.Info("render complete",
		zap.Int("files", len(result.Files)),
		zap.String("config_hash", result.Manifest.ConfigHash),
	)
	return nil
}

// scanExisting reads the output directory into a path -> content map for
// context seeding. Paths are slash-separated and relative to dir. The
// manifest and VCS metadata are skipped.
func scanExisting(dir string) (map[string][]byte, error) {
	existing := make(map[string][]byte)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == manifestFile {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		existing[rel] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return existing, nil
}

// watchConfig re-renders on every write to the config file until the
// command's context is cancelled. The parent directory is watched
// because editors typically replace the file rather than write in place.
func watchConfig(log *zap.Logger, cmd *cobra.Command) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	log.Info("watching for config changes", zap.String("config", configPath))

	target := filepath.Clean(configPath)
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Info("config changed, re-rendering")
			if err := renderOnce(log, cmd); err != nil {
				log.Error("render failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", zap.Error(err))
		}
	}
}
