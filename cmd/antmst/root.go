package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/antmst/config"
	"github.com/katalvlaran/antmst/core"
)

var errMissingGraph = errors.New("antmst: no graph description given (--graph or graph.path)")

// flagKeys maps command-line flags onto configuration keys. Only flags the
// user actually set are applied as overrides.
var flagKeys = map[string]string{
	"graph":          "graph.path",
	"alpha":          "aco.alpha",
	"beta":           "aco.beta",
	"rho":            "aco.rho",
	"iterations":     "aco.max_iterations",
	"seed":           "aco.seed",
	"runs":           "aco.runs",
	"mst-seed":       "mst.seed",
	"mst-iterations": "mst.max_iterations",
	"metrics-file":   "metrics.file",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// app carries state shared by all subcommands once PersistentPreRunE ran.
type app struct {
	ctx        context.Context
	configPath string
	cfg        *config.Config
	log        *logrus.Logger
}

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	a := &app{ctx: ctx}

	root := &cobra.Command{
		Use:           "antmst",
		Short:         "Approximate a minimum spanning tree with a single-ant colony",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML or JSON config file")
	root.PersistentFlags().String("log-level", "info", "log level: trace|debug|info|warn|error")
	root.PersistentFlags().String("log-format", "text", "log format: text|json")

	root.AddCommand(
		newRunCmd(a),
		newMSTCmd(a),
		newInspectCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup loads the configuration and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	loader := config.NewLoader()
	cfg, err := loader.Load(a.configPath, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(level)
	if cfg.Log.Format == "json" {
		a.log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		a.log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	a.log.WithFields(logrus.Fields{
		"path":   a.configPath,
		"config": loader.Print(),
	}).Debug("config loaded")

	return nil
}

// loadGraph reads the configured graph description.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.cfg.Graph.Path == "" {
		return nil, errMissingGraph
	}
	g, err := core.Load(a.cfg.Graph.Path)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"path":  a.cfg.Graph.Path,
		"nodes": g.NumNodes(),
		"edges": g.NumEdges(),
	}).Debug("graph loaded")

	return g, nil
}

func addGraphFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("graph", "g", "", "graph description file (YAML or JSON)")
}

func printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
