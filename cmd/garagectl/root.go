package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/bootstrap"
	"github.com/spec-kit/garage-assistant/internal/config"
	"github.com/spec-kit/garage-assistant/internal/domain"
	"github.com/spec-kit/garage-assistant/internal/repository"
)

type cliOptions struct {
	pipeline bootstrap.Options

	knowledge string
	verbose   bool
}

func defaultOptions() *cliOptions {
	return &cliOptions{}
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "garagectl",
		Short: "Query the garage assistant responders from the command line",
		Long: `garagectl routes a question through the same responders, summarizer and
knowledge store as the HTTP API. Configuration is read from the environment
and an optional .env file.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.knowledge, "knowledge", "", "YAML knowledge file (overrides KNOWLEDGE_STORE_PATH)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline activity to stderr")

	root.AddCommand(
		newAskCmd(opts),
		newAgentsCmd(),
		newExportCmd(opts),
	)
	return root
}

func newAskCmd(opts *cliOptions) *cobra.Command {
	var showAll bool
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Route a message through the responders and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			pipeline, err := bootstrap.Build(cfg, logger, opts.pipeline)
			if err != nil {
				return err
			}
			defer pipeline.Close()

			result, err := pipeline.Chat.Process(cmd.Context(), "", strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Response)
			names := make([]string, len(result.Contributors))
			for i, name := range result.Contributors {
				names[i] = string(name)
			}
			fmt.Fprintf(out, "\n[agents: %s | %.2fs]\n", strings.Join(names, ", "), result.Duration.Seconds())

			if showAll && len(result.Contributors) > 1 {
				for _, name := range result.Contributors {
					fmt.Fprintf(out, "\n--- %s ---\n%s\n", name, result.Responses[name])
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showAll, "all", false, "also print each responder's raw output")
	return cmd
}

func newAgentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List the available responders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKEY\tDESCRIPTION")
			for _, a := range domain.Agents {
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.Label, a.Name, a.Description)
			}
			return w.Flush()
		},
	}
}

func newExportCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export-knowledge",
		Short: "Print the active knowledge store as YAML",
		Long: `Print the knowledge store in the layout KNOWLEDGE_STORE_PATH accepts.
With no file configured this is the built-in reference data, which makes a
good starting point for a custom store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			store, err := repository.NewStore(cfg.Knowledge.Path)
			if err != nil {
				return err
			}
			data, err := repository.ExportStore(store)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func loadConfig(opts *cliOptions) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.knowledge != "" {
		cfg.Knowledge.Path = opts.knowledge
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
