package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"paraphrase/internal/domain"
	"paraphrase/internal/report"
	"paraphrase/internal/tui"
)

func newRootCmd() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:           "paraphrase",
		Short:         "Find shared concepts and paraphrase English sentences with WordNet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/paraphrase/config.yaml if not provided)")

	rootCmd.AddCommand(newRunCmd(&cfgPath))
	rootCmd.AddCommand(newSynonymsCmd(&cfgPath))
	rootCmd.AddCommand(newTUICmd(&cfgPath))
	return rootCmd
}

func newRunCmd(cfgPath *string) *cobra.Command {
	var (
		text   string
		seed   int64
		senses bool
	)
	cmd := &cobra.Command{
		Use:   "run [file...]",
		Short: "Paraphrase files, --text, or the sample passage",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				a.cfg.Substituter.Seed = seed
			}
			if senses {
				a.cfg.Output.ShowSenses = true
			}
			svc, err := a.service()
			if err != nil {
				return err
			}

			var reports []domain.Report
			switch {
			case len(args) > 0:
				reports, err = svc.ProcessFiles(args)
			case strings.TrimSpace(text) != "":
				reports, err = svc.Process(text)
			default:
				reports, err = svc.Process(samplePassage)
			}
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), reports, a.cfg.Output.ShowSenses)
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Passage to paraphrase instead of files")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for synonym choice (0 seeds from the clock)")
	cmd.Flags().BoolVar(&senses, "senses", false, "Print the sense chosen for each recognized word")
	return cmd
}

func newSynonymsCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "synonyms <word>...",
		Short: "List every lemma of every sense of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			for _, w := range args {
				if err := report.WriteSynonyms(cmd.OutOrStdout(), w, a.lex.Lemmas(w)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newTUICmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Paraphrase passages interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			intro := "Lexicon: " + a.cfg.Lexicon.Type + "  up/down browse sentences, esc quits"
			_, err = tea.NewProgram(tui.New(svc, intro)).Run()
			return err
		},
	}
}
