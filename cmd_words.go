package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/euclio/robco-term/internal/random"
	"github.com/euclio/robco-term/internal/words"
)

func newWordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage password dictionaries",
	}

	importCmd := &cobra.Command{
		Use:   "import <word-file>",
		Short: "Load a one-word-per-line file into a dictionary database",
		Long: `Reads a plain word list such as /usr/share/dict/words and stores every
lowercase alphabetic entry in a SQLite dictionary. Importing twice is safe;
existing words are skipped.

Play with it using --dictionary sqlite:<path>.`,
		Args: cobra.ExactArgs(1),
		RunE: a.importWords,
	}
	importCmd.Flags().StringVar(&a.dbPath, "db", "words.db", "dictionary database to create or extend")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Count dictionary words per length",
		Args:  cobra.NoArgs,
		RunE:  a.wordStats,
	}

	cmd.AddCommand(importCmd, statsCmd)
	return cmd
}

func (a *app) importWords(cmd *cobra.Command, args []string) error {
	list, err := words.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	db, err := words.OpenSQLite(a.dbPath, random.New(0))
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.Import(cmd.Context(), list)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d new words (%d read) into %s\n", n, len(list), a.dbPath)
	return nil
}

func (a *app) wordStats(cmd *cobra.Command, args []string) error {
	counts, err := dictionaryStats(cmd, a.cfg.Dictionary)
	if err != nil {
		return err
	}

	lengths := make([]int, 0, len(counts))
	total := 0
	for n, c := range counts {
		lengths = append(lengths, n)
		total += c
	}
	sort.Ints(lengths)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %s\n", "LENGTH", "WORDS")
	for _, n := range lengths {
		fmt.Fprintf(out, "%-8d %d\n", n, counts[n])
	}
	fmt.Fprintf(out, "%-8s %d\n", "total", total)
	return nil
}

// dictionaryStats counts words per length for any dictionary spec.
func dictionaryStats(cmd *cobra.Command, spec string) (map[int]int, error) {
	rng := random.New(0)
	kind, path := words.ParseSpec(spec)
	switch kind {
	case "sqlite":
		db, err := words.OpenSQLite(path, rng)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return db.Stats(cmd.Context())
	case "file":
		l, err := words.FromFile(path, rng)
		if err != nil {
			return nil, err
		}
		return l.Stats(), nil
	}
	l, err := words.Embedded(rng)
	if err != nil {
		return nil, err
	}
	return l.Stats(), nil
}
