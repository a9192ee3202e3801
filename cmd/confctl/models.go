package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/eugenenazirov/confkit/config"
	"github.com/eugenenazirov/confkit/llm"
)

func runModels(out io.Writer, opts config.Options, tag, provider string) error {
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}
	if cfg.Filepath() == "" {
		return fmt.Errorf("no configuration file found")
	}

	registry, err := llm.New(cfg)
	if err != nil {
		return err
	}

	summaries := filterSummaries(registry.List(), tag, provider)
	if len(summaries) == 0 {
		fmt.Fprintln(out, "no models matched")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPROVIDER\tMODEL\tTAGS\tDESCRIPTION")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.FullName, s.Provider, s.ID, strings.Join(s.Tags, ","), s.Description)
	}
	return w.Flush()
}

func filterSummaries(summaries []llm.Summary, tag, provider string) []llm.Summary {
	if tag == "" && provider == "" {
		return summaries
	}

	var out []llm.Summary
	for _, s := range summaries {
		if provider != "" && s.Provider != provider {
			continue
		}
		if tag != "" && !hasTag(s.Tags, tag) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
