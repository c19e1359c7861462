// Command mpseg is a thin CLI harness around the mpseg segmenter
// and keyword extractor. It is explicitly a collaborator, not part
// of the segmentation core: it only wires file I/O, flag parsing,
// and exit codes around the library packages.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ericlingit/mpseg"
	"github.com/ericlingit/mpseg/keyword"
)

// Exit codes per the programmatic surface: 0 success, 1
// initialization failure, 2 runtime cut failure.
const (
	exitOK      = 0
	exitInit    = 1
	exitRuntime = 2
)

var (
	dictPath string
	idfPath  string
	stopPath string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitRuntime)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mpseg",
		Short:         "Maximum-probability Chinese word segmenter",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&dictPath, "dict", "testdata/dict_small.txt", "path to the frequency dictionary")
	root.AddCommand(newCutCmd())
	root.AddCommand(newKeywordsCmd())
	return root
}

func newCutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cut [text]",
		Short: "Segment the given text, or stdin if no argument is given",
		RunE: func(_ *cobra.Command, args []string) error {
			seg, err := mpseg.New(dictPath)
			if err != nil {
				log.Error("initialization failed", "err", err)
				os.Exit(exitInit)
			}
			return forEachLine(args, func(line string) error {
				tokens, err := seg.Cut(line)
				if err != nil {
					return err
				}
				fmt.Println(joinSlash(tokens))
				return nil
			})
		},
	}
}

func newKeywordsCmd() *cobra.Command {
	var topN int
	cmd := &cobra.Command{
		Use:   "keywords [text]",
		Short: "Extract TF-IDF keywords from the given text, or stdin if no argument is given",
		RunE: func(_ *cobra.Command, args []string) error {
			seg, err := mpseg.New(dictPath)
			if err != nil {
				log.Error("initialization failed", "err", err)
				os.Exit(exitInit)
			}
			ex, err := keyword.New(seg, idfPath, stopPath)
			if err != nil {
				log.Error("initialization failed", "err", err)
				os.Exit(exitInit)
			}
			return forEachLine(args, func(line string) error {
				pairs, err := ex.Extract(line, topN)
				if err != nil {
					return err
				}
				for _, p := range pairs {
					fmt.Printf("%s\t%.4f\n", p.Word, p.Score)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&idfPath, "idf", "testdata/idf_small.txt", "path to the IDF table")
	cmd.Flags().StringVar(&stopPath, "stopwords", "testdata/stopwords_small.txt", "path to the stop-word list")
	cmd.Flags().IntVar(&topN, "top", 5, "number of keywords to return")
	return cmd
}

// forEachLine runs fn over args[0] if given, else over every line
// of stdin. A runtime failure from fn exits with exitRuntime.
func forEachLine(args []string, fn func(string) error) error {
	if len(args) > 0 {
		if err := fn(args[0]); err != nil {
			log.Error("cut failed", "err", err)
			os.Exit(exitRuntime)
		}
		return nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			log.Error("cut failed", "err", err)
			os.Exit(exitRuntime)
		}
	}
	return scanner.Err()
}

func joinSlash(tokens []string) string {
	out := ""
	for i, t := range tokens {
		if i > 0 {
			out += "/"
		}
		out += t
	}
	return out
}
