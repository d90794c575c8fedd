// Command samplepdf writes a one-page PDF from lines of text, for trying
// pdfvalidate by hand.
//
//	samplepdf -o invoice.pdf "Acme Corporation Invoice" "March 3, 2024"
package main

import (
	"bufio"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pdfvalidate/internal/samplepdf"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		outPath  string
		fontSize float64
		fromIn   bool
	)
	flag.StringVar(&outPath, "o", "sample.pdf", "Output PDF path")
	flag.Float64Var(&fontSize, "font.size", 11, "Body font size in points")
	flag.BoolVar(&fromIn, "stdin", false, "Read lines from standard input instead of arguments")
	flag.Parse()

	lines := flag.Args()
	if fromIn {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Fatal().Err(err).Msg("read stdin")
		}
	}

	if err := samplepdf.Write(outPath, lines, samplepdf.Options{FontSize: fontSize}); err != nil {
		log.Fatal().Err(err).Msg("write pdf")
	}
	log.Info().Str("out", outPath).Int("lines", len(lines)).Msg("wrote sample pdf")
}
