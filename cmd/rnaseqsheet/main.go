// rnaseqsheet builds an nf-core/rnaseq input samplesheet from a sequencing
// run manifest. Each experiment becomes one nf-core sample, named by its
// descriptor ("<experiment><separator><title>"). With -expind, it instead
// reads descriptors on stdin and prints the experiment index of each.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"

	_ "github.com/carbocation/seqproj/compileinfoprint"

	"github.com/carbocation/seqproj"
	"github.com/carbocation/seqproj/manifest"
	"github.com/carbocation/seqproj/nfcore/rnaseq"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	var manifestPath, source, selection, stranding, title, separator string
	var expind bool
	flag.StringVar(&manifestPath, "manifest", "", "Run manifest (CSV/TSV, optionally compressed, local or gs://).")
	flag.StringVar(&source, "source", "RNA", "Comma-separated library source molecules.")
	flag.StringVar(&selection, "selection", "polyA", "Comma-separated library selection/enrichment steps.")
	flag.StringVar(&stranding, "stranding", "x", "Library stranding: u(nstranded), f(orward), r(everse) or x (unknown).")
	flag.StringVar(&title, "title", "", "Sample attribute to use as the title. If empty, all sample attributes (or the sample description) are used.")
	flag.StringVar(&separator, "separator", rnaseq.DefaultSeparator, "Separator between experiment index and title.")
	flag.BoolVar(&expind, "expind", false, "Read descriptors from stdin and print their experiment index.")
	flag.Parse()

	if expind {
		if err := printExpInds(separator); err != nil {
			log.Fatalln(err)
		}
		return
	}

	if manifestPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	library, err := seqproj.NewLibrary(splitList(source), splitList(selection), stranding, nil)
	if err != nil {
		log.Fatalln(err)
	}

	ctx := context.Background()

	var client *storage.Client
	if strings.HasPrefix(manifestPath, "gs://") {
		client, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	records, err := manifest.Load(ctx, manifestPath, client)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Read %d runs from %s\n", len(records), manifestPath)

	exps, err := manifest.Experiments(records, library, manifest.Base(manifestPath))
	if err != nil {
		log.Fatalln(err)
	}

	var builder rnaseq.TitleBuilder
	if title != "" {
		builder = rnaseq.AttributeTitle(title)
	}

	rows, err := rnaseq.Samplesheet(exps, builder, separator)
	if err != nil {
		log.Fatalln(err)
	}

	if err := rnaseq.WriteSamplesheet(STDOUT, rows); err != nil {
		log.Fatalln(err)
	}
	log.Printf("Wrote %d samplesheet rows for %d experiments\n", len(rows), len(exps))
}

func printExpInds(separator string) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fmt.Fprintln(STDOUT, rnaseq.ToExpInd(line, separator))
	}

	return scanner.Err()
}

func splitList(value string) []string {
	out := []string{}
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
