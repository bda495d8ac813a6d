package main

import (
	"flag"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/carbocation/pfx"
	"github.com/mendelian/heredity"
)

func main() {
	path := flag.String("data", "", "Filename of the population CSV to process")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of inference workers")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No population file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	pop, err := heredity.LoadPopulation(*path)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("Launching", *workers, "workers over", heredity.HypothesisSpace(len(pop)), "hypotheses")

	start := time.Now()
	results, err := heredity.InferParallel(pop, heredity.DefaultModel(), *workers)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Inference completed in", time.Since(start))

	if err := results.WriteReport(os.Stdout); err != nil {
		log.Fatalln(err)
	}
}
