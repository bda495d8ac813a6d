package main

import (
	"flag"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/mendelian/heredity"
)

func main() {
	path := flag.String("data", "", "Filename of the population CSV to process")
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

	log.Println("Opening population:", *path)
	pop, err := heredity.LoadPopulation(*path)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("Loaded", len(pop), "people;", heredity.HypothesisSpace(len(pop)), "hypotheses before evidence filtering")

	results, err := heredity.Infer(pop, heredity.DefaultModel())
	if err != nil {
		log.Fatalln(err)
	}

	if err := results.WriteReport(os.Stdout); err != nil {
		log.Fatalln(err)
	}
}
