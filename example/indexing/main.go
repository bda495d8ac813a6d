package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mendelian/heredity"
)

func main() {
	path := flag.String("data", "", "Filename of the population CSV to process")
	idxPath := flag.String("phi", "", "Filename of the phi (posterior index) file to write")
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

	if *idxPath == "" {
		*idxPath = *path + ".phi"
	}

	if strings.HasPrefix(*idxPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*idxPath = filepath.Join(usr.HomeDir, (*idxPath)[2:])
	}

	log.Println("Opening population:", *path)
	pop, err := heredity.LoadPopulation(*path)
	if err != nil {
		log.Fatalln(err)
	}

	results, err := heredity.Infer(pop, heredity.DefaultModel())
	if err != nil {
		log.Fatalln(err)
	}

	idx, err := heredity.CreatePosteriorIndex(*idxPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer idx.Close()

	if err := idx.Save(filepath.Base(*path), pop, results); err != nil {
		log.Fatalln(err)
	}

	rows, err := idx.Posteriors()
	if err != nil {
		log.Fatalln(err)
	}
	for i, row := range rows {
		fmt.Printf("%d) %+v\n", i, row)
	}

	log.Println("Wrote posteriors for", len(rows), "people to", *idxPath, "using the", heredity.WhichSQLiteDriver(), "driver")
}
