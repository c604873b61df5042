package main

import (
	"log"
	"os"
	"text/tabwriter"

	"github.com/skilllogic/schoolcrm/core/school"
	"github.com/skilllogic/schoolcrm/storage/database/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up the demo data store
	db, err := inmemdb.OpenSeeded()
	errAndDie(err)

	// start CLI
	cli := commandLine{
		out:       tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0),
		schoolSvc: school.NewService(inmemdb.NewRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
