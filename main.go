package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"btree/btree"
	"btree/cli"

	"github.com/go-faker/faker/v4"
)

var degree *int
var shouldSeed *bool
var seedNumRecords *int

func setupFlags() {
	degree = flag.Int("degree", 5, "Degree of the B-Tree (minimum branching factor, at least 2).")
	shouldSeed = flag.Bool("seed", false, "Seed the tree using records created with go-faker.")
	seedNumRecords = flag.Int("records", 100, "Number of records to seed the tree with.")
	flag.Parse()
}

func seedTreeWithTestRecords(t *btree.Btree) {
	for i := 0; i < *seedNumRecords; i++ {
		k := []byte(faker.Word() + faker.Word())
		v := []byte(faker.Word() + faker.Word())
		t.Insert(k, v)
	}
}

func main() {
	setupFlags()

	tree, err := btree.NewBTree(*degree)
	if err != nil {
		log.Fatal(err)
	}

	if *shouldSeed {
		seedTreeWithTestRecords(tree)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, tree)
	demo.Start()
}
