// Dev program to check extraction against saved profile pages.
// Prints what each page yields per category and which labels were dropped.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/identigen/internal/classify"
	"github.com/ppiankov/identigen/internal/extract"
	"github.com/ppiankov/identigen/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: parse-sample <page.html>...")
		os.Exit(2)
	}

	fmt.Println("=== Profile Extraction Check ===")
	fmt.Println()

	failed := false
	extractor := extract.NewIdentityExtractor(nil)
	for _, path := range os.Args[1:] {
		fmt.Printf("Page: %s\n", path)
		fmt.Println(strings.Repeat("-", 60))

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("  read error: %v\n\n", err)
			failed = true
			continue
		}

		record, err := extractor.Extract(string(data))
		if err != nil {
			fmt.Printf("  extract error: %v\n\n", err)
			failed = true
			continue
		}

		fmt.Printf("  Name:    %s\n", record.Name)
		fmt.Printf("  Address: %s\n", record.Address)
		fmt.Printf("  Fields:  %d\n", len(record.Fields))

		categorized := classify.Categorize(record)
		for _, c := range model.Categories() {
			fmt.Printf("  %-15s %d\n", c.String()+":", len(categorized.Entries(c)))
		}

		var dropped []string
		for _, f := range record.Fields {
			if _, ok := classify.Classify(f.Label); !ok {
				dropped = append(dropped, f.Label)
			}
		}
		if len(dropped) > 0 {
			fmt.Printf("  Dropped: %s\n", strings.Join(dropped, ", "))
		} else {
			fmt.Println("  Dropped: none")
		}
		fmt.Println()
	}

	if failed {
		os.Exit(1)
	}
}
