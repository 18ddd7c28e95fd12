// Command dishtool runs one-shot CSV transforms for dish data: inferring
// ingredient lists from dish names, estimating serving sizes from free-text
// descriptions, and scaling ingredient quantities to a different head count.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/rackiel/Foodify-sub001/pkg/dish"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: dishtool <command> [flags]

Commands:
  ingredients   append an Ingredients column inferred from the dish name
  servings      append a Servings column estimated from the description
  scale         rescale a quantity column to a different number of people
`)
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("dishtool: ")

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "ingredients":
		runIngredients(os.Args[2:])
	case "servings":
		runServings(os.Args[2:])
	case "scale":
		runScale(os.Args[2:])
	default:
		usage()
	}
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func writeCSV(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}

func field(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return record[index]
}

func runIngredients(args []string) {
	fs := flag.NewFlagSet("ingredients", flag.ExitOnError)
	in := fs.String("in", "", "input CSV file (requires a Name column)")
	out := fs.String("out", "", "output CSV file")
	fs.Parse(args)

	if *in == "" || *out == "" {
		log.Fatal("ingredients: -in and -out are required")
	}

	records, err := readCSV(*in)
	if err != nil {
		log.Fatalf("reading %s: %v", *in, err)
	}
	if len(records) == 0 {
		log.Fatalf("%s: empty file", *in)
	}

	nameIdx := columnIndex(records[0], "name")
	if nameIdx < 0 {
		log.Fatalf("%s: no Name column", *in)
	}
	notesIdx := columnIndex(records[0], "notes")

	records[0] = append(records[0], "Ingredients")
	for i := 1; i < len(records); i++ {
		inferred := dish.InferIngredients(field(records[i], nameIdx), field(records[i], notesIdx))
		records[i] = append(records[i], strings.Join(inferred, ", "))
	}

	if err := writeCSV(*out, records); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	fmt.Printf("wrote %d rows to %s\n", len(records)-1, *out)
}

func runServings(args []string) {
	fs := flag.NewFlagSet("servings", flag.ExitOnError)
	in := fs.String("in", "", "input CSV file (requires a Description column)")
	out := fs.String("out", "", "output CSV file")
	fs.Parse(args)

	if *in == "" || *out == "" {
		log.Fatal("servings: -in and -out are required")
	}

	records, err := readCSV(*in)
	if err != nil {
		log.Fatalf("reading %s: %v", *in, err)
	}
	if len(records) == 0 {
		log.Fatalf("%s: empty file", *in)
	}

	descIdx := columnIndex(records[0], "description")
	if descIdx < 0 {
		log.Fatalf("%s: no Description column", *in)
	}

	records[0] = append(records[0], "Servings")
	for i := 1; i < len(records); i++ {
		servings := dish.EstimateServings(field(records[i], descIdx))
		records[i] = append(records[i], strconv.Itoa(servings))
	}

	if err := writeCSV(*out, records); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	fmt.Printf("wrote %d rows to %s\n", len(records)-1, *out)
}

func runScale(args []string) {
	fs := flag.NewFlagSet("scale", flag.ExitOnError)
	in := fs.String("in", "", "input CSV file (requires Quantity and Servings columns)")
	out := fs.String("out", "", "output CSV file")
	people := fs.Int("people", 0, "number of people to scale quantities to")
	fs.Parse(args)

	if *in == "" || *out == "" || *people < 1 {
		log.Fatal("scale: -in, -out and -people are required")
	}

	records, err := readCSV(*in)
	if err != nil {
		log.Fatalf("reading %s: %v", *in, err)
	}
	if len(records) == 0 {
		log.Fatalf("%s: empty file", *in)
	}

	qtyIdx := columnIndex(records[0], "quantity")
	servingsIdx := columnIndex(records[0], "servings")
	if qtyIdx < 0 || servingsIdx < 0 {
		log.Fatalf("%s: Quantity and Servings columns required", *in)
	}

	for i := 1; i < len(records); i++ {
		qty, err := strconv.ParseFloat(field(records[i], qtyIdx), 64)
		if err != nil {
			continue
		}
		from, err := strconv.Atoi(field(records[i], servingsIdx))
		if err != nil || from < 1 {
			from = dish.DefaultServings
		}

		scaled := dish.ScaleServings(qty, from, *people)
		records[i][qtyIdx] = strconv.FormatFloat(scaled, 'f', -1, 64)
		records[i][servingsIdx] = strconv.Itoa(*people)
	}

	if err := writeCSV(*out, records); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	fmt.Printf("wrote %d rows to %s\n", len(records)-1, *out)
}
