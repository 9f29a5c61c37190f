// Command itinerary-check reports location gaps and review issues for an
// itinerary JSON file and optionally prints the auto fixed itinerary.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/config"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/continuity"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/review"
)

type report struct {
	Gaps   []models.Gap        `json:"gaps"`
	Review models.ReviewResult `json:"review"`
	Fixed  *models.Itinerary   `json:"fixed,omitempty"`
}

func main() {
	file := flag.String("file", "", "itinerary JSON file, - for stdin")
	autofix := flag.Bool("autofix", false, "include the auto fixed itinerary")
	flag.Parse()

	if err := run(*file, *autofix, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "itinerary-check:", err)
		os.Exit(1)
	}
}

func run(file string, autofix bool, stdin io.Reader, out io.Writer) error {
	if file == "" {
		return fmt.Errorf("-file is required")
	}
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var data []byte
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("failed to read itinerary: %w", err)
	}

	var it models.Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		return fmt.Errorf("failed to decode itinerary: %w", err)
	}

	validator := continuity.NewValidator(cfg.ContinuityOptions())
	engine := review.New(cfg.ReviewOptions())

	rep := report{
		Gaps:   validator.ValidateContinuity(it.Segments),
		Review: engine.ReviewItinerary(&it),
	}
	if rep.Gaps == nil {
		rep.Gaps = []models.Gap{}
	}
	if autofix {
		rep.Fixed = engine.AutoFixIssues(&it, rep.Review)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
