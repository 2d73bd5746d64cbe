package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/plus3/entid/id"
)

type Stress struct{}

func (Stress) IdKind() string { return "Stress" }

func main() {
	idCount := flag.Int("ids", 1_000_000, "The number of random ids to draw.")
	codeCount := flag.Int("codes", 100_000, "The number of human-facing codes to generate.")
	seed := flag.Uint64("seed", 0, "Generator seed. 0 uses the process-wide source.")
	chunkSize := flag.Int("chunk", 100_000, "Sample timing granularity in draws per chunk.")
	flag.Parse()

	src := id.DefaultSource()
	if *seed != 0 {
		src = id.NewSource(*seed)
	}

	log.Println("Starting id stress test...")

	report := &Report{
		Ids:   *idCount,
		Codes: *codeCount,
		Seed:  *seed,
	}

	// 1. Draw ids and count raw-value collisions (birthday sanity check)
	log.Printf("Drawing %d random ids...\n", *idCount)
	seen := make(map[uint64]struct{}, *idCount)
	ids := make([]id.Id[Stress], 0, *idCount)

	start := time.Now()
	chunkStart := start
	for i := 0; i < *idCount; i++ {
		next := id.RandomFrom[Stress](src)
		if _, dup := seen[next.Value()]; dup {
			report.Duplicates++
		}
		seen[next.Value()] = struct{}{}
		ids = append(ids, next)

		if (i+1)%*chunkSize == 0 {
			report.DrawTime.Samples = append(report.DrawTime.Samples, time.Since(chunkStart))
			chunkStart = time.Now()
		}
	}
	report.TotalDrawTime = time.Since(start)
	log.Printf("Draw complete: %d duplicates.\n", report.Duplicates)

	// 2. Encode/decode every id through the text path
	log.Println("Round-tripping ids through the codec...")
	start = time.Now()
	chunkStart = start
	for i, next := range ids {
		parsed, err := id.Parse[Stress](next.String())
		if err != nil {
			log.Fatalf("Round trip failed for %v: %v", next, err)
		}
		if parsed != next {
			log.Fatalf("Round trip mismatch: %v != %v", parsed, next)
		}

		if (i+1)%*chunkSize == 0 {
			report.RoundTripTime.Samples = append(report.RoundTripTime.Samples, time.Since(chunkStart))
			chunkStart = time.Now()
		}
	}
	report.TotalRoundTripTime = time.Since(start)
	log.Println("Round trip complete.")

	// 3. Generate human-facing codes
	log.Printf("Generating %d codes...\n", *codeCount)
	start = time.Now()
	codes := id.NewSet[string]()
	for i := 0; i < *codeCount; i++ {
		codes.Add(id.NewCodeFrom(src))
	}
	report.TotalCodeTime = time.Since(start)
	report.DistinctCodes = codes.Len()
	log.Printf("Codes complete: %d distinct.\n", report.DistinctCodes)

	report.DrawTime.Finalize()
	report.RoundTripTime.Finalize()

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}

	log.Println("Stress test complete.")
}
