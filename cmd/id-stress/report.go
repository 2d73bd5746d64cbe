package main

import (
	"io"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Ids   int
	Codes int
	Seed  uint64

	// Results
	Duplicates         int
	DistinctCodes      int
	TotalDrawTime      time.Duration
	TotalRoundTripTime time.Duration
	TotalCodeTime      time.Duration
	DrawTime           Stats
	RoundTripTime      Stats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Id Stress Test Report

## Test Configuration
- **Random Ids:** {{.Ids}}
- **Codes:** {{.Codes}}
- **Seed:** {{if .Seed}}{{.Seed}}{{else}}process-wide source{{end}}

## Id Generation
- **Total Draw Time:** {{.TotalDrawTime}}
- **Raw-Value Duplicates:** {{.Duplicates}}
- **Per-Chunk Draw Time:**
  - **Avg:** {{.DrawTime.Avg}}
  - **Min:** {{.DrawTime.Min}}
  - **Max:** {{.DrawTime.Max}}

## Codec Round Trip (String -> Parse)
- **Total Round Trip Time:** {{.TotalRoundTripTime}}
- **Per-Chunk Round Trip Time:**
  - **Avg:** {{.RoundTripTime.Avg}}
  - **Min:** {{.RoundTripTime.Min}}
  - **Max:** {{.RoundTripTime.Max}}

## Human-Facing Codes
- **Total Generation Time:** {{.TotalCodeTime}}
- **Distinct Codes:** {{.DistinctCodes}} / {{.Codes}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
