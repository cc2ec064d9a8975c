package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
)

// writeAssessment renders an assessment in the requested format to stdout or
// a file.
func writeAssessment(a *model.Assessment, format, outputPath string) error {
	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "output: create %s", outputPath)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "text":
		printAssessment(out, a)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(a), "output: encode json")
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return eris.Wrap(enc.Encode(a), "output: encode yaml")
	default:
		return eris.Errorf("output: unknown format %q", format)
	}
}

func printAssessment(out io.Writer, a *model.Assessment) {
	r := &a.Report
	fmt.Fprintf(out, "Business: %s\n", a.Answers.BusinessName)
	fmt.Fprintf(out, "Industry: %s (%s)\n", r.Industry, r.YearsInBusiness)
	fmt.Fprintf(out, "Score:    %.1f / 100\n", r.TotalScore)
	fmt.Fprintf(out, "Tier:     %s\n", r.ReadinessTier)

	fmt.Fprintln(out, "\nCategories:")
	for _, c := range r.Categories() {
		fmt.Fprintf(out, "  %-25s %.1f / %.0f  (%.1f%%, %s)\n", c.Name, c.RawScore, c.MaxScore, c.Percentage, c.Grade)
	}

	if len(r.CriticalFlags) > 0 {
		fmt.Fprintf(out, "\nCritical flags:    %s\n", joinFlags(r.CriticalFlags))
	}
	if len(r.OpportunityFlags) > 0 {
		fmt.Fprintf(out, "Opportunity flags: %s\n", joinFlags(r.OpportunityFlags))
	}

	fmt.Fprintf(out, "\n%s\n", a.Advisory)
}

func joinFlags(flags []model.Flag) string {
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}
