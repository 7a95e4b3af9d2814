// The cli shell runs the parse pipeline once against a directory and writes
// the report next to the scanned files.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"resume-parser/internal/locate"
	"resume-parser/internal/nlp"
	"resume-parser/internal/report"
	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
)

func main() {
	cfg := config.Load()

	dir := cfg.ScanDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	tokenizer, err := nlp.NewProseTokenizer()
	if err != nil {
		log.Fatalf("the english tokenizer model must be available at startup: %v", err)
	}
	svc := resumes.NewService(tokenizer)
	builder := &report.Builder{TemplatePath: cfg.ReportTemplate}

	path, err := locate.Find(dir)
	if errors.Is(err, locate.ErrNoResume) {
		fmt.Printf("No PDF or DOCX resume found in %s\n", dir)
		return
	}
	if err != nil {
		log.Fatalf("locate resume: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	res := svc.Parse(context.Background(), data, filepath.Base(path))
	if res.Failed() {
		fmt.Printf("Could not parse %s: %s\n", path, res.Error)
		os.Exit(1)
	}

	printSummary(path, res)

	outPath := filepath.Join(dir, cfg.ReportFileName)
	if err := builder.WriteFile(res, outPath); err != nil {
		log.Fatalf("write report: %v", err)
	}
	fmt.Printf("Report written to %s\n", outPath)
}

func printSummary(path string, res resumes.ParsedResume) {
	fmt.Printf("Parsed %s\n", path)
	fmt.Printf("  Email: %s\n", orNotFound(res.Email))
	fmt.Printf("  Phone: %s\n", orNotFound(res.Phone))
	if len(res.Skills) > 0 {
		fmt.Printf("  Skills: %s\n", strings.Join(res.Skills, ", "))
	} else {
		fmt.Println("  Skills: none detected")
	}
	for _, edu := range res.Education {
		fmt.Printf("  Education: %s\n", edu)
	}
}

func orNotFound(s string) string {
	if s == "" {
		return "not found"
	}
	return s
}
