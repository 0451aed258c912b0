// Copyright 2025 Certen Protocol
//
// cel-inspect is an out-of-core CLI for reading a serialized
// Cryptographic Event Log and printing a human-readable timeline or
// its derived asset state, or, with -verify, the verification engine's
// diagnostic report in place of either (§6.3).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/certen/cel-go/pkg/eventlog"
	"github.com/certen/cel-go/pkg/layer"
	"github.com/certen/cel-go/pkg/verify"
	"github.com/certen/cel-go/pkg/wire"
)

func main() {
	logger := log.New(os.Stderr, "[cel-inspect] ", log.LstdFlags)

	logPath := flag.String("log", "", "path to an event log file, .json or .cbor per its extension")
	format := flag.String("format", "text", "output rendering: json or text")
	doVerify := flag.Bool("verify", false, "run the verification engine and print its diagnostic report instead of the requested command")
	flag.Parse()

	if *logPath == "" {
		logger.Println("error: -log is required")
		flag.Usage()
		os.Exit(2)
	}
	if *format != "json" && *format != "text" {
		logger.Printf("error: -format must be json or text, got %q", *format)
		os.Exit(2)
	}

	subcommand := "timeline"
	if args := flag.Args(); len(args) > 0 {
		subcommand = args[0]
	}

	data, err := os.ReadFile(*logPath)
	if err != nil {
		logger.Printf("error: %v", err)
		os.Exit(1)
	}

	log_, err := parseLog(data, detectWireFormat(*logPath))
	if err != nil {
		logger.Printf("error: parse: %v", err)
		os.Exit(1)
	}

	if *doVerify {
		report := verify.Run(log_, nil)
		printReport(report, *format)
		if !report.Valid {
			os.Exit(1)
		}
		return
	}

	switch subcommand {
	case "timeline":
		printTimeline(log_, *format)
	case "state":
		state, err := layer.CurrentState(log_)
		if err != nil {
			logger.Printf("error: state: %v", err)
			os.Exit(1)
		}
		printState(state, *format)
	default:
		logger.Printf("error: unknown subcommand %q (want timeline or state)", subcommand)
		os.Exit(2)
	}
}

// detectWireFormat picks the on-disk codec from the file extension; the
// -format flag controls rendering, not the wire codec, since a log file's
// own encoding is a property of the file, not an inspector preference.
func detectWireFormat(path string) string {
	if strings.ToLower(filepath.Ext(path)) == ".cbor" {
		return "cbor"
	}
	return "json"
}

func parseLog(data []byte, format string) (eventlog.EventLog, error) {
	switch format {
	case "json":
		return wire.ParseJSON(data)
	case "cbor":
		return wire.ParseCBOR(data)
	default:
		return eventlog.EventLog{}, fmt.Errorf("unknown wire format %q", format)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func printReport(report verify.Report, format string) {
	if format == "json" {
		printJSON(report)
		return
	}
	fmt.Printf("verified: %v\n", report.Valid)
	for _, er := range report.Entries {
		fmt.Printf("  [%d] %-10s chainValid=%-5v proofValid=%-5v", er.Index, er.Type, er.ChainValid, er.ProofValid)
		if er.HasWitness {
			fmt.Print(" witnessValid=", er.WitnessValid)
		}
		fmt.Println()
		for _, d := range er.Diagnostics {
			fmt.Printf("      - %s\n", d)
		}
	}
}

func printTimeline(log eventlog.EventLog, format string) {
	if format == "json" {
		printJSON(log.ToValue())
		return
	}
	fmt.Printf("events: %d\n", len(log.Events))
	for i, e := range log.Events {
		fmt.Printf("[%d] %s\n", i, e.Type)
		printTimestamp(e)
		fmt.Printf("    proofs: %d\n", len(e.Proof))
		for _, p := range e.Proof {
			kind := "controller"
			if p.IsWitness() {
				kind = "witness"
			}
			fmt.Printf("      - %-10s cryptosuite=%s", kind, p.Cryptosuite)
			if p.IsBitcoinWitness() {
				fmt.Printf(" txid=%s inscriptionId=%s satoshi=%s", p.TxID, p.InscriptionID, p.Satoshi)
				if p.BlockHeight != nil {
					fmt.Printf(" blockHeight=%d", *p.BlockHeight)
				}
			}
			fmt.Println()
		}
	}
}

func printTimestamp(e eventlog.EventEntry) {
	for _, key := range []string{"migratedAt", "updatedAt", "deactivatedAt"} {
		if v, ok := e.Data[key].(string); ok {
			fmt.Printf("    %s: %s\n", key, v)
			return
		}
	}
	if len(e.Proof) > 0 {
		fmt.Printf("    created: %s\n", e.Proof[0].Created)
	}
}

func printState(state layer.AssetState, format string) {
	if format == "json" {
		printJSON(state)
		return
	}
	fmt.Printf("did:         %s\n", state.DID)
	fmt.Printf("name:        %s\n", state.Name)
	fmt.Printf("layer:       %s\n", state.Layer)
	fmt.Printf("deactivated: %v\n", state.Deactivated)
	fmt.Printf("creator:     %s\n", state.Creator)
	fmt.Printf("createdAt:   %s\n", state.CreatedAt)
	fmt.Printf("updatedAt:   %s\n", state.UpdatedAt)
	fmt.Printf("resources:   %d\n", len(state.Resources))
	if len(state.Metadata) > 0 {
		fmt.Println("metadata:")
		for k, v := range state.Metadata {
			fmt.Printf("  %s: %v\n", k, v)
		}
	}
}
