/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mikeb26/senticl-drawbot/prefs"
	"github.com/mikeb26/senticl-drawbot/teams"
)

func handleRules(ctx context.Context, args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}
	store, closer := openStore(ctx)
	defer closer.Close()
	rules := store.Rules()

	switch args[0] {
	case "list":
		printRules(os.Stdout, rules)
	case "add":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: drawtd rules add avoid|prefer \"A:B\"")
			os.Exit(1)
		}
		kind, err := teams.ParseRuleKind(args[1])
		if err != nil {
			log.Fatalf("%v", err)
		}
		a, b, err := teams.ParsePair(strings.Join(args[2:], " "))
		if err != nil {
			log.Fatalf("%v", err)
		}
		rule, ok := rules.Add(kind, a, b)
		if !ok {
			fmt.Printf("Rule %v %v <-> %v already exists\n", kind, a, b)
			return
		}
		if err := store.SaveRules(rules); err != nil {
			log.Fatalf("Error saving rules: %v", err)
		}
		fmt.Printf("Added %v (id %v)\n", rule, rule.ID)
	case "rm":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: drawtd rules rm <id>")
			os.Exit(1)
		}
		if !rules.Remove(args[1]) {
			fmt.Fprintf(os.Stderr, "No rule with id %v\n", args[1])
			os.Exit(1)
		}
		if err := store.SaveRules(rules); err != nil {
			log.Fatalf("Error saving rules: %v", err)
		}
		fmt.Printf("Removed %v\n", args[1])
	default:
		fmt.Fprintf(os.Stderr, "Unknown rules command: %s\n", args[0])
		os.Exit(1)
	}
}

func printRules(w io.Writer, rules *teams.RuleSet) {
	if len(rules.Rules) == 0 {
		fmt.Fprintln(w, "No rules yet.")
		return
	}
	for _, r := range rules.Rules {
		fmt.Fprintf(w, "%v  %v\n", r.ID, r)
	}
}

func handlePrefs(ctx context.Context, args []string) {
	if len(args) == 0 {
		args = []string{"show"}
	}
	store, closer := openStore(ctx)
	defer closer.Close()

	switch args[0] {
	case "show":
		snap, err := store.Load(ctx)
		if err != nil {
			log.Fatalf("Error loading saved selections: %v", err)
		}
		printSnapshot(os.Stdout, snap)
	case "clear":
		store.Clear()
		fmt.Println("Saved selections cleared.")
	default:
		fmt.Fprintf(os.Stderr, "Unknown prefs command: %s\n", args[0])
		os.Exit(1)
	}
}

func printSnapshot(w io.Writer, snap *prefs.Snapshot) {
	fmt.Fprintf(w, "Store: %v\n", storeBackend())
	if p := snap.Participants; p != nil {
		fmt.Fprintf(w, "Format: %d\n", p.Format)
		for _, k := range teams.VisibleTiers(p.Format) {
			fmt.Fprintf(w, "%v: %v\n", k.Label(), strings.Join(p.Tiers[k], ", "))
		}
	} else {
		fmt.Fprintln(w, "No saved participants.")
	}
	printRules(w, snap.Rules)
	if len(snap.Fixture) > 0 {
		fmt.Fprintf(w, "Fixture entrants: %v\n", strings.Join(snap.Fixture, ", "))
	} else {
		fmt.Fprintln(w, "No saved fixture entrants.")
	}
}
