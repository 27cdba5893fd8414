/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mikeb26/senticl-drawbot/bracket"
	"github.com/mikeb26/senticl-drawbot/internal"
	"github.com/mikeb26/senticl-drawbot/prefs"
	"github.com/mikeb26/senticl-drawbot/roster"
	"github.com/mikeb26/senticl-drawbot/teams"
)

func loadRoster(ctx context.Context, src string) (*roster.Roster, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return roster.Fetch(ctx, nil, src)
	}
	return roster.DecodeFile(src)
}

func randFor(seed uint64) internal.Shuffler {
	if seed == 0 {
		return nil
	}
	return internal.NewSeededRand(seed)
}

func handleTeams(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("teams", flag.ExitOnError)
	rosterSrc := fs.String("roster", "", "Roster file (.hcl) or roster page URL")
	tierList := fs.String("tiers", "", "Tiers inline, e.g. \"Ada,Bo;Cy,Di\"")
	format := fs.Int("format", 0, "Team size (1-5)")
	ordered := fs.Bool("ordered", false, "Don't shuffle tier pools")
	seed := fs.Uint64("seed", 0, "Seed for a reproducible draw")
	csvOut := fs.String("csv", "", "Write teams as CSV to this file ('-' for stdout)")
	reveal := fs.Bool("reveal", false, "Show one team per Enter keypress")
	save := fs.Bool("save", false, "Remember the pools and rules")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	store, closer := openStore(ctx)
	defer closer.Close()
	snap, err := store.Load(ctx)
	if err != nil {
		log.Fatalf("Error loading saved selections: %v", err)
	}

	var r *roster.Roster
	switch {
	case *rosterSrc != "":
		r, err = loadRoster(ctx, *rosterSrc)
		if err != nil {
			log.Fatalf("Error reading roster %v: %v", *rosterSrc, err)
		}
	case *tierList != "":
		r = roster.ParseTierList(*tierList)
	case snap.Participants != nil:
		r = &roster.Roster{Format: snap.Participants.Format, Tiers: snap.Participants.Tiers}
	default:
		fmt.Fprintln(os.Stderr, "No participants; provide --roster or --tiers.")
		fs.Usage()
		os.Exit(1)
	}
	if *format > 0 {
		r.Format = teams.ClampFormat(*format)
	}

	rules := snap.Rules
	for _, rule := range r.Rules {
		rules.Add(rule.Kind, rule.A, rule.B)
	}

	p := teams.Partitioner{
		Tiers:   teams.VisibleTiers(r.TeamFormat()),
		Rand:    randFor(*seed),
		Ordered: *ordered,
	}
	result, err := p.Partition(r.Pools(), rules.AvoidPairs())
	if err != nil {
		var empty *teams.EmptyTierError
		if errors.As(err, &empty) {
			fmt.Fprintf(os.Stderr, "Cannot draw teams: %v; add at least one name to %v.\n",
				err, empty.Tier.Label())
		} else {
			fmt.Fprintf(os.Stderr, "Cannot draw teams: %v\n", err)
		}
		os.Exit(1)
	}

	if *save {
		err := store.SaveParticipants(prefs.Participants{
			Format: r.TeamFormat(),
			Tiers:  r.Tiers,
		})
		if err == nil {
			err = store.SaveRules(rules)
		}
		if err != nil {
			log.Fatalf("Error saving selections: %v", err)
		}
	}

	if *reveal {
		revealAll(os.Stdin, os.Stdout, result, teams.BuildOneTeamOutput)
	} else {
		fmt.Print(teams.BuildTeamsOutput(result))
	}

	if *csvOut != "" {
		headers, rows := teams.Matrix(result, r.TeamFormat())
		if err := writeCSV(*csvOut, headers, rows); err != nil {
			log.Fatalf("Error writing %v: %v", *csvOut, err)
		}
	}
}

func handleFixture(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("fixture", flag.ExitOnError)
	mode := fs.String("mode", "single", "single, double or roundrobin")
	repeat := fs.String("repeat", "single", "Round robin legs: single or double")
	seeding := fs.String("seeding", "shuffle", "shuffle or ordered")
	seed := fs.Uint64("seed", 0, "Seed for a reproducible draw")
	start := fs.String("start", "", "Date of the first matchday")
	every := fs.Duration("every", bracket.Weekly, "Spacing between matchdays")
	rosterSrc := fs.String("roster", "", "Take entrants from a roster file or page")
	csvOut := fs.String("csv", "", "Write rows as CSV to this file ('-' for stdout)")
	reveal := fs.Bool("reveal", false, "Show one round per Enter keypress")
	save := fs.Bool("save", false, "Remember the entrants")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	opts := bracket.Options{Rand: randFor(*seed)}
	var err error
	if opts.Kind, err = bracket.ParseKind(*mode); err != nil {
		log.Fatalf("%v", err)
	}
	if opts.Repeat, err = bracket.ParseRepeat(*repeat); err != nil {
		log.Fatalf("%v", err)
	}
	if opts.Seeding, err = bracket.ParseSeeding(*seeding); err != nil {
		log.Fatalf("%v", err)
	}
	startDate, err := internal.ParseDateOrZero(*start)
	if err != nil {
		log.Fatalf("Cannot parse --start %q: %v", *start, err)
	}

	store, closer := openStore(ctx)
	defer closer.Close()

	var entrants []string
	for _, arg := range fs.Args() {
		entrants = append(entrants, internal.SplitList(arg)...)
	}
	if *rosterSrc != "" {
		r, err := loadRoster(ctx, *rosterSrc)
		if err != nil {
			log.Fatalf("Error reading roster %v: %v", *rosterSrc, err)
		}
		entrants = append(entrants, r.Entrants...)
	}
	if len(entrants) == 0 {
		entrants = store.Fixture()
	}

	sched, err := bracket.Generate(entrants, opts)
	if errors.Is(err, bracket.ErrInsufficientEntrants) {
		fmt.Print(bracket.BuildScheduleOutput(sched))
		os.Exit(1)
	} else if err != nil {
		log.Fatalf("Error building fixture: %v", err)
	}
	sched.AssignDates(startDate, *every)

	if *save {
		if err := store.SaveFixture(entrants); err != nil {
			log.Fatalf("Error saving entrants: %v", err)
		}
	}

	if *reveal {
		fmt.Printf("Fixture (%v):\n\n", sched.Kind)
		revealAll(os.Stdin, os.Stdout, sched.Rounds(),
			func(_ int, r bracket.Round) string { return sched.BuildOneRoundOutput(r) })
		if sched.ByeNote != "" {
			fmt.Printf("* %v\n", sched.ByeNote)
		}
	} else {
		fmt.Print(bracket.BuildScheduleOutput(sched))
	}

	if *csvOut != "" {
		headers, rows := sched.Rows()
		if err := writeCSV(*csvOut, headers, rows); err != nil {
			log.Fatalf("Error writing %v: %v", *csvOut, err)
		}
	}
}

// revealAll prints one item each time a line is read from in, then whatever
// is left once in is exhausted.
func revealAll[T any](in io.Reader, out io.Writer, items []T,
	format func(idx int, item T) string) {

	cur := internal.NewCursor(items)
	scanner := bufio.NewScanner(in)
	waiting := true
	for {
		idx := len(cur.Revealed())
		item, ok := cur.Next()
		if !ok {
			break
		}
		fmt.Fprint(out, format(idx, item))
		if cur.Remaining() == 0 {
			break
		}
		if waiting {
			fmt.Fprintf(out, "-- %d more; press Enter --", cur.Remaining())
			waiting = scanner.Scan()
			fmt.Fprintln(out)
		}
	}
}

func writeCSV(path string, headers []string, rows [][]string) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
