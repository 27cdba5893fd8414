/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mikeb26/senticl-drawbot/teams"
)

// hclRosterFile is the top-level structure of a roster file, e.g.
//
//	format = 2
//	tier "t1" { members = ["Ada", "Bo"] }
//	tier "t2" { members = ["Cy", "Di"] }
//	rule "avoid" {
//	  a = "Ada"
//	  b = "Cy"
//	}
//	entrants = ["Red", "Blue", "Green"]
type hclRosterFile struct {
	Format   int        `hcl:"format,optional"`
	Entrants []string   `hcl:"entrants,optional"`
	Tiers    []*hclTier `hcl:"tier,block"`
	Rules    []*hclRule `hcl:"rule,block"`
}

type hclTier struct {
	Key     string   `hcl:"key,label"`
	Members []string `hcl:"members"`
}

type hclRule struct {
	Kind string `hcl:"kind,label"`
	A    string `hcl:"a"`
	B    string `hcl:"b"`
}

// DecodeFile reads and decodes the roster file at path.
func DecodeFile(path string) (*Roster, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, diags)
	}
	return decodeBody(file, path)
}

// Decode decodes roster source; filename is only used in diagnostics.
func Decode(src []byte, filename string) (*Roster, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse roster %s: %w", filename, diags)
	}
	return decodeBody(file, filename)
}

func decodeBody(file *hcl.File, filename string) (*Roster, error) {
	var parsed hclRosterFile
	diags := gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode roster %s: %w", filename, diags)
	}

	if parsed.Format < 0 || parsed.Format > teams.MaxTiers {
		return nil, fmt.Errorf("roster %s: format %d out of range 1..%d", filename,
			parsed.Format, teams.MaxTiers)
	}

	r := &Roster{
		Format:   parsed.Format,
		Tiers:    make(map[teams.TierKey][]string),
		Entrants: teams.CleanNames(parsed.Entrants),
	}
	for _, t := range parsed.Tiers {
		k, ok := parseTierKey(t.Key)
		if !ok {
			return nil, fmt.Errorf("roster %s: unknown tier %q (want t1..t%d)", filename,
				t.Key, teams.MaxTiers)
		}
		if _, dup := r.Tiers[k]; dup {
			return nil, fmt.Errorf("roster %s: tier %v declared twice", filename, k)
		}
		r.Tiers[k] = teams.CleanNames(t.Members)
	}

	rs := teams.NewRuleSet(nil)
	for _, hr := range parsed.Rules {
		kind, err := teams.ParseRuleKind(hr.Kind)
		if err != nil {
			return nil, fmt.Errorf("roster %s: %w", filename, err)
		}
		if _, ok := rs.Add(kind, hr.A, hr.B); !ok {
			return nil, fmt.Errorf("roster %s: rule %v %q/%q is blank or repeated",
				filename, kind, hr.A, hr.B)
		}
	}
	r.Rules = rs.Rules

	return r, nil
}
