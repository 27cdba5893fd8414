/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/senticl-drawbot/bracket"
	"github.com/mikeb26/senticl-drawbot/internal"
	"github.com/mikeb26/senticl-drawbot/prefs"
	"github.com/mikeb26/senticl-drawbot/roster"
	"github.com/mikeb26/senticl-drawbot/teams"
)

type DrawSubCommand string

const (
	DrawAboutCmd   DrawSubCommand = "about"
	DrawHelpCmd    DrawSubCommand = "help"
	DrawTeamsCmd   DrawSubCommand = "teams"
	DrawFixtureCmd DrawSubCommand = "fixture"
	DrawRulesCmd   DrawSubCommand = "rules"
)

var drawSubCmdHdlrs = map[DrawSubCommand]CmdHandler{
	DrawAboutCmd:   drawAboutCmdHandler,
	DrawHelpCmd:    drawHelpCmdHandler,
	DrawTeamsCmd:   drawTeamsCmdHandler,
	DrawFixtureCmd: drawFixtureCmdHandler,
	DrawRulesCmd:   drawRulesCmdHandler,
}

func broadcastOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}
}

func choices(values ...string) []*discordgo.ApplicationCommandOptionChoice {
	ret := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(values))
	for _, v := range values {
		ret = append(ret, &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v})
	}
	return ret
}

func drawCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        string(DrawCmd),
		Description: "Team and fixture draws; try /draw help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(DrawHelpCmd),
				Description: "Show usage for draw",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(DrawAboutCmd),
				Description: "Show information about senticl-drawbot",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(DrawTeamsCmd),
				Description: "Draw balanced teams, one player per tier",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "tiers",
						Description: "Tiers separated by ';', names by ',' (default is the saved tiers)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "avoid",
						Description: "Pairs to keep apart, e.g. 'Ada:Cy; Bo:Di'",
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "format",
						Description: "Team size 1-5 (default is the number of tiers)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "save",
						Description: "Remember the tiers and rules",
					},
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(DrawFixtureCmd),
				Description: "Build a fixture",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "entrants",
						Description: "Comma separated entrants (default is the saved entrants)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "mode",
						Description: "Fixture format (default is single)",
						Choices:     choices("single", "double", "roundrobin"),
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "repeat",
						Description: "Round robin legs (default is single)",
						Choices:     choices("single", "double"),
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "seeding",
						Description: "Seeding (default is shuffle)",
						Choices:     choices("shuffle", "ordered"),
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "start",
						Description: "Date of the first matchday",
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "save",
						Description: "Remember the entrants",
					},
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(DrawRulesCmd),
				Description: "List the saved pairing rules",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOption(),
				},
			},
		},
	}
}

func drawCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := drawHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := drawSubCmdHdlrs[DrawSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

func newResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// subOptions indexes the options of the invoked subcommand by name.
func subOptions(
	inter *discordgo.Interaction) map[string]*discordgo.ApplicationCommandInteractionDataOption {

	ret := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	data := inter.ApplicationCommandData()
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			ret[opt.Name] = opt
		}
	}
	return ret
}

func stringOpt(opts map[string]*discordgo.ApplicationCommandInteractionDataOption,
	name string) string {

	if opt, ok := opts[name]; ok {
		return strings.TrimSpace(opt.StringValue())
	}
	return ""
}

func boolOpt(opts map[string]*discordgo.ApplicationCommandInteractionDataOption,
	name string) bool {

	if opt, ok := opts[name]; ok {
		return opt.BoolValue()
	}
	return false
}

//go:embed about.txt
var aboutText string

func drawAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	resp.Data.Content = truncateContent(aboutText)
	return resp
}

//go:embed help.md
var helpText string

func drawHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	resp.Data.Content = truncateContent(helpText)
	return resp
}

// drawTeamsCmdHandler handles /draw teams
func drawTeamsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)

	snap, err := store.Load(ctx)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading saved selections: %v", err)
		log.Printf("discordbot.teams: %v", resp.Data.Content)
		return resp
	}

	var r *roster.Roster
	if tiers := stringOpt(opts, "tiers"); tiers != "" {
		r = roster.ParseTierList(tiers)
	} else if snap.Participants != nil {
		r = &roster.Roster{Format: snap.Participants.Format, Tiers: snap.Participants.Tiers}
	} else {
		resp.Data.Content = "Please provide tiers, e.g. `tiers: Ada, Bo; Cy, Di`."
		return resp
	}
	if opt, ok := opts["format"]; ok {
		r.Format = teams.ClampFormat(int(opt.IntValue()))
	}

	rules := snap.Rules
	if avoid := stringOpt(opts, "avoid"); avoid != "" {
		for _, item := range strings.Split(avoid, ";") {
			if strings.TrimSpace(item) == "" {
				continue
			}
			a, b, err := teams.ParsePair(item)
			if err != nil {
				resp.Data.Content = fmt.Sprintf("Invalid avoid rule: %v", err)
				return resp
			}
			rules.Add(teams.RuleAvoid, a, b)
		}
	}

	p := teams.Partitioner{Tiers: teams.VisibleTiers(r.TeamFormat())}
	result, err := p.Partition(r.Pools(), rules.AvoidPairs())
	if err != nil {
		var empty *teams.EmptyTierError
		if errors.As(err, &empty) {
			resp.Data.Content = fmt.Sprintf("Cannot draw teams: %v; add at least one name to %v.",
				err, empty.Tier.Label())
		} else {
			resp.Data.Content = fmt.Sprintf("Cannot draw teams: %v", err)
		}
		log.Printf("discordbot.teams: %v", resp.Data.Content)
		return resp
	}

	if boolOpt(opts, "save") {
		err := store.SaveParticipants(prefs.Participants{Format: r.TeamFormat(),
			Tiers: r.Tiers})
		if err == nil {
			err = store.SaveRules(rules)
		}
		if err != nil {
			log.Printf("discordbot.teams: failed to save selections: %v", err)
		}
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(teams.BuildTeamsOutput(result)))

	if boolOpt(opts, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

// drawFixtureCmdHandler handles /draw fixture
func drawFixtureCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)

	var bo bracket.Options
	var err error
	if bo.Kind, err = bracket.ParseKind(stringOpt(opts, "mode")); err == nil {
		if bo.Repeat, err = bracket.ParseRepeat(stringOpt(opts, "repeat")); err == nil {
			bo.Seeding, err = bracket.ParseSeeding(stringOpt(opts, "seeding"))
		}
	}
	if err != nil {
		resp.Data.Content = err.Error()
		return resp
	}
	start, err := internal.ParseDateOrZero(stringOpt(opts, "start"))
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Cannot parse start date: %v", err)
		return resp
	}

	entrants := internal.SplitList(stringOpt(opts, "entrants"))
	if len(entrants) == 0 {
		entrants = store.Fixture()
	}

	sched, err := bracket.Generate(entrants, bo)
	if err != nil && !errors.Is(err, bracket.ErrInsufficientEntrants) {
		resp.Data.Content = fmt.Sprintf("Error building fixture: %v", err)
		log.Printf("discordbot.fixture: %v", resp.Data.Content)
		return resp
	}
	sched.AssignDates(start, bracket.Weekly)

	if err == nil && boolOpt(opts, "save") {
		if err := store.SaveFixture(entrants); err != nil {
			log.Printf("discordbot.fixture: failed to save entrants: %v", err)
		}
	}

	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(bracket.BuildScheduleOutput(sched)))

	if err == nil && boolOpt(opts, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

// drawRulesCmdHandler handles /draw rules
func drawRulesCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	rules := store.Rules()

	var sb strings.Builder
	if len(rules.Rules) == 0 {
		sb.WriteString("No rules yet.\n")
	}
	for _, r := range rules.Rules {
		sb.WriteString(fmt.Sprintf("%v\n", r))
	}
	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(sb.String()))

	if boolOpt(subOptions(inter), "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
