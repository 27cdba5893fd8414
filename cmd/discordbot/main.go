/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/mikeb26/senticl-drawbot/prefs"
)

type TopLevelCommand string

const (
	DrawCmd TopLevelCommand = "draw"
)

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	DrawCmd: drawCmdHandler,
}

// store holds saved selections; main replaces it with the configured
// backend.
var store = prefs.NewStore(nil)

type config struct {
	token     string
	pubKey    ed25519.PublicKey
	appID     string
	cmdID     string
	cmdHash   string
	port      string
	storeBackend string
}

// loadConfig reads the bot settings from the environment, which may be
// seeded from a .env file.
func loadConfig() (*config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &config{
		token:     os.Getenv("DISCORD_BOT_TOKEN"),
		appID:     os.Getenv("DISCORD_APP_ID"),
		cmdID:     os.Getenv("DISCORD_CMD_ID"),
		cmdHash:   os.Getenv("DISCORD_CMD_HASH"),
		port:      os.Getenv("PORT"),
		storeBackend: os.Getenv("DRAWTD_STORE"),
	}
	if cfg.port == "" {
		cfg.port = "8080"
	}
	if cfg.token == "" || cfg.appID == "" {
		return nil, errors.New("DISCORD_BOT_TOKEN and DISCORD_APP_ID are required")
	}

	pubKeyBytes, err := hex.DecodeString(os.Getenv("DISCORD_PUBLIC_KEY"))
	if err != nil || len(pubKeyBytes) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY must be a hex ed25519 key (err:%v)", err)
	}
	cfg.pubKey = ed25519.PublicKey(pubKeyBytes)

	return cfg, nil
}

func newInteractionHandler(ctx context.Context,
	pubKey ed25519.PublicKey) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		if !discordgo.VerifyInteraction(r, pubKey) {
			log.Printf("discordbot.int: failed to verify")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Printf("discordbot.int: failed to read request body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var inter discordgo.Interaction
		if err := inter.UnmarshalJSON(body); err != nil {
			log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
				err, body)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		resp := &discordgo.InteractionResponse{}
		if inter.Type == discordgo.InteractionPing {
			resp.Type = discordgo.InteractionResponsePong
		} else if inter.Type == discordgo.InteractionApplicationCommand {
			hdlr, ok :=
				topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
			if !ok {
				resp.Type = discordgo.InteractionResponseChannelMessageWithSource
				resp.Data = &discordgo.InteractionResponseData{
					Content: fmt.Sprintf("unknown command '%v'",
						inter.ApplicationCommandData().Name),
					Flags: discordgo.MessageFlagsEphemeral,
				}
			} else {
				resp = hdlr(ctx, &inter)
			}
		} else {
			log.Printf("discordbot.int: unimplemented interation type %v: inter:%v",
				inter.Type, inter)
			w.WriteHeader(http.StatusNotImplemented)
			return
		}

		rawResp, err := json.Marshal(resp)
		if err != nil {
			log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if _, err = w.Write(rawResp); err != nil {
			log.Printf("discordbot.int: failed to write resp: err:%v", err)
		}
	}
}

func cmdHash(cmd *discordgo.ApplicationCommand) string {
	cmdJson, err := json.Marshal(cmd)
	if err != nil {
		log.Fatalf("discordbot.reg: failed to marshal cmd: %v", err)
	}
	hash := sha256.Sum256(cmdJson)
	return hex.EncodeToString(hash[:])
}

func shouldUpdateCmdRegistration(cmd *discordgo.ApplicationCommand,
	lastHash string) bool {

	hexString := cmdHash(cmd)
	shouldUpdate := (hexString != lastHash)

	if shouldUpdate {
		log.Printf("discordbot.reg: updating cmd reg; please set DISCORD_CMD_HASH to %v",
			hexString)
	}

	return shouldUpdate
}

func registerSlashCommands(client *discordgo.Session, cfg *config) {
	drawCmd := drawCommand()

	if cfg.cmdID == "" {
		cmd, err := client.ApplicationCommandCreate(cfg.appID, "", drawCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v", drawCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: registered %v(cmdID:%v); please set DISCORD_CMD_ID",
			cmd.Name, cmd.ID)
	} else if shouldUpdateCmdRegistration(drawCmd, cfg.cmdHash) {
		cmd, err := client.ApplicationCommandEdit(cfg.appID, "", cfg.cmdID, drawCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to update %v: %v", drawCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: updated %v(cmdID:%v)", cmd.Name, cmd.ID)
	}
}

func main() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("discordbot.init: %v", err)
	}

	client, err := discordgo.New("Bot " + cfg.token)
	if err != nil {
		log.Fatalf("dicordbot.init: Failed to initialize discord client: %v", err)
	}

	var closer io.Closer
	store, closer, err = prefs.OpenStore(ctx, cfg.storeBackend)
	if err != nil {
		log.Fatalf("discordbot.init: %v", err)
	}
	defer closer.Close()

	go registerSlashCommands(client, cfg)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v:%v", hostname, cfg.port)

	http.HandleFunc("/DiscordBot/Interaction", newInteractionHandler(ctx, cfg.pubKey))
	if err := http.ListenAndServe(":"+cfg.port, nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
