/* main.go
 * The "main" method for running the tournament pool. For details see `readme.md`
 * Usage: go run main.go -tournamentName="<name>" -bracket="<path>"
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/nick-merlino/ncaa-tournament-manager/api/api"
	"github.com/nick-merlino/ncaa-tournament-manager/bot"
	"github.com/nick-merlino/ncaa-tournament-manager/web"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	// Flags
	tournamentNamePtr := flag.String("tournamentName", "march2026", "Tournament name, used as the database name")
	bracketPtr := flag.String("bracket", "tournament_bracket.json", "Path to the bracket configuration file")
	addrPtr := flag.String("addr", ":8080", "Listen address for the result webhook server")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal("Invalid \"test\" flag. Should be true or false")
	}
	var discordToken string
	if useTestBot {
		discordToken = os.Getenv("DISCORD_BETA_TOKEN")
	} else {
		discordToken = os.Getenv("DISCORD_PROD_TOKEN")
	}

	apiPtr, err := api.NewAPI(*tournamentNamePtr, os.Getenv("MONGO_PROD_URI"), *bracketPtr)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err := apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	// Seed the Round of 64 games on first run
	if err := apiPtr.ImportBracket(); err != nil {
		log.Fatalf("failed to import bracket: %v", err)
	}

	// Result webhook server runs alongside the bot
	go func() {
		cfg := web.Config{Addr: *addrPtr, API: apiPtr}
		if err := web.Start(cfg); err != nil {
			log.Fatalf("web server stopped: %v", err)
		}
	}()

	// Init bot and run
	poolBot, err := bot.NewBot(discordToken, apiPtr)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := poolBot.Run(); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}
