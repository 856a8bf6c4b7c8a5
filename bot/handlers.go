/* handlers.go
 * Contains testable handler methods that accept the DiscordSession interface. The runtime wiring to
 * *discordgo.Session lives in bot_runtime.go.
 */

package bot

import (
	"fmt"
	"log"
	"strings"

	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

// helpMessageHandler handles the $help command
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Tournament Pool Bot\n")
	res.WriteString("`$details`: shows information about the tournament\n")
	res.WriteString("`$set team1 ... teamN`: sets your picks. There is fuzzy matching on names, however you should try and have a close match for the best results. Names that contain two or more words need to be encased in \" (e.g. \"Michigan State\")\n")
	res.WriteString("`$check`: shows the current status of each of your picks and your score bounds\n")
	res.WriteString("`$standings`: shows the pool standings sorted by current score. Users with the same score share a rank\n")
	res.WriteString("`$scenarios`: shows everyone's guaranteed and potential final scores over every way the bracket could still play out\n")
	res.WriteString("`$round`: shows the round the tournament is currently in\n")
	res.WriteString("`$upsets`: shows the games won by the worse seeded team so far\n")
	res.WriteString("`$teams`: shows the teams in the bracket. Use this list to set your picks\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// detailsHandler handles the $details command
func (b *Bot) detailsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	info, err := b.APIPtr.GetDetails()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occured")
		return
	}
	var res strings.Builder
	for i := range info {
		res.WriteString(fmt.Sprintf("%s\n", info[i]))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// setPicksHandler processes the user input for the $set command, validates the picks and updates the
// values stored in the db
func (b *Bot) setPicksHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	res := fmt.Sprintf("%s's picks have been updated\n", user.Username)

	// We use splitter here instead of go's built in splitter so that team names containing spaces,
	// e.g. "Michigan State", are recognised as one team not two
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	msg, _ := spaceSplitter.Split(message.Content)
	userPicks := msg[1:]

	err := b.APIPtr.SetUserPicks(user, userPicks)
	if err != nil {
		log.Println(err)
		res = fmt.Sprintf("An error occured setting %s's picks: %s", user.Username, err)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// checkPicksHandler handles the $check command
func (b *Bot) checkPicksHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	res, err := b.APIPtr.CheckPicks(user)
	if err != nil {
		log.Println(err)
		res = fmt.Sprintf("Could not check %s's picks: %s", user.Username, err)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// standingsHandler handles the $standings command
func (b *Bot) standingsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.GetStandings()
	if err != nil {
		log.Println(err)
		res = fmt.Sprintf("An error occured getting the standings: %s", err)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// scenariosHandler handles the $scenarios command
func (b *Bot) scenariosHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.GetScenarios()
	if err != nil {
		log.Println(err)
		res = fmt.Sprintf("An error occured computing scenarios: %s", err)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// roundHandler handles the $round command
func (b *Bot) roundHandler(session DiscordSession, message *discordgo.MessageCreate) {
	round, err := b.APIPtr.GetCurrentRound()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured getting the current round")
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("The tournament is in the %s\n", round))
}

// upsetsHandler handles the $upsets command
func (b *Bot) upsetsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.GetUpsets()
	if err != nil {
		log.Println(err)
		res = "An error occured getting the upsets list"
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// teamsHandler handles the $teams command
func (b *Bot) teamsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	teams, err := b.APIPtr.GetTeams()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured getting the teams list")
		return
	}

	var res strings.Builder
	res.WriteString("Teams in the bracket are:\n")
	for _, team := range teams {
		res.WriteString(fmt.Sprintf("- %s\n", team))
	}

	session.ChannelMessageSend(message.ChannelID, res.String())
}

// newMessageHandler routes messages to the appropriate handlers.
// botUserID is the bot's user ID to prevent self-responses.
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$details"):
		b.detailsHandler(session, message)

	case startsWith(message.Content, "$set"):
		b.setPicksHandler(session, message)

	case startsWith(message.Content, "$check"):
		b.checkPicksHandler(session, message)

	case startsWith(message.Content, "$standings"):
		b.standingsHandler(session, message)

	case startsWith(message.Content, "$scenarios"):
		b.scenariosHandler(session, message)

	case startsWith(message.Content, "$round"):
		b.roundHandler(session, message)

	case startsWith(message.Content, "$upsets"):
		b.upsetsHandler(session, message)

	case startsWith(message.Content, "$teams"):
		b.teamsHandler(session, message)
	}
}
