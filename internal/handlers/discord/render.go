package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/randomnetcat/hitlerbot/internal/engine"
	"github.com/randomnetcat/hitlerbot/internal/models"
)

// renderBoard builds the main game embed for any lifecycle state
func renderBoard(game *models.Game) *discordgo.MessageEmbed {
	state := game.State

	embed := &discordgo.MessageEmbed{
		Title: "Secret Hitler",
		Color: 0xc0392b,
	}

	switch state.Status {
	case engine.StatusJoining:
		embed.Description = fmt.Sprintf("Waiting for players (%d/%d). A game needs at least %d players.",
			len(state.Lobby), engine.MaxPlayers, engine.MinPlayers)

		if len(state.Lobby) > 0 {
			names := make([]string, 0, len(state.Lobby))
			for _, player := range state.Lobby {
				names = append(names, player.Name)
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Players",
				Value: strings.Join(names, "\n"),
			})
		}

	case engine.StatusRunning:
		embed.Description = phaseDescription(state)
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{
				Name: "Policies",
				Value: fmt.Sprintf("Liberal: %d/%d\nFascist: %d/%d",
					state.LiberalPolicies, state.Config.LiberalPoliciesToWin,
					state.FascistPolicies, state.Config.FascistPoliciesToWin),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name: "Election tracker",
				Value: fmt.Sprintf("%d/%d failed governments",
					state.Election.Tracker, state.Config.ElectionTrackerMax),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:  "Players",
				Value: playerRoster(state),
			},
		)

	case engine.StatusCompleted:
		if state.Outcome != nil {
			embed.Description = fmt.Sprintf("Game over: the %ss win (%s).",
				state.Outcome.Winner, outcomeLabel(state.Outcome.Reason))
		} else {
			embed.Description = "Game over."
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Players",
			Value: playerRoster(state),
		})
	}

	return embed
}

// playerRoster renders the seat list with execution markers
func playerRoster(state *engine.Game) string {
	var b strings.Builder
	for number := engine.PlayerNumber(1); int(number) <= state.Players.Count(); number++ {
		identity := state.Players[number]
		if state.IsAlive(number) {
			fmt.Fprintf(&b, "%d. %s\n", number, identity.Name)
		} else {
			fmt.Fprintf(&b, "%d. ~~%s~~ (executed)\n", number, identity.Name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// phaseDescription summarizes what the game is waiting for
func phaseDescription(state *engine.Game) string {
	switch phase := state.Phase.(type) {
	case engine.ChancellorSelection:
		return fmt.Sprintf("**%s** must nominate a chancellor.", seatLabel(state, phase.President))
	case engine.Voting:
		return fmt.Sprintf("Vote on the government of president **%s** and chancellor **%s** (%d/%d votes in).",
			seatLabel(state, phase.Government.President), seatLabel(state, phase.Government.Chancellor),
			len(phase.Votes), len(state.AliveNumbers()))
	case engine.PresidentPolicyChoice:
		return fmt.Sprintf("President **%s** is choosing a policy to discard.", seatLabel(state, phase.Government.President))
	case engine.ChancellorPolicyChoice:
		if phase.Veto == engine.VetoRequested {
			return fmt.Sprintf("Chancellor **%s** requested a veto; president **%s** must respond.",
				seatLabel(state, phase.Government.Chancellor), seatLabel(state, phase.Government.President))
		}
		return fmt.Sprintf("Chancellor **%s** is choosing a policy to enact.", seatLabel(state, phase.Government.Chancellor))
	case engine.PowerSelection:
		return fmt.Sprintf("President **%s** must use the **%s** power.", seatLabel(state, phase.President), phase.Power)
	default:
		return "The game is in progress."
	}
}

// seatLabel renders a seat for embeds
func seatLabel(state *engine.Game, number engine.PlayerNumber) string {
	if identity, ok := state.Players[number]; ok {
		return identity.Name
	}
	return fmt.Sprintf("seat %d", number)
}

// outcomeLabel renders a win reason
func outcomeLabel(reason engine.WinReason) string {
	switch reason {
	case engine.WinReasonHitlerKilled:
		return "Hitler was executed"
	case engine.WinReasonHitlerChancellor:
		return "Hitler was elected chancellor"
	default:
		return "policy goal reached"
	}
}

// renderComponents builds the interactive components for the current
// phase. Custom IDs carry the game ID so component handlers can
// recover their context.
func renderComponents(game *models.Game) []discordgo.MessageComponent {
	state := game.State

	switch state.Status {
	case engine.StatusJoining:
		return []discordgo.MessageComponent{discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Join",
					Style:    discordgo.SuccessButton,
					CustomID: componentID(actionJoin, game.ID),
				},
				discordgo.Button{
					Label:    "Leave",
					Style:    discordgo.SecondaryButton,
					CustomID: componentID(actionLeave, game.ID),
				},
				discordgo.Button{
					Label:    "Start game",
					Style:    discordgo.PrimaryButton,
					CustomID: componentID(actionStart, game.ID),
				},
			},
		}}

	case engine.StatusRunning:
		return runningComponents(game)

	default:
		return nil
	}
}

// runningComponents builds the components for a running game's phase
func runningComponents(game *models.Game) []discordgo.MessageComponent {
	state := game.State

	switch phase := state.Phase.(type) {
	case engine.ChancellorSelection:
		options := seatOptions(state, state.EligibleChancellors())
		if len(options) == 0 {
			return nil
		}
		return []discordgo.MessageComponent{discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{discordgo.SelectMenu{
				CustomID:    componentID(actionNominate, game.ID),
				Placeholder: "Nominate a chancellor",
				Options:     options,
			}},
		}}

	case engine.Voting:
		return []discordgo.MessageComponent{discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Ja!",
					Style:    discordgo.SuccessButton,
					CustomID: componentID(actionVoteJa, game.ID),
				},
				discordgo.Button{
					Label:    "Nein!",
					Style:    discordgo.DangerButton,
					CustomID: componentID(actionVoteNein, game.ID),
				},
			},
		}}

	case engine.PresidentPolicyChoice:
		// Policies themselves are DMed; the buttons stay blind
		buttons := make([]discordgo.MessageComponent, 0, len(phase.Policies))
		for i := range phase.Policies {
			buttons = append(buttons, discordgo.Button{
				Label:    fmt.Sprintf("Discard policy %d", i+1),
				Style:    discordgo.SecondaryButton,
				CustomID: componentID(actionDiscard, fmt.Sprintf("%d", i), game.ID),
			})
		}
		return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}

	case engine.ChancellorPolicyChoice:
		if phase.Veto == engine.VetoRequested {
			return []discordgo.MessageComponent{discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Approve veto",
						Style:    discordgo.SuccessButton,
						CustomID: componentID(actionVetoApprove, game.ID),
					},
					discordgo.Button{
						Label:    "Reject veto",
						Style:    discordgo.DangerButton,
						CustomID: componentID(actionVetoReject, game.ID),
					},
				},
			}}
		}

		buttons := make([]discordgo.MessageComponent, 0, len(phase.Policies)+1)
		for i := range phase.Policies {
			buttons = append(buttons, discordgo.Button{
				Label:    fmt.Sprintf("Enact policy %d", i+1),
				Style:    discordgo.SecondaryButton,
				CustomID: componentID(actionEnact, fmt.Sprintf("%d", i), game.ID),
			})
		}
		if state.FascistPolicies >= state.Config.VetoUnlockThreshold && phase.Veto == engine.VetoNotRequested {
			buttons = append(buttons, discordgo.Button{
				Label:    "Request veto",
				Style:    discordgo.DangerButton,
				CustomID: componentID(actionVetoRequest, game.ID),
			})
		}
		return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}

	case engine.PowerSelection:
		options := seatOptions(state, state.EligiblePowerTargets())
		if len(options) == 0 {
			return nil
		}
		return []discordgo.MessageComponent{discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{discordgo.SelectMenu{
				CustomID:    componentID(actionPowerTarget, game.ID),
				Placeholder: fmt.Sprintf("Choose a target (%s)", phase.Power),
				Options:     options,
			}},
		}}

	default:
		return nil
	}
}

// seatOptions builds select menu options for a list of seats
func seatOptions(state *engine.Game, numbers []engine.PlayerNumber) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(numbers))
	for _, number := range numbers {
		options = append(options, discordgo.SelectMenuOption{
			Label: fmt.Sprintf("%d. %s", number, seatLabel(state, number)),
			Value: fmt.Sprintf("%d", number),
		})
	}
	return options
}
