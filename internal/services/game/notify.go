package game

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/randomnetcat/hitlerbot/internal/engine"
	"github.com/randomnetcat/hitlerbot/internal/models"
	"github.com/randomnetcat/hitlerbot/internal/services/messaging"
)

// notify turns engine events into Discord messages. It runs strictly
// after the update committed; delivery failures are logged and never
// fail the user action.
func (s *service) notify(ctx context.Context, game *models.Game, events []engine.Event) {
	for _, event := range events {
		switch e := event.(type) {
		case engine.PlayerJoinedEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("%s joined the game (%d players).", e.Player.Name, e.PlayerCount))

		case engine.PlayerLeftEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("%s left the game (%d players).", e.Player.Name, e.PlayerCount))

		case engine.GameStartedEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("The game has started with %d players. Check your DMs for your secret role.", e.PlayerCount))
			for _, notice := range e.Notices {
				s.sendToPlayer(ctx, game, notice.Player, roleNoticeText(game, notice))
			}

		case engine.ElectionStartedEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("%s is the presidential candidate. Waiting for a chancellor nomination.", s.mention(game, e.President)))

		case engine.ChancellorNominatedEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("%s nominates %s as chancellor. Everyone, cast your vote!",
				s.mention(game, e.Government.President), s.mention(game, e.Government.Chancellor)))

		case engine.VoteRecordedEvent:
			// Votes stay secret until the election resolves

		case engine.GovernmentElectedEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("The government of president %s and chancellor %s is elected. %s",
				s.mention(game, e.Government.President), s.mention(game, e.Government.Chancellor), voteSummary(game, e.Votes)))

		case engine.GovernmentRejectedEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("The proposed government is rejected. %s The election tracker is at %d.",
				voteSummary(game, e.Votes), e.Tracker))

		case engine.PresidentPoliciesEvent:
			s.sendToPlayer(ctx, game, e.President, fmt.Sprintf("You drew: %s. Choose one policy to discard.", policyList(e.Policies)))

		case engine.ChancellorPoliciesEvent:
			s.sendToPlayer(ctx, game, e.Chancellor, fmt.Sprintf("You received: %s. Choose one policy to enact.", policyList(e.Policies)))

		case engine.PolicyEnactedEvent:
			text := fmt.Sprintf("A %s policy is enacted. The board stands at %d liberal / %d fascist.",
				e.Policy, e.LiberalPolicies, e.FascistPolicies)
			if e.ByChaos {
				text = "The country is thrown into chaos! " + text
			}
			s.sendToGame(ctx, game, text)

		case engine.PolicyPeekEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("%s peeks at the top three policies.", s.mention(game, e.President)))
			s.sendToPlayer(ctx, game, e.President, fmt.Sprintf("The top three policies are: %s.", policyList(e.Policies)))

		case engine.PowerPendingEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("%s must now use the %s power.", s.mention(game, e.President), powerLabel(e.Power)))

		case engine.InvestigationEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("%s investigates %s.", s.mention(game, e.President), s.mention(game, e.Target)))
			s.sendToPlayer(ctx, game, e.President, fmt.Sprintf("%s is a member of the %s party.", s.mention(game, e.Target), e.Party))

		case engine.SpecialElectionEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("%s calls a special election: %s will be the next presidential candidate.",
				s.mention(game, e.President), s.mention(game, e.Target)))

		case engine.ExecutionEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("%s executes %s.", s.mention(game, e.President), s.mention(game, e.Target)))

		case engine.VetoRequestedEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("Chancellor %s requests a veto. President %s must approve or reject it.",
				s.mention(game, e.Government.Chancellor), s.mention(game, e.Government.President)))

		case engine.VetoApprovedEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("The veto is approved; both policies are discarded. The election tracker is at %d.", e.Tracker))

		case engine.VetoRejectedEvent:
			s.sendToGame(ctx, game, fmt.Sprintf("President %s rejects the veto. Chancellor %s must enact a policy.",
				s.mention(game, e.Government.President), s.mention(game, e.Government.Chancellor)))

		case engine.GameEndedEvent:
			s.sendToGame(ctx, game, gameEndedText(game, e))
		}
	}
}

// sendToGame posts to the game channel, logging failures
func (s *service) sendToGame(ctx context.Context, game *models.Game, content string) {
	err := s.messaging.SendToGame(ctx, &messaging.SendToGameInput{
		ChannelID: game.ChannelID,
		Content:   content,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"game_id":    game.ID,
			"channel_id": game.ChannelID,
		}).WithError(err).Warn("failed to send game message")
	}
}

// sendToPlayer DMs a seat, logging failures
func (s *service) sendToPlayer(ctx context.Context, game *models.Game, number engine.PlayerNumber, content string) {
	identity, ok := game.State.Players[number]
	if !ok {
		return
	}

	err := s.messaging.SendToPlayer(ctx, &messaging.SendToPlayerInput{
		UserID:  identity.UserID,
		Content: content,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"game_id": game.ID,
			"player":  number,
		}).WithError(err).Warn("failed to send player message")
	}
}

// mention renders a seat as a name with its seat number
func (s *service) mention(game *models.Game, number engine.PlayerNumber) string {
	if identity, ok := game.State.Players[number]; ok {
		return fmt.Sprintf("%s (seat %d)", identity.Name, number)
	}
	return fmt.Sprintf("seat %d", number)
}

// roleNoticeText builds the secret start-of-game DM for one player
func roleNoticeText(game *models.Game, notice engine.RoleNotice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your secret role is **%s**.", notice.Role)

	if len(notice.KnownFascists) > 0 {
		names := make([]string, 0, len(notice.KnownFascists))
		for _, number := range notice.KnownFascists {
			if number == notice.Player {
				continue
			}
			names = append(names, seatName(game, number))
		}
		if len(names) > 0 {
			fmt.Fprintf(&b, " Your fellow fascists: %s.", strings.Join(names, ", "))
		}
	}

	if notice.KnownHitler != 0 && notice.KnownHitler != notice.Player {
		fmt.Fprintf(&b, " Hitler is %s.", seatName(game, notice.KnownHitler))
	}

	return b.String()
}

// gameEndedText builds the end-of-game announcement with role reveal
func gameEndedText(game *models.Game, event engine.GameEndedEvent) string {
	var b strings.Builder

	switch event.Reason {
	case engine.WinReasonHitlerKilled:
		b.WriteString("Hitler has been executed. The **Liberals** win!")
	case engine.WinReasonHitlerChancellor:
		b.WriteString("Hitler has been elected chancellor. The **Fascists** win!")
	default:
		if event.Winner == engine.PartyLiberal {
			b.WriteString("Five liberal policies are enacted. The **Liberals** win!")
		} else {
			b.WriteString("Six fascist policies are enacted. The **Fascists** win!")
		}
	}

	numbers := make([]engine.PlayerNumber, 0, len(event.Roles))
	for number := range event.Roles {
		numbers = append(numbers, number)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	b.WriteString("\nThe roles were:")
	for _, number := range numbers {
		fmt.Fprintf(&b, "\n- %s: %s", seatName(game, number), event.Roles[number])
	}

	return b.String()
}

// seatName renders a seat's display name
func seatName(game *models.Game, number engine.PlayerNumber) string {
	if identity, ok := game.State.Players[number]; ok {
		return identity.Name
	}
	return fmt.Sprintf("seat %d", number)
}

// voteSummary renders a resolved election's ballots
func voteSummary(game *models.Game, votes map[engine.PlayerNumber]engine.Vote) string {
	numbers := make([]engine.PlayerNumber, 0, len(votes))
	for number := range votes {
		numbers = append(numbers, number)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	parts := make([]string, 0, len(numbers))
	for _, number := range numbers {
		parts = append(parts, fmt.Sprintf("%s: %s", seatName(game, number), votes[number]))
	}

	return "Votes: " + strings.Join(parts, ", ") + "."
}

// policyList renders a policy hand
func policyList(policies []engine.Policy) string {
	parts := make([]string, 0, len(policies))
	for i, policy := range policies {
		parts = append(parts, fmt.Sprintf("%d) %s", i+1, policy))
	}
	return strings.Join(parts, ", ")
}

// powerLabel renders a power for announcements
func powerLabel(power engine.Power) string {
	switch power {
	case engine.PowerPolicyPeek:
		return "policy peek"
	case engine.PowerInvestigate:
		return "investigation"
	case engine.PowerSpecialElection:
		return "special election"
	case engine.PowerExecution:
		return "execution"
	default:
		return string(power)
	}
}
