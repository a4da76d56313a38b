package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

// fakeSender records sent messages and counts DM channel creations
type fakeSender struct {
	sent            []string
	sentChannels    []string
	channelsCreated int
	sendErr         error
}

func (f *fakeSender) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sentChannels = append(f.sentChannels, channelID)
	f.sent = append(f.sent, content)
	return &discordgo.Message{}, nil
}

func (f *fakeSender) UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	f.channelsCreated++
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

type MessagingServiceTestSuite struct {
	suite.Suite
	sender *fakeSender
	svc    Service
	ctx    context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.sender = &fakeSender{}

	svc, err := New(&Config{Session: s.sender})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestSendToGame() {
	err := s.svc.SendToGame(s.ctx, &SendToGameInput{
		ChannelID: "channel-1",
		Content:   "hello",
	})
	s.Require().NoError(err)
	s.Equal([]string{"channel-1"}, s.sender.sentChannels)
	s.Equal([]string{"hello"}, s.sender.sent)
}

func (s *MessagingServiceTestSuite) TestSendToGameRequiresChannel() {
	err := s.svc.SendToGame(s.ctx, &SendToGameInput{Content: "hello"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestSendToPlayerCachesDMChannel() {
	for i := 0; i < 3; i++ {
		err := s.svc.SendToPlayer(s.ctx, &SendToPlayerInput{
			UserID:  "user-1",
			Content: "psst",
		})
		s.Require().NoError(err)
	}

	// The DM channel is created once and reused
	s.Equal(1, s.sender.channelsCreated)
	s.Equal([]string{"dm-user-1", "dm-user-1", "dm-user-1"}, s.sender.sentChannels)
}

func (s *MessagingServiceTestSuite) TestSendToPlayerPropagatesErrors() {
	s.sender.sendErr = errors.New("gateway closed")

	err := s.svc.SendToPlayer(s.ctx, &SendToPlayerInput{
		UserID:  "user-1",
		Content: "psst",
	})
	s.Error(err)
}
