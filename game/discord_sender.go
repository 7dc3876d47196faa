package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/deadloct/phase-scorekeeper/settings"
	log "github.com/sirupsen/logrus"
)

const codeFence = "```"

type SendingFunc func(str string) (*discordgo.Message, error)

// DiscordSender mirrors standings into a Discord channel.
type DiscordSender struct {
	channelID string
	session   *discordgo.Session
}

func NewDiscordSender(session *discordgo.Session, channelID string) *DiscordSender {
	return &DiscordSender{
		channelID: channelID,
		session:   session,
	}
}

func (s *DiscordSender) SendNormal(str string) error {
	_, err := s.sendBlock(str, settings.DiscordMaxMessageLength, s.embed)
	return err
}

// SendTable wraps every chunk in a code block so columns stay aligned.
func (s *DiscordSender) SendTable(str string) error {
	limit := settings.DiscordMaxMessageLength - 2*len(codeFence) - 2
	_, err := s.sendBlock(strings.TrimRight(str, "\n"), limit, s.table)
	return err
}

// sendBlock packs whole lines into messages no longer than limit.
func (s *DiscordSender) sendBlock(str string, limit int, sender SendingFunc) (*discordgo.Message, error) {
	lines := strings.Split(str, "\n")

	var (
		msg     *discordgo.Message
		errs    []error
		err     error
		payload string
	)

	for i := 0; i < len(lines); i++ {
		if len(lines[i]) > limit {
			if payload != "" {
				msg, err = sender(payload)
				errs = append(errs, err)
				payload = ""
			}

			msg, err = s.sendLine(lines[i], limit, sender)
			errs = append(errs, err)
			continue
		}

		if payload != "" && len(payload)+len(lines[i])+1 > limit {
			msg, err = sender(payload)
			errs = append(errs, err)
			payload = ""
		}

		if payload == "" {
			payload = lines[i]
		} else {
			payload = fmt.Sprintf("%s\n%s", payload, lines[i])
		}
	}

	if payload != "" {
		msg, err = sender(payload)
		errs = append(errs, err)
	}

	return msg, errors.Join(errs...)
}

func (s *DiscordSender) sendLine(str string, limit int, sender SendingFunc) (*discordgo.Message, error) {
	words := strings.Fields(str)
	var (
		line string
		msg  *discordgo.Message
		err  error
	)

	for _, word := range words {
		// Space character between line and word is why this uses >= instead of >
		if line != "" && len(line)+len(word)+1 >= limit {
			if msg, err = sender(line); err != nil {
				return nil, err
			}

			line = ""
		}

		if line == "" {
			line = word
		} else {
			line = fmt.Sprintf("%s %s", line, word)
		}
	}

	if len(line) > 0 {
		if msg, err = sender(line); err != nil {
			return nil, err
		}
	}

	return msg, nil
}

func (s *DiscordSender) embed(str string) (*discordgo.Message, error) {
	log.Tracef("sending embed of length %v", len(str))
	msg, err := s.session.ChannelMessageSendEmbed(s.channelID, &discordgo.MessageEmbed{
		Description: str,
	})
	if err != nil {
		log.Errorf("error sending embed of length %v: %v", len(str), err)
	} else {
		log.Tracef("successfully sent embed of length %v", len(str))
	}

	return msg, err
}

func (s *DiscordSender) table(str string) (*discordgo.Message, error) {
	log.Tracef("sending table of length %v", len(str))
	msg, err := s.session.ChannelMessageSend(s.channelID, s.fence(str))
	if err != nil {
		log.Errorf("error sending table of length %v: %v", len(str), err)
	} else {
		log.Tracef("successfully sent table of length %v", len(str))
	}

	err = errors.Join(err, s.sendBlankLine())
	return msg, err
}

func (s *DiscordSender) sendBlankLine() error {
	_, err := s.session.ChannelMessageSend(s.channelID, settings.WhiteSpaceChar)
	if err != nil {
		log.Errorf("error sending blank line: %v", err)
	}

	return err
}

func (s *DiscordSender) fence(str string) string {
	return fmt.Sprintf("%s\n%s\n%s", codeFence, str, codeFence)
}
