package infrastructure

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramClient runs a single bot over long polling and delivers
// replies by chat id.
type TelegramClient struct {
	bot  *tgbotapi.BotAPI
	log  *zap.Logger
	stop chan struct{}
}

func NewTelegramClient(token string, log *zap.Logger) (*TelegramClient, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &TelegramClient{
		bot:  bot,
		log:  log,
		stop: make(chan struct{}),
	}, nil
}

// Run polls for updates until Stop is called. Each text message is
// handed to the handler with the chat id as sender.
func (t *TelegramClient) Run(handler func(sender, content string)) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.bot.GetUpdatesChan(u)

	t.log.Info("telegram polling started", zap.String("bot", t.bot.Self.UserName))

	for {
		select {
		case <-t.stop:
			t.log.Info("telegram polling stopped")
			return
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			sender := strconv.FormatInt(update.Message.Chat.ID, 10)
			go handler(sender, update.Message.Text)
		}
	}
}

func (t *TelegramClient) Stop() {
	close(t.stop)
}

// SendMessage delivers a reply to the chat the sender id names.
func (t *TelegramClient) SendMessage(to, content string) error {
	chatID, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", to, err)
	}
	_, err = t.bot.Send(tgbotapi.NewMessage(chatID, content))
	return err
}
