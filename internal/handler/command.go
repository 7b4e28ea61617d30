package handler

import (
	"context"
	"strings"
	"unicode"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/model"
	"telegram-bot-framework/pkg/telegram"
)

// CommandArgs holds the parsed input of a bot command.
type CommandArgs struct {
	// Name is the command without the leading slash and bot suffix.
	Name string
	// RawInput is the whole message text.
	RawInput string
	// ArgsInput is the text after the command, e.g. "argument" in
	// "/command@bot argument".
	ArgsInput string
}

// CommandFunc runs a matched command.
type CommandFunc func(ctx context.Context, b bot.Bot, u telegram.Update, args CommandArgs) (model.HandlingResult, error)

// Command handles "/name", "/name args" and "/name@bot args" messages.
type Command struct {
	name string
	run  CommandFunc
}

// NewCommand creates a command handler. name is given without the slash.
func NewCommand(name string, run CommandFunc) *Command {
	return &Command{name: strings.TrimPrefix(name, "/"), run: run}
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) CanHandle(b bot.Bot, u telegram.Update) bool {
	args, ok := ParseCommand(u, b.User().Username)
	return ok && strings.EqualFold(args.Name, c.name)
}

func (c *Command) Handle(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error) {
	args, ok := ParseCommand(u, b.User().Username)
	if !ok {
		return model.Continue, ErrNotCommand
	}
	return c.run(ctx, b, u, args)
}

// ParseCommand extracts the command from a text message. A "@bot" suffix is
// accepted only when it names botUsername.
func ParseCommand(u telegram.Update, botUsername string) (CommandArgs, bool) {
	if u.Message == nil {
		return CommandArgs{}, false
	}

	text := strings.TrimSpace(u.Message.Text)
	if !strings.HasPrefix(text, "/") {
		return CommandArgs{}, false
	}

	head, rest := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		head, rest = text[:i], text[i:]
	}

	name, suffix, hasSuffix := strings.Cut(head[1:], "@")
	if name == "" {
		return CommandArgs{}, false
	}
	if hasSuffix && (botUsername == "" || !strings.EqualFold(suffix, botUsername)) {
		return CommandArgs{}, false
	}

	return CommandArgs{
		Name:      name,
		RawInput:  u.Message.Text,
		ArgsInput: strings.TrimSpace(rest),
	}, true
}
