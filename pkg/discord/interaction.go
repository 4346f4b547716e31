package discord

import "github.com/bwmarrin/discordgo"

func newInteraction(i *discordgo.Interaction) *Interaction {
	data := i.ApplicationCommandData()

	ic := &Interaction{
		ID:          i.ID,
		CommandName: data.Name,
		ChannelID:   i.ChannelID,
		Options:     make(map[string]string, len(data.Options)),
		raw:         i,
	}

	switch {
	case i.Member != nil && i.Member.User != nil:
		ic.UserID, ic.Username = i.Member.User.ID, i.Member.User.Username
	case i.User != nil:
		ic.UserID, ic.Username = i.User.ID, i.User.Username
	}

	for _, opt := range data.Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			ic.Options[opt.Name] = opt.StringValue()
		}
	}
	return ic
}

func toApplicationCommand(cmd Command) *discordgo.ApplicationCommand {
	out := &discordgo.ApplicationCommand{
		Name:        cmd.Name,
		Description: cmd.Description,
		Type:        discordgo.ChatApplicationCommand,
	}

	for _, opt := range cmd.Options {
		o := &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        opt.Name,
			Description: opt.Description,
			Required:    opt.Required,
		}
		for _, c := range opt.Choices {
			o.Choices = append(o.Choices, &discordgo.ApplicationCommandOptionChoice{Name: c.Name, Value: c.Value})
		}
		out.Options = append(out.Options, o)
	}
	return out
}
