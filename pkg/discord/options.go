package discord

import "github.com/bwmarrin/discordgo"

// FindOption returns the option named name, or nil.
func FindOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, o := range opts {
		if o != nil && o.Name == name {
			return o
		}
	}
	return nil
}

// StringOption returns the string value of the option named name, or "".
func StringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	o := FindOption(opts, name)
	if o == nil {
		return ""
	}
	if s, ok := o.Value.(string); ok {
		return s
	}
	return ""
}
