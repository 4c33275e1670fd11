package models

import (
	"time"
)

// ReactionTrigger maps a single emoji to the role it grants. Emoji values are
// unique within one definition; the same role may be reachable through more
// than one emoji.
type ReactionTrigger struct {
	Emoji  string `json:"emoji"`
	RoleID string `json:"roleId"`
	Label  string `json:"label"`
	Style  string `json:"style"`
}

// MessageEmbed is one embed block of a reaction-role message payload.
type MessageEmbed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
}

// MessagePayload describes the message content rendered for a reaction-role
// definition. The engine stores it verbatim; rendering happens downstream.
type MessagePayload struct {
	Content string         `json:"content,omitempty"`
	Embeds  []MessageEmbed `json:"embeds,omitempty"`
}

// ReactionRole is one reaction-role definition. A definition is "unbound"
// until the owning message is posted, at which point MessageID and ChannelID
// are set together; they are never set independently.
type ReactionRole struct {
	ID        string            `db:"id" json:"id"`
	GuildID   string            `db:"guild_id" json:"guildId"`
	UniqueID  string            `db:"unique_id" json:"uniqueId"` // stable per-guild key, assigned before the message exists
	Name      string            `db:"name" json:"name"`
	Message   MessagePayload    `db:"message" json:"message"`
	Triggers  []ReactionTrigger `db:"triggers" json:"triggers"`
	MessageID *string           `db:"message_id" json:"messageId"`
	ChannelID *string           `db:"channel_id" json:"channelId"`
	CreatedAt time.Time         `db:"created_at" json:"createdAt"`
}

// Bound reports whether the definition has been attached to a posted message.
func (r *ReactionRole) Bound() bool {
	return r.MessageID != nil && r.ChannelID != nil
}

// ReactionRolePatch is a partial update for a definition. Nil fields are left
// untouched.
type ReactionRolePatch struct {
	Name     *string
	Message  *MessagePayload
	Triggers []ReactionTrigger
}
