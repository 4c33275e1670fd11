package testutil

import (
	"warden/models"

	"github.com/google/uuid"
)

// CreateTestReactionRole creates an unbound reaction role definition with one
// trigger and fresh identifiers.
func CreateTestReactionRole(guildID, name string) *models.ReactionRole {
	return &models.ReactionRole{
		ID:       uuid.NewString(),
		GuildID:  guildID,
		UniqueID: uuid.NewString(),
		Name:     name,
		Message: models.MessagePayload{
			Content: "React below to pick your roles",
		},
		Triggers: []models.ReactionTrigger{
			{Emoji: "✅", RoleID: "123", Label: "Verified", Style: "success"},
		},
	}
}

// CreateTestReactionRoleWithTriggers creates a definition with a specific
// trigger list.
func CreateTestReactionRoleWithTriggers(guildID, name string, triggers []models.ReactionTrigger) *models.ReactionRole {
	rr := CreateTestReactionRole(guildID, name)
	rr.Triggers = triggers
	return rr
}
