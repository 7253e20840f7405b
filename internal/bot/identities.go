package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"
)

// BotIdentity is one profile from the bot pool data file.
type BotIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "easy", "medium", "hard"
	AvatarIndex int    `json:"avatar_index"`
}

var (
	botIdentities []BotIdentity
	botConfigMap  map[string]BotIdentity
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

var fallbackDifficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// LoadIdentities loads the bot profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		if err := json.Unmarshal(data, &botIdentities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		botConfigMap = make(map[string]BotIdentity, len(botIdentities))
		for _, identity := range botIdentities {
			if identity.UserID != "" {
				botConfigMap[identity.UserID] = identity
			}
		}
	})
	return loadErr
}

// ProvisionBots ensures the bot accounts exist in Nakama and carry the
// is_bot metadata used by clients.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) error {
	provisionOnce.Do(func() {
		if botConfigMap == nil {
			botConfigMap = make(map[string]BotIdentity)
		}
		for i := range botIdentities {
			identity := &botIdentities[i]
			if identity.DeviceID == "" {
				continue
			}

			userID, username, _, err := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
			if err != nil {
				logger.Error("ProvisionBots: failed to authenticate bot %s: %v", identity.Username, err)
				continue
			}
			identity.UserID = userID
			identity.Username = username

			metadata := map[string]interface{}{
				"is_bot":       true,
				"difficulty":   identity.Difficulty,
				"avatar_index": identity.AvatarIndex,
			}
			if err := nk.AccountUpdateId(ctx, userID, identity.Username, metadata, identity.DisplayName, "", "", "", ""); err != nil {
				logger.Warn("ProvisionBots: failed to update bot account %s: %v", userID, err)
			}

			botConfigMap[identity.UserID] = *identity
			logger.Info("ProvisionBots: bot %s (%s) ready, difficulty %s", identity.DisplayName, userID, identity.Difficulty)
		}
	})
	return nil
}

// GetBotConfig returns the identity for a bot user id.
func GetBotConfig(userID string) (BotIdentity, bool) {
	config, ok := botConfigMap[userID]
	return config, ok
}

// GetBotDisplayName returns the display name for a bot id, or "".
func GetBotDisplayName(userID string) string {
	identity, ok := botConfigMap[userID]
	if !ok {
		return ""
	}
	if identity.DisplayName == "" {
		return identity.Username
	}
	return identity.DisplayName
}

// GetBotIdentity returns an identity for a seat index, cycling the pool. With
// no pool loaded it synthesizes one, cycling the difficulty tiers.
func GetBotIdentity(index int) BotIdentity {
	if len(botIdentities) == 0 {
		return BotIdentity{
			UserID:      fmt.Sprintf("bot-%d", index),
			DisplayName: fmt.Sprintf("AI Player %d", index+1),
			Difficulty:  fallbackDifficulties[index%len(fallbackDifficulties)],
		}
	}
	return botIdentities[index%len(botIdentities)]
}

// IsBot reports whether the user id belongs to the bot pool.
func IsBot(userID string) bool {
	if _, ok := botConfigMap[userID]; ok {
		return true
	}
	return strings.HasPrefix(userID, "bot-")
}
