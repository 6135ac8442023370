package automation

import (
	"regexp"
	"strings"
)

// Platform is the messaging platform a user identifier belongs to.
type Platform string

const (
	PlatformDiscord Platform = "discord"
	PlatformEmail   Platform = "email"
	PlatformUnknown Platform = "unknown"
)

var discordSnowflake = regexp.MustCompile(`^\d{17,19}$`)

// DetectPlatform classifies a raw user identifier.
func DetectPlatform(userID string) Platform {
	switch {
	case discordSnowflake.MatchString(userID):
		return PlatformDiscord
	case strings.Contains(userID, "@"):
		return PlatformEmail
	default:
		return PlatformUnknown
	}
}

// FormatUserIdentifier returns a human-readable name for a raw user identifier.
func FormatUserIdentifier(userID string) string {
	switch DetectPlatform(userID) {
	case PlatformDiscord:
		return "Discord User " + userID
	case PlatformEmail:
		return userID
	default:
		return "User " + userID
	}
}

// UserInfo describes the sender of the message that triggered an email.
type UserInfo struct {
	Metadata    map[string]any
	ID          string
	DisplayName string
	Platform    Platform
}

// NewUserInfo derives UserInfo from a raw user identifier.
func NewUserInfo(userID string, metadata map[string]any) UserInfo {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return UserInfo{
		ID:          userID,
		DisplayName: FormatUserIdentifier(userID),
		Platform:    DetectPlatform(userID),
		Metadata:    metadata,
	}
}

func (u UserInfo) stateValue() map[string]any {
	return map[string]any{
		"id":          u.ID,
		"displayName": u.DisplayName,
		"platform":    string(u.Platform),
		"metadata":    u.Metadata,
	}
}
