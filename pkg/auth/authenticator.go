package auth

import "log/slog"

// authenticator answers the single identity question the bot has: whether
// a user may run admin commands. Group traffic itself is never gated.
type authenticator struct {
	adminUserIDs []int64
}

func NewAuthenticator(adminUserIDs []int64) *authenticator {
	slog.Info("telegram admin user IDs", "user_ids", adminUserIDs)

	return &authenticator{
		adminUserIDs: adminUserIDs,
	}
}

func (a *authenticator) IsAdmin(userID int64) bool {
	for _, id := range a.adminUserIDs {
		if userID == id {
			return true
		}
	}
	return false
}
