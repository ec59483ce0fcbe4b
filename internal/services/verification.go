package services

import "github.com/yukikurage/volunteer-directory-api/internal/models"

// moderationTargets are the only statuses a moderator may set directly.
var moderationTargets = map[models.VerificationStatus]struct{}{
	models.StatusVerified: {},
	models.StatusRejected: {},
}

// ParseModerationTarget validates a requested moderation target. It is
// called before any storage access.
func ParseModerationTarget(raw string) (models.VerificationStatus, error) {
	status := models.VerificationStatus(raw)
	if _, ok := moderationTargets[status]; !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Hiding is unconditional and reachable from every state. There is no
// self-service way back out of hidden; only a moderation target leaves it.
const hiddenTarget = models.StatusHidden
