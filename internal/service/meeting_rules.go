package service

import "github.com/noah-isme/alumni-mentorship-api/internal/models"

// IsLocked reports whether a meeting occurrence can no longer be edited: some
// status for it is Completed and Approved.
func IsLocked(statuses []models.MeetingStatus) bool {
	for _, st := range statuses {
		if st.Status == models.MeetingStatusCompleted && st.Approval == models.ApprovalApproved {
			return true
		}
	}
	return false
}

// OverallStatus collapses the statuses of one occurrence into a display label.
// The first matching rule wins: any Rejected, an Approved Postponed, any
// Cancelled, an Approved Completed, then the first record's approval.
func OverallStatus(statuses []models.MeetingStatus) string {
	if len(statuses) == 0 {
		return string(models.ApprovalPending)
	}
	if anyStatus(statuses, func(st models.MeetingStatus) bool { return st.Approval == models.ApprovalRejected }) {
		return string(models.ApprovalRejected)
	}
	if anyStatus(statuses, func(st models.MeetingStatus) bool {
		return st.Status == models.MeetingStatusPostponed && st.Approval == models.ApprovalApproved
	}) {
		return string(models.MeetingStatusPostponed)
	}
	if anyStatus(statuses, func(st models.MeetingStatus) bool { return st.Status == models.MeetingStatusCancelled }) {
		return string(models.MeetingStatusCancelled)
	}
	if IsLocked(statuses) {
		return string(models.MeetingStatusCompleted)
	}
	if statuses[0].Approval != "" {
		return string(statuses[0].Approval)
	}
	return string(models.ApprovalPending)
}

func anyStatus(statuses []models.MeetingStatus, match func(models.MeetingStatus) bool) bool {
	for _, st := range statuses {
		if match(st) {
			return true
		}
	}
	return false
}

// groupStatusesByMeeting indexes records by meeting identifier, keeping order.
func groupStatusesByMeeting(statuses []models.MeetingStatus) map[string][]models.MeetingStatus {
	grouped := make(map[string][]models.MeetingStatus)
	for _, st := range statuses {
		grouped[st.MeetingID] = append(grouped[st.MeetingID], st)
	}
	return grouped
}

func annotateEntry(entry *models.MeetingDateEntry, statuses []models.MeetingStatus) {
	entry.Locked = IsLocked(statuses)
	entry.OverallStatus = OverallStatus(statuses)
}
