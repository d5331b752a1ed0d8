package service

import (
	"github.com/google/uuid"
)

// MembershipDiff is the outcome of diffing a group's stored membership
// against a desired state. Apply order matters: removals first, then role
// changes, then additions.
type MembershipDiff struct {
	ToAdd        map[uuid.UUID]bool // userID -> isApprovalManager
	ToRemove     []uuid.UUID
	ToRoleChange map[uuid.UUID]bool // userID -> new isApprovalManager
}

// Empty reports whether applying the diff would write anything
func (d MembershipDiff) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0 && len(d.ToRoleChange) == 0
}

// DesiredFromSets folds caller-supplied manager and member id lists into the
// desired userID -> isApprovalManager map. A user named in both lists comes
// out as approval manager only: manager status is a privileged superset, not
// an additional row.
func DesiredFromSets(approvalManagerIDs, memberIDs []uuid.UUID) map[uuid.UUID]bool {
	desired := make(map[uuid.UUID]bool, len(approvalManagerIDs)+len(memberIDs))
	for _, id := range memberIDs {
		desired[id] = false
	}
	for _, id := range approvalManagerIDs {
		desired[id] = true
	}
	return desired
}

// DiffMemberships computes the minimal add/remove/role-change sets that turn
// existing into desired. It is pure so the reconciliation rules stay
// testable without a store.
func DiffMemberships(existing, desired map[uuid.UUID]bool) MembershipDiff {
	diff := MembershipDiff{
		ToAdd:        make(map[uuid.UUID]bool),
		ToRoleChange: make(map[uuid.UUID]bool),
	}

	for userID, isManager := range existing {
		wantManager, ok := desired[userID]
		switch {
		case !ok:
			diff.ToRemove = append(diff.ToRemove, userID)
		case wantManager != isManager:
			diff.ToRoleChange[userID] = wantManager
		}
	}

	for userID, isManager := range desired {
		if _, ok := existing[userID]; !ok {
			diff.ToAdd[userID] = isManager
		}
	}

	return diff
}
