package marks

import (
	"acadia-schools/app/models"
)

// The marks entry workflow moves one way only:
//
//	DRAFT -> SUBMITTED -> LOCKED
//
// Teachers enter marks while a batch is in DRAFT and submit it for review.
// An admin reviews a SUBMITTED batch and locks it, or locks a DRAFT batch
// directly as an override. There is no unlock path.

// CanEdit implements the mutation permission matrix for a single role:
//
//	            DRAFT  SUBMITTED  LOCKED
//	teacher     yes    no         no
//	admin       yes    yes        no
//	other       no     no         no
func CanEdit(role string, status models.WorkflowStatus) bool {
	switch status {
	case models.StatusDraft:
		return role == models.RoleTeacher || role == models.RoleAdmin
	case models.StatusSubmitted:
		return role == models.RoleAdmin
	default:
		return false
	}
}

// ActorCanEdit reports whether any of the user's roles may mutate a batch in
// the given state.
func ActorCanEdit(user *models.User, status models.WorkflowStatus) bool {
	if user == nil {
		return false
	}
	for _, role := range user.Roles {
		if role != nil && CanEdit(role.Name, status) {
			return true
		}
	}
	return false
}

// CanSubmit reports whether the user may submit a DRAFT batch for review.
func CanSubmit(user *models.User) bool {
	return user != nil && (user.HasRole(models.RoleTeacher) || user.HasRole(models.RoleAdmin))
}

// CanLock reports whether the user may lock a batch. Admin only.
func CanLock(user *models.User) bool {
	return user != nil && user.HasRole(models.RoleAdmin)
}

// ValidTransition reports whether from -> to is a legal workflow move.
// DRAFT -> LOCKED is the admin override; LOCKED is terminal.
func ValidTransition(from, to models.WorkflowStatus) bool {
	switch {
	case from == models.StatusDraft && to == models.StatusSubmitted:
		return true
	case from == models.StatusSubmitted && to == models.StatusLocked:
		return true
	case from == models.StatusDraft && to == models.StatusLocked:
		return true
	}
	return false
}
