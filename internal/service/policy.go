package service

import "github.com/Behyna/sms-services/templateconsole/internal/model"

// The Can* functions decide whether a principal may perform an operation.
// They never touch the network; a nil result means allowed.

func CanCreate(p model.Principal) error {
	if err := knownRole(p); err != nil {
		return err
	}
	if !p.IsAuthor() {
		return roleError("%s cannot create templates", p.Role)
	}
	return nil
}

// CanEdit covers content changes. Reviewers may edit in any state, authors
// only while the template is pending.
func CanEdit(p model.Principal, t model.Template) error {
	if err := knownRole(p); err != nil {
		return err
	}
	if p.IsReviewer() {
		return nil
	}
	if !t.IsPending() {
		return stateError("template %s is %s and can no longer be edited by %s",
			t.TemplateID, t.Status, p.Role)
	}
	return nil
}

func CanChangeStatus(p model.Principal) error {
	if err := knownRole(p); err != nil {
		return err
	}
	if !p.IsReviewer() {
		return roleError("%s cannot change template status", p.Role)
	}
	return nil
}

// CanApprove allows an already approved template so approval stays idempotent.
func CanApprove(p model.Principal, t model.Template) error {
	if err := CanChangeStatus(p); err != nil {
		return err
	}
	if t.Status != model.TemplateStatusPending && t.Status != model.TemplateStatusApproved {
		return stateError("template %s is %s, only pending templates can be approved", t.TemplateID, t.Status)
	}
	return nil
}

func CanReject(p model.Principal, t model.Template) error {
	if err := CanChangeStatus(p); err != nil {
		return err
	}
	if !t.IsPending() {
		return stateError("template %s is %s, only pending templates can be rejected", t.TemplateID, t.Status)
	}
	return nil
}

// CanDelete lets an author remove their own pending template. A template
// without a recorded creator counts as the author's own.
func CanDelete(p model.Principal, t model.Template) error {
	if err := knownRole(p); err != nil {
		return err
	}
	if p.IsReviewer() {
		return nil
	}
	if !t.IsPending() {
		return stateError("template %s is %s and can no longer be deleted by %s",
			t.TemplateID, t.Status, p.Role)
	}
	if !owns(p, t) {
		return roleError("%s can only delete their own templates", p.Role)
	}
	return nil
}

func CanSendTest(p model.Principal) error {
	if err := knownRole(p); err != nil {
		return err
	}
	if !p.IsAuthor() {
		return roleError("%s cannot send test messages", p.Role)
	}
	return nil
}

func CanView(p model.Principal) error {
	return knownRole(p)
}

func owns(p model.Principal, t model.Template) bool {
	return t.Creator == "" || t.Creator == p.UserID
}

func knownRole(p model.Principal) error {
	if !p.IsAuthor() && !p.IsReviewer() {
		return roleError("unknown role %q", string(p.Role))
	}
	return nil
}
