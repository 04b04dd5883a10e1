package domain

import (
	"fmt"
	"time"
)

// ProjectMember relates a user to a project with an access role.
// Each project has exactly one owner: its creator. The server enforces
// that; the client only validates role strings.
type ProjectMember struct {
	ID        int        `json:"id"`
	ProjectID int        `json:"project_id"`
	UserID    string     `json:"user_id"`
	Role      MemberRole `json:"role"`
	JoinedAt  time.Time  `json:"joined_at"`

	User *User `json:"user,omitempty"`
}

// DisplayName returns the best human-readable label for the member.
func (m *ProjectMember) DisplayName() string {
	if m.User != nil {
		if m.User.FullName != "" {
			return m.User.FullName
		}
		if m.User.Email != "" {
			return m.User.Email
		}
	}
	return m.UserID
}

// MemberForm carries the fields for adding a member to a project.
type MemberForm struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  MemberRole `json:"role,omitempty"`
}

// Validate checks the form for a member addition call.
func (f MemberForm) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("member name is required")
	}
	if f.Email == "" {
		return fmt.Errorf("member email is required")
	}
	if f.Role != "" && !ValidMemberRoles[f.Role] {
		return fmt.Errorf("invalid role %q (want owner, admin or member)", f.Role)
	}
	return nil
}
