package models

import "time"

// CircleStatus is the lifecycle state of a circle.
type CircleStatus string

const (
	CircleStatusActive    CircleStatus = "active"
	CircleStatusCompleted CircleStatus = "completed"
)

// MemberStatus is the state of a circle membership.
type MemberStatus string

const (
	MemberStatusActive MemberStatus = "active"
	MemberStatusLeft   MemberStatus = "left"
)

// Circle is a group savings pot. MemberCount mirrors the number of active
// memberships and is recomputed whenever membership changes.
type Circle struct {
	Base
	CreatorID     string       `gorm:"type:uuid;not null;index" json:"creator_id"`
	CircleName    string       `gorm:"type:varchar(100);not null" json:"circle_name"`
	Description   string       `json:"description,omitempty"`
	TargetAmount  Money        `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount Money        `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	MemberCount   int          `gorm:"not null;default:0" json:"member_count"`
	MaxMembers    *int         `json:"max_members,omitempty"`
	IsPublic      bool         `gorm:"not null" json:"is_public"`
	Category      string       `gorm:"type:varchar(50)" json:"category,omitempty"`
	Status        CircleStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	Members  []CircleMember `gorm:"foreignKey:CircleID" json:"members,omitempty"`
	Progress float64        `gorm:"-" json:"progress"`
}

// FillProgress sets the read-time progress percentage.
func (c *Circle) FillProgress() {
	c.Progress = Percentage(c.CurrentAmount, c.TargetAmount)
}

// IsFull reports whether activeMembers has reached the cap, if any.
func (c *Circle) IsFull(activeMembers int64) bool {
	return c.MaxMembers != nil && activeMembers >= int64(*c.MaxMembers)
}

// CircleMember is one user's membership in a circle.
type CircleMember struct {
	Base
	CircleID           string       `gorm:"type:uuid;not null;uniqueIndex:idx_circle_members_circle_user" json:"circle_id"`
	UserID             string       `gorm:"type:uuid;not null;uniqueIndex:idx_circle_members_circle_user" json:"user_id"`
	ContributionAmount Money        `gorm:"type:bigint;not null;default:0" json:"contribution_amount"`
	Status             MemberStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	JoinedAt           time.Time    `gorm:"not null" json:"joined_at"`
}

// CircleFilter selects which circles a listing returns.
type CircleFilter string

const (
	CircleFilterAll    CircleFilter = "all"
	CircleFilterMine   CircleFilter = "mine"
	CircleFilterPublic CircleFilter = "public"
)
