package progress

import (
	"context"
	"fmt"
	"time"
)

// Role values stored on a profile.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
)

// Profile is the user row. StreakCount and TotalPoints are a cache of values
// derived from learning records, refreshed by SyncProfile.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Grade       int       `json:"grade,omitempty"`
	Semester    int       `json:"semester,omitempty"`
	StreakCount int       `json:"streak_count"`
	TotalPoints int       `json:"total_points"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Profile returns the stored profile for id.
func (r *Repository) Profile(ctx context.Context, id string) (*Profile, bool) {
	for _, p := range r.users.All(ctx) {
		if p.ID == id {
			return &p, true
		}
	}
	return nil, false
}

// UpsertProfile inserts p or updates the identity fields of an existing
// profile. The derived fields are left to SyncProfile.
func (r *Repository) UpsertProfile(ctx context.Context, p Profile) (*Profile, error) {
	if p.Role == "" {
		p.Role = RoleStudent
	}
	all := r.users.All(ctx)
	var out *Profile
	for i := range all {
		if all[i].ID != p.ID {
			continue
		}
		if p.Name != "" {
			all[i].Name = p.Name
		}
		if p.Grade != 0 {
			all[i].Grade = p.Grade
		}
		if p.Semester != 0 {
			all[i].Semester = p.Semester
		}
		all[i].Role = p.Role
		all[i].UpdatedAt = r.clock.Now()
		out = &all[i]
		break
	}
	if out == nil {
		p.UpdatedAt = r.clock.Now()
		all = append(all, p)
		out = &all[len(all)-1]
	}
	if err := r.users.Replace(ctx, all); err != nil {
		return nil, fmt.Errorf("upsert profile %s: %w", p.ID, err)
	}
	result := *out
	return &result, nil
}

// SyncProfile recomputes streak and points from records and writes them to
// the student's profile, creating a minimal profile when none exists.
func (r *Repository) SyncProfile(ctx context.Context, studentID string) (*Profile, error) {
	streak := r.StreakCount(ctx, studentID)
	points := r.TotalPoints(ctx, studentID)
	now := r.clock.Now()

	all := r.users.All(ctx)
	idx := -1
	for i := range all {
		if all[i].ID == studentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		all = append(all, Profile{ID: studentID, Role: RoleStudent})
		idx = len(all) - 1
	}
	all[idx].StreakCount = streak
	all[idx].TotalPoints = points
	all[idx].UpdatedAt = now

	if err := r.users.Replace(ctx, all); err != nil {
		return nil, fmt.Errorf("sync profile %s: %w", studentID, err)
	}
	r.log.Debug("profile synced", "student_id", studentID, "streak", streak, "points", points)
	p := all[idx]
	return &p, nil
}
