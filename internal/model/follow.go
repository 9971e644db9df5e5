package model

import "time"

// Follow is a directed relationship: the follower elects to include the
// followee's posts in their followed feed. The (follower, followee) pair is
// unique and a user never follows themselves; both rules are also enforced
// by the follows table constraints.
type Follow struct {
	FollowerID int64     `db:"follower_id" json:"follower_id"`
	FolloweeID int64     `db:"followee_id" json:"followee_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
