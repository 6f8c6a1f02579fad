package domain

// Task is the core aggregate: a single to-do item belonging to exactly one user.
type Task struct {
	ID          int64  `json:"id" bson:"_id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Completed   bool   `json:"completed" bson:"completed"`
	OwnerID     int64  `json:"-" bson:"owner_id"`
}

// TaskPatch carries a partial update. Nil fields are left untouched, so a
// request that sets only Completed never clobbers Title or Description.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Empty reports whether the patch carries no changes at all.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
