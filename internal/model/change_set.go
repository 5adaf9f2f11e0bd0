package model

// ChangeSet is every write produced by one applied log. Stores commit it
// atomically so a crash never leaves entity updates without the cursor.
type ChangeSet struct {
	Tokens []Token
	Pools  []Pool
	Bundle *Bundle

	CursorName string
	Cursor     *Cursor
}

// Empty reports whether the change set writes nothing.
func (c ChangeSet) Empty() bool {
	return len(c.Tokens) == 0 && len(c.Pools) == 0 && c.Bundle == nil && c.Cursor == nil
}
