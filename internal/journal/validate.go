package journal

import "fmt"

// ValidationError describes why an entry was rejected by the journal.
type ValidationError struct {
	EntryID     int
	Description string
}

func (e ValidationError) Error() string {
	if e.EntryID > 0 {
		return fmt.Sprintf("entry %d: %s", e.EntryID, e.Description)
	}
	return e.Description
}
