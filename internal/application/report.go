package application

// Transfer schedules one file copy or move.
type Transfer struct {
	Src  string
	Dst  string
	Size int64
}

// Report summarizes one organizer run. In dry-run mode the transfers
// are fully computed but nothing was mutated.
type Report struct {
	// Candidates is the number of managed files considered after
	// exclusions.
	Candidates int
	// Transfers were scheduled (and executed when Approved).
	Transfers []Transfer
	// TotalBytes is the aggregate size of the scheduled transfers.
	TotalBytes int64
	// Skipped counts files already present at their destination with a
	// matching size.
	Skipped int

	Approved bool
	Move     bool
}

// Verb returns the transfer verb for report phrasing.
func (r *Report) Verb() string {
	if r.Move {
		return "move"
	}
	return "copy"
}

// PastVerb returns the past-tense transfer verb for report phrasing.
func (r *Report) PastVerb() string {
	if r.Move {
		return "Moved"
	}
	return "Copied"
}

// Gerund returns the in-progress transfer verb for report phrasing.
func (r *Report) Gerund() string {
	if r.Move {
		return "Moving"
	}
	return "Copying"
}
