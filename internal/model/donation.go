package model

import "time"

// RawRecord is one donation event as it appears in an export, before any
// parsing. Fields are trimmed but otherwise untouched.
type RawRecord struct {
	DateToken    string
	DonorLabel   string
	AmountToken  string
	Message      string
	OutcomeLabel string
	Offset       int // byte offset of the match in the scanned text
}

// DateEntry is one dated donation in a donor's history.
type DateEntry struct {
	Date         time.Time
	Message      string
	OutcomeLabel string
	Amount       int64
}

// Donor aggregates every qualifying record sharing one identity.
type Donor struct {
	ID          string
	Nicknames   []string // unique, in first-seen order
	Messages    []string
	DateHistory []DateEntry
	TotalAmount int64
}

// NewDonor creates an empty donor for id.
func NewDonor(id string) *Donor {
	return &Donor{ID: id}
}

// AddNickname records a display name, ignoring ones already seen.
func (d *Donor) AddNickname(nickname string) {
	for _, n := range d.Nicknames {
		if n == nickname {
			return
		}
	}
	d.Nicknames = append(d.Nicknames, nickname)
}

// PrimaryNickname returns the first nickname ever recorded for the donor.
func (d Donor) PrimaryNickname() string {
	if len(d.Nicknames) == 0 {
		return ""
	}
	return d.Nicknames[0]
}

// DisplayLabel renders the donor as "nickname(id)".
func (d Donor) DisplayLabel() string {
	return d.PrimaryNickname() + "(" + d.ID + ")"
}

// AlternateNicknames returns every nickname except the primary one.
func (d Donor) AlternateNicknames() []string {
	if len(d.Nicknames) < 2 {
		return nil
	}
	return d.Nicknames[1:]
}
