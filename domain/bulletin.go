package domain

import "fmt"

// BulletinLink points at one weekly outbreak bulletin published by the
// surveillance programme.
type BulletinLink struct {
	Week     int
	Year     int
	Title    string
	URL      string
	Filename string
}

// Label renders the canonical "Week N, YYYY" form.
func (b BulletinLink) Label() string {
	return fmt.Sprintf("Week %d, %d", b.Week, b.Year)
}
