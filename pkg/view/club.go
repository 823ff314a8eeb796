package view

import "footballdirector/pkg/domain"

// LiveCounts assembles dashboard counts from the live cardinalities,
// replacing whatever the club row has stored.
func LiveCounts(footballers, staff, unread int) domain.ClubCounts {
	return domain.ClubCounts{
		Footballers:    footballers,
		Staff:          staff,
		UnreadMessages: unread,
	}
}
