package store

import "wordsync/internal/domain"

// lists groups the three membership sets so they can be snapshotted together
type lists struct {
	starred   *domain.MembershipSet
	graveyard *domain.MembershipSet
	wrong     *domain.MembershipSet
}

func newLists() lists {
	return lists{
		starred:   domain.NewMembershipSet(),
		graveyard: domain.NewMembershipSet(),
		wrong:     domain.NewMembershipSet(),
	}
}

func (l lists) clone() lists {
	return lists{
		starred:   l.starred.Clone(),
		graveyard: l.graveyard.Clone(),
		wrong:     l.wrong.Clone(),
	}
}

// restoreWord puts id back where snap had it in every set and removes it
// from the sets snap did not contain it in. Other words are left alone.
func (l lists) restoreWord(snap lists, id domain.WordID) {
	restoreMember(l.starred, snap.starred, id)
	restoreMember(l.graveyard, snap.graveyard, id)
	restoreMember(l.wrong, snap.wrong, id)
}

func restoreMember(current, snap *domain.MembershipSet, id domain.WordID) {
	current.Remove(id)
	if pos := snap.IndexOf(id); pos >= 0 {
		current.Insert(pos, id)
	}
}
