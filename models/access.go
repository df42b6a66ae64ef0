package models

// Permission predicates. A nil or zero-ID receiver is the anonymous
// identity. Pure: no database or request state involved, so they are
// testable without the HTTP layer.

func (u *User) Authenticated() bool {
	return u != nil && u.ID != 0
}

// CanCreate gates the post create form.
func (u *User) CanCreate() bool {
	return u.Authenticated()
}

// CanEdit gates the edit form: only the post's author may change it.
func (u *User) CanEdit(p *Post) bool {
	return u.Authenticated() && p != nil && u.ID == p.AuthorID
}

// CanComment gates commenting; any authenticated user qualifies.
func (u *User) CanComment() bool {
	return u.Authenticated()
}
