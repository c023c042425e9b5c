package entity

// User references its account by identifiers only; the account itself is
// owned by the bank the ref points at.
type User struct {
	id      string
	name    string
	account AccountRef
}

func NewUser(id, name string, account AccountRef) *User {
	return &User{
		id:      id,
		name:    name,
		account: account,
	}
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Account() AccountRef {
	return u.account
}
