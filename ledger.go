package gelbook

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

// Confirmer is the yes/no gate consulted before destructive multi-record
// operations. Returning false aborts the operation with no side effects.
type Confirmer func(prompt string) bool

// Blocking conditions for ledger writes.
var (
	// ErrDefaultUser is returned when deleting the built-in default user.
	ErrDefaultUser = errors.New("the default user cannot be deleted")
	// ErrLastUser is returned when deleting the only remaining user.
	ErrLastUser = errors.New("the last remaining user cannot be deleted")
	// ErrAborted is returned when the confirmer declined the operation.
	ErrAborted = errors.New("operation aborted")
	// ErrInvalid is returned when a candidate record fails validation.
	ErrInvalid = errors.New("invalid record")
	// ErrUnknownUser is returned when a transaction references no existing user.
	ErrUnknownUser = errors.New("unknown user")
	// ErrDuplicate is returned when a record collides with an existing one.
	ErrDuplicate = errors.New("duplicate record")
)

// Ledger owns the authoritative users and transactions collections, persisted
// through a Storage collaborator.
//
// Every write validates first, persists next, and only then advances the
// in-memory state: after a failed persistence the ledger still reflects the
// last successfully persisted snapshot.
type Ledger struct {
	storage      Storage
	users        []User
	transactions []Transaction
}

// Open loads the ledger from storage.
//
// Loading self-heals against corrupted persisted state: records failing
// validation are silently dropped. When the users collection is empty or
// entirely invalid, a fresh default user is substituted and persisted.
func Open(storage Storage) (*Ledger, error) {
	l := &Ledger{storage: storage}

	var users []User
	if _, err := storage.Get(usersKey, &users); err != nil {
		log.Printf("users collection unreadable, resetting: %v", err)
		users = nil
	}
	for _, u := range users {
		if u.Valid() {
			l.users = append(l.users, u)
		} else {
			log.Printf("dropping invalid user %q", u.ID)
		}
	}
	if len(l.users) == 0 {
		l.users = []User{NewDefaultUser()}
		if err := storage.Set(usersKey, l.users); err != nil {
			return nil, fmt.Errorf("could not persist default user: %w", err)
		}
	}

	var transactions []Transaction
	if _, err := storage.Get(transactionsKey, &transactions); err != nil {
		log.Printf("transactions collection unreadable, resetting: %v", err)
		transactions = nil
	}
	for _, t := range transactions {
		if t.Valid() {
			l.transactions = append(l.transactions, t)
		} else {
			log.Printf("dropping invalid transaction %q", t.ID)
		}
	}
	return l, nil
}

// Users returns a copy of the users collection.
func (l *Ledger) Users() []User { return slices.Clone(l.users) }

// Transactions returns a copy of the transactions collection, in storage
// order. The ledger is not guaranteed sorted, ordering is the filter/sort
// engine's concern.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// User returns the user with the given id, or false if absent.
func (l *Ledger) User(id string) (User, bool) {
	for _, u := range l.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// UserName resolves a user id to its display name, falling back to the id.
func (l *Ledger) UserName(id string) string {
	if u, ok := l.User(id); ok {
		return u.Name
	}
	return id
}

// saveUsers persists then commits a new users collection.
func (l *Ledger) saveUsers(users []User) error {
	if err := l.storage.Set(usersKey, users); err != nil {
		return fmt.Errorf("could not persist users: %w", err)
	}
	l.users = users
	return nil
}

// saveTransactions persists then commits a new transactions collection.
func (l *Ledger) saveTransactions(transactions []Transaction) error {
	if err := l.storage.Set(transactionsKey, transactions); err != nil {
		return fmt.Errorf("could not persist transactions: %w", err)
	}
	l.transactions = transactions
	return nil
}

// AddUser appends a validated user.
func (l *Ledger) AddUser(u User) error {
	if !u.Valid() {
		return fmt.Errorf("%w: user needs an id and a name", ErrInvalid)
	}
	if _, ok := l.User(u.ID); ok {
		return fmt.Errorf("%w: user %q already exists", ErrDuplicate, u.ID)
	}
	return l.saveUsers(append(slices.Clone(l.users), u))
}

// UpdateUser replaces the user matching u.ID. No-op if no such user exists.
func (l *Ledger) UpdateUser(u User) error {
	if !u.Valid() {
		return fmt.Errorf("%w: user needs an id and a name", ErrInvalid)
	}
	users := slices.Clone(l.users)
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = u
			return l.saveUsers(users)
		}
	}
	return nil
}

// DeleteUser removes a user, cascading over its transactions.
//
// The default user and the last remaining user are blocked outright. When the
// user owns transactions, the confirmer must approve the cascade first.
func (l *Ledger) DeleteUser(id string, confirm Confirmer) error {
	if id == DefaultUserID {
		return ErrDefaultUser
	}
	if _, ok := l.User(id); !ok {
		return nil
	}
	if len(l.users) == 1 {
		return ErrLastUser
	}

	owned := 0
	for _, t := range l.transactions {
		if t.UserID == id {
			owned++
		}
	}
	if owned > 0 {
		prompt := fmt.Sprintf("delete user %q and its %d transactions?", l.UserName(id), owned)
		if !confirm(prompt) {
			return ErrAborted
		}
		kept := slices.DeleteFunc(slices.Clone(l.transactions), func(t Transaction) bool {
			return t.UserID == id
		})
		if err := l.saveTransactions(kept); err != nil {
			return err
		}
	}
	users := slices.DeleteFunc(slices.Clone(l.users), func(u User) bool { return u.ID == id })
	return l.saveUsers(users)
}

// DeleteAllUsers resets the ledger: a single fresh default user, no
// transactions. Requires confirmation.
func (l *Ledger) DeleteAllUsers(confirm Confirmer) error {
	if !confirm("delete all users and all transactions?") {
		return ErrAborted
	}
	if err := l.saveTransactions(nil); err != nil {
		return err
	}
	return l.saveUsers([]User{NewDefaultUser()})
}

// AddTransaction appends a validated transaction. It must reference an
// existing user and carry a timestamp unused by any other transaction.
func (l *Ledger) AddTransaction(t Transaction) error {
	if !t.Valid() {
		return fmt.Errorf("%w: transaction", ErrInvalid)
	}
	if _, ok := l.User(t.UserID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownUser, t.UserID)
	}
	for _, x := range l.transactions {
		if x.Timestamp == t.Timestamp {
			return fmt.Errorf("%w: timestamp %s", ErrDuplicate, t.Timestamp)
		}
	}
	return l.saveTransactions(append(slices.Clone(l.transactions), t))
}

// DeleteTransaction removes the transaction with the given id. No-op if absent.
func (l *Ledger) DeleteTransaction(id string) error {
	kept := slices.DeleteFunc(slices.Clone(l.transactions), func(t Transaction) bool {
		return t.ID == id
	})
	if len(kept) == len(l.transactions) {
		return nil
	}
	return l.saveTransactions(kept)
}

// UpdateComment replaces the comment of the transaction with the given id.
// No-op if absent.
func (l *Ledger) UpdateComment(id, text string) error {
	transactions := slices.Clone(l.transactions)
	for i := range transactions {
		if transactions[i].ID == id {
			transactions[i].Comment = text
			return l.saveTransactions(transactions)
		}
	}
	return nil
}

// ClearAllTransactions empties the transactions collection, leaving users
// untouched. Requires confirmation.
func (l *Ledger) ClearAllTransactions(confirm Confirmer) error {
	if !confirm("delete all transactions?") {
		return ErrAborted
	}
	return l.saveTransactions(nil)
}
