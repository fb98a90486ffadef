package common

import "fmt"

// Record is a generated person entry held by the record store.
type Record struct {
	FirstName string
	LastName  string
	Age       int
}

// String mirrors the demo output ("Jack Jones, age 30").
func (r Record) String() string {
	return fmt.Sprintf("%s %s, age %d", r.FirstName, r.LastName, r.Age)
}

// NameKey groups records by first and last name. It is a comparable value
// type, so two keys built from equal strings are the same map key.
type NameKey struct {
	First string
	Last  string
}

func KeyOf(r Record) NameKey {
	return NameKey{First: r.FirstName, Last: r.LastName}
}

func (k NameKey) String() string {
	return k.First + " " + k.Last
}
