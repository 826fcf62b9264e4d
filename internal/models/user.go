package models

// User is the single record kept in the userdata collection. ID is assigned
// by the store and never written back as a document field.
type User struct {
	ID        string `firestore:"-" json:"_id"`
	FirstName string `firestore:"firstName" json:"firstName"`
	LastName  string `firestore:"lastName" json:"lastName"`
	Email     string `firestore:"email" json:"email"`
}
